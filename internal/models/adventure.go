package models

// Animation names the visual cue the front-end should play after a transition.
type Animation string

const (
	AnimIdle      Animation = "idle"
	AnimForward   Animation = "forward"
	AnimBackward  Animation = "backward"
	AnimCelebrate Animation = "celebrate"
)

// AnswerRecord remembers how a single question was answered.
type AnswerRecord struct {
	SelectedIndex int  `json:"selected_index"`
	WasCorrect    bool `json:"was_correct"`
}

// AdventureState is the mutable per-attempt state of a quiz adventure.
// Position ranges over [0, TotalQuestions+1]: tile 0 is the start and
// TotalQuestions+1 is the finish.
type AdventureState struct {
	Position       int                  `json:"position"`
	TotalQuestions int                  `json:"total_questions"`
	CorrectCount   int                  `json:"correct_count"`
	QuestionIndex  int                  `json:"question_index"`
	Animation      Animation            `json:"animation"`
	IsComplete     bool                 `json:"is_complete"`
	Settled        bool                 `json:"settled"`
	Answers        map[int]AnswerRecord `json:"answers"`
}

// NewAdventureState returns a fresh attempt over total questions.
func NewAdventureState(total int) AdventureState {
	return AdventureState{
		TotalQuestions: total,
		Animation:      AnimIdle,
		Answers:        make(map[int]AnswerRecord),
	}
}

// Accuracy is the percentage of correct answers so far. The denominator is
// guarded so a zero-question attempt never divides by zero.
func (a AdventureState) Accuracy() float64 {
	total := a.TotalQuestions
	if total < 1 {
		total = 1
	}
	return 100 * float64(a.CorrectCount) / float64(total)
}

// GateResult is the outcome of the chapter-progression gate check.
type GateResult struct {
	Passed          bool     `json:"passed"`
	Message         string   `json:"message"`
	Accuracy        float64  `json:"accuracy"`
	NewAchievements []string `json:"new_achievements,omitempty"`
	QuestsClaimed   []string `json:"quests_claimed,omitempty"`
}
