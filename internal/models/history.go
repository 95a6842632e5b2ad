package models

import "time"

// ProgressRecord is one append-only history entry per completed quiz attempt.
// Records are never mutated after append.
type ProgressRecord struct {
	Date           time.Time `json:"date"`
	Subject        string    `json:"subject"`
	Chapter        string    `json:"chapter"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	XPAwarded      int       `json:"xp_awarded"`
}

// ChapterScore is the running accumulation for one subject/chapter pair,
// the only table derived from history.
type ChapterScore struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// ProgressTable maps subject -> chapter -> accumulated score.
type ProgressTable map[string]map[string]*ChapterScore

// Accumulate folds one attempt into the table.
func (t ProgressTable) Accumulate(subject, chapter string, correct, total int) {
	chapters, ok := t[subject]
	if !ok {
		chapters = make(map[string]*ChapterScore)
		t[subject] = chapters
	}
	cs, ok := chapters[chapter]
	if !ok {
		cs = &ChapterScore{}
		chapters[chapter] = cs
	}
	cs.Score += correct
	cs.Total += total
}

// ── Response Types ────────────────────────────────────────

type ProgressStatsResponse struct {
	QuizCount       int     `json:"quiz_count"`
	OverallAccuracy float64 `json:"overall_accuracy"`
	SubjectCount    int     `json:"subject_count"`
	Badge           string  `json:"badge"`
}

type ChapterMastery struct {
	Subject  string  `json:"subject"`
	Chapter  string  `json:"chapter"`
	Accuracy float64 `json:"accuracy"`
	Mastered bool    `json:"mastered"`
}

type MasteryResponse struct {
	Chapters          []ChapterMastery `json:"chapters"`
	MasteredChapters  int              `json:"mastered_chapters"`
	AttemptedChapters int              `json:"attempted_chapters"`
	CompletionPct     float64          `json:"completion_pct"`
}

type DailyActivity struct {
	Date      string  `json:"date"`
	Quizzes   int     `json:"quizzes"`
	Correct   int     `json:"correct"`
	Questions int     `json:"questions"`
	XP        int     `json:"xp"`
	Accuracy  float64 `json:"accuracy"`
}

type ActivityResponse struct {
	Days []DailyActivity `json:"days"`
}
