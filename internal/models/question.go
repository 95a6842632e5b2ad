package models

// OptionCount is the number of answer options every quiz question carries.
// The generation prompt restricts options to A, B and C.
const OptionCount = 3

// AnswerNotFound is the sentinel index used when a textual answer cannot be
// resolved against a question's options.
const AnswerNotFound = -1

// QuestionRecord is a single parsed multiple-choice question. Immutable once
// produced by the parser.
type QuestionRecord struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// ── Request Types ─────────────────────────────────────────

type LessonRequest struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Part    int    `json:"part"`
}

type QuizStartRequest struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Part    int    `json:"part"`
}

type SubmitAnswerRequest struct {
	SelectedIndex int `json:"selected_index"`
}

type AskRequest struct {
	Question string `json:"question"`
	Subject  string `json:"subject"`
	Chapter  string `json:"chapter"`
}

type SettingsRequest struct {
	ClassLevel string `json:"class_level"`
	Language   string `json:"language"`
}

// ── Response Types ────────────────────────────────────────

type LessonResponse struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Part    int    `json:"part"`
	Lesson  string `json:"lesson"`
}

type QuizStartResponse struct {
	Subject   string           `json:"subject"`
	Chapter   string           `json:"chapter"`
	Part      int              `json:"part"`
	Questions []QuestionRecord `json:"questions"`
	Adventure AdventureState   `json:"adventure"`
}

type SubmitAnswerResponse struct {
	WasCorrect   bool           `json:"was_correct"`
	CorrectIndex int            `json:"correct_index"`
	Adventure    AdventureState `json:"adventure"`
	Gate         *GateResult    `json:"gate,omitempty"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type SettingsResponse struct {
	ClassLevel string `json:"class_level"`
	Language   string `json:"language"`
}

type SyllabusResponse struct {
	ClassLevel      string              `json:"class_level"`
	Subjects        map[string][]string `json:"subjects"`
	PartsPerChapter int                 `json:"parts_per_chapter"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
