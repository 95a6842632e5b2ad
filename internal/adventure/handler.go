package adventure

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/project-codexa/backend/internal/gamification"
	"github.com/project-codexa/backend/internal/generator"
	"github.com/project-codexa/backend/internal/models"
	"github.com/project-codexa/backend/internal/session"
	"github.com/project-codexa/backend/internal/syllabus"
)

// quizRetries bounds the generate-validate-regenerate loop per quiz request.
const quizRetries = 2

type Handler struct {
	sessions  *session.Manager
	generator *generator.Generator
}

func NewHandler(sessions *session.Manager, gen *generator.Generator) *Handler {
	return &Handler{sessions: sessions, generator: gen}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ── Settings & Syllabus ─────────────────────────────────

func (h *Handler) GetSyllabus(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	subjects, found := syllabus.Table[sess.ClassLevel]
	if !found {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Unknown class level"})
		return
	}

	writeJSON(w, http.StatusOK, models.SyllabusResponse{
		ClassLevel:      sess.ClassLevel,
		Subjects:        subjects,
		PartsPerChapter: syllabus.PartsPerChapter,
	})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.ClassLevel != "" {
		if _, found := syllabus.Table[req.ClassLevel]; !found {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Unknown class level"})
			return
		}
		sess.ClassLevel = req.ClassLevel
	}
	if req.Language != "" {
		sess.Language = req.Language
	}

	writeJSON(w, http.StatusOK, models.SettingsResponse{ClassLevel: sess.ClassLevel, Language: sess.Language})
}

// ── Lesson & Q&A ────────────────────────────────────────

func (h *Handler) GetLesson(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.LessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !h.validTarget(w, sess, req.Subject, req.Chapter, req.Part) {
		return
	}

	lesson, err := h.generator.GenerateLesson(r.Context(), sess.ClassLevel, req.Subject, req.Chapter, req.Part, sess.Language)
	if err != nil {
		log.Printf("[adventure] lesson generation failed for user %d: %v", sess.Profile.UserID, err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Lesson generation failed, please retry"})
		return
	}

	writeJSON(w, http.StatusOK, models.LessonResponse{
		Subject: req.Subject,
		Chapter: req.Chapter,
		Part:    req.Part,
		Lesson:  lesson,
	})
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question is required"})
		return
	}

	answer, err := h.generator.AnswerQuestion(r.Context(), req.Question, req.Chapter, req.Subject, sess.ClassLevel, sess.Language)
	if err != nil {
		log.Printf("[adventure] answer generation failed for user %d: %v", sess.Profile.UserID, err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Answer generation failed, please retry"})
		return
	}

	writeJSON(w, http.StatusOK, models.AskResponse{Answer: answer})
}

// ── Quiz Flow ───────────────────────────────────────────

// StartQuiz generates and parses a fresh question set, then installs a new
// adventure over it. Daily streak is touched here: starting a quiz is the
// day's activity marker.
func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.QuizStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !h.validTarget(w, sess, req.Subject, req.Chapter, req.Part) {
		return
	}

	raw, err := h.generator.GenerateValidQuiz(r.Context(), sess.ClassLevel, req.Subject, req.Chapter, req.Part, sess.Language, quizRetries)
	if err != nil {
		log.Printf("[adventure] quiz generation failed for user %d: %v", sess.Profile.UserID, err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Quiz generation failed, please retry"})
		return
	}

	questions := generator.ParseQuizBlock(raw)
	if len(questions) == 0 {
		log.Printf("[adventure] quiz for user %d parsed to zero questions", sess.Profile.UserID)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Quiz generation produced no usable questions, please retry"})
		return
	}

	sess.StartQuiz(questions)
	sess.Subject = req.Subject
	sess.Chapter = req.Chapter
	sess.Part = req.Part
	gamification.TouchDailyStreak(sess.Profile, time.Now().UTC())

	if err := h.sessions.Save(sess); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save session"})
		return
	}

	writeJSON(w, http.StatusOK, models.QuizStartResponse{
		Subject:   req.Subject,
		Chapter:   req.Chapter,
		Part:      req.Part,
		Questions: questions,
		Adventure: *sess.Adventure,
	})
}

// GetQuiz returns the in-flight attempt so a reloaded client can resume.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if sess.Adventure == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No active quiz"})
		return
	}

	writeJSON(w, http.StatusOK, models.QuizStartResponse{
		Subject:   sess.Subject,
		Chapter:   sess.Chapter,
		Part:      sess.Part,
		Questions: sess.Questions,
		Adventure: *sess.Adventure,
	})
}

// SubmitAnswer applies one answer. When it was the last question the gate is
// resolved in the same request and its result rides along in the response.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	q, hasQuestion := CurrentQuestion(sess)
	if !hasQuestion {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No question awaiting an answer"})
		return
	}

	record, err := SubmitAnswer(sess, req.SelectedIndex)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	resp := models.SubmitAnswerResponse{
		WasCorrect:   record.WasCorrect,
		CorrectIndex: q.CorrectIndex,
	}

	if sess.Adventure.QuestionIndex >= sess.Adventure.TotalQuestions {
		gate, err := CheckGate(sess, sess.Subject, sess.Chapter, time.Now().UTC())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to settle quiz"})
			return
		}
		resp.Gate = &gate
	}

	if err := h.sessions.Save(sess); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save session"})
		return
	}

	resp.Adventure = *sess.Adventure
	writeJSON(w, http.StatusOK, resp)
}

// RetryQuiz restarts the current question set from scratch. A settled fail
// keeps its history entry; the retry is a new attempt.
func (h *Handler) RetryQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if sess.Adventure == nil || len(sess.Questions) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No quiz to retry"})
		return
	}

	sess.ResetQuiz()

	writeJSON(w, http.StatusOK, models.QuizStartResponse{
		Subject:   sess.Subject,
		Chapter:   sess.Chapter,
		Part:      sess.Part,
		Questions: sess.Questions,
		Adventure: *sess.Adventure,
	})
}

// ── Helpers ─────────────────────────────────────────────

func (h *Handler) validTarget(w http.ResponseWriter, sess *session.Session, subject, chapter string, part int) bool {
	if !syllabus.HasChapter(sess.ClassLevel, subject, chapter) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Unknown subject or chapter for this class"})
		return false
	}
	if !syllabus.ValidPart(part) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "part must be between 1 and 5"})
		return false
	}
	return true
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return nil, false
	}
	sess, err := h.sessions.Get(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load session"})
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
