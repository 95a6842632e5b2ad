// Package adventure drives the position-on-a-track quiz game: forward on a
// correct answer, backward on a wrong one, with an accuracy gate at the end
// that settles rewards exactly once per attempt.
package adventure

import (
	"fmt"
	"time"

	"github.com/project-codexa/backend/internal/gamification"
	"github.com/project-codexa/backend/internal/models"
	"github.com/project-codexa/backend/internal/session"
)

// CurrentQuestion returns the question awaiting an answer, or false when the
// attempt has consumed all questions.
func CurrentQuestion(sess *session.Session) (models.QuestionRecord, bool) {
	adv := sess.Adventure
	if adv == nil || adv.QuestionIndex >= len(sess.Questions) {
		return models.QuestionRecord{}, false
	}
	return sess.Questions[adv.QuestionIndex], true
}

// SubmitAnswer evaluates the learner's selection for the current question and
// applies the per-question transition. An out-of-range index is a caller
// contract violation and mutates nothing.
func SubmitAnswer(sess *session.Session, selected int) (models.AnswerRecord, error) {
	adv := sess.Adventure
	if adv == nil {
		return models.AnswerRecord{}, fmt.Errorf("no active quiz")
	}
	q, ok := CurrentQuestion(sess)
	if !ok {
		return models.AnswerRecord{}, fmt.Errorf("all %d questions already answered", adv.TotalQuestions)
	}
	if selected < 0 || selected >= len(q.Options) {
		return models.AnswerRecord{}, fmt.Errorf("selected index %d out of range [0,%d)", selected, len(q.Options))
	}

	profile := sess.Profile
	correct := selected == q.CorrectIndex
	if correct {
		// There are only total+1 forward moves worth of track.
		if adv.Position < adv.TotalQuestions+1 {
			adv.Position++
		}
		adv.CorrectCount++
		adv.Animation = models.AnimForward
		profile.TotalXP += gamification.QuestionXP
		profile.CorrectStreak++
		profile.CorrectTotal++
		gamification.IncrementQuest(sess.Quests, gamification.KeyDailyCorrect, 1, false, time.Now().UTC())
	} else {
		if adv.Position > 0 {
			adv.Position--
		}
		adv.Animation = models.AnimBackward
		profile.CorrectStreak = 0
	}

	record := models.AnswerRecord{SelectedIndex: selected, WasCorrect: correct}
	adv.Answers[adv.QuestionIndex] = record
	adv.QuestionIndex++
	return record, nil
}

// CheckGate resolves a finished attempt against the accuracy gate and settles
// rewards. Settlement happens exactly once: a second call on an already
// settled attempt returns the same verdict without side effects.
func CheckGate(sess *session.Session, subject, chapter string, now time.Time) (models.GateResult, error) {
	adv := sess.Adventure
	if adv == nil {
		return models.GateResult{}, fmt.Errorf("no active quiz")
	}
	if adv.QuestionIndex < adv.TotalQuestions {
		return models.GateResult{}, fmt.Errorf("quiz not finished: %d of %d answered", adv.QuestionIndex, adv.TotalQuestions)
	}

	accuracy := adv.Accuracy()
	passed := accuracy >= gamification.GateThreshold

	if adv.Settled {
		return models.GateResult{Passed: adv.IsComplete, Accuracy: accuracy, Message: gateMessage(adv.IsComplete, accuracy)}, nil
	}
	adv.Settled = true

	profile := sess.Profile
	profile.LastQuizPct = accuracy
	profile.QuizCount++

	gamification.IncrementQuest(sess.Quests, gamification.KeyDailyQuizzes, 1, passed, now)

	xpAwarded := gamification.QuestionXP * adv.CorrectCount
	if passed {
		adv.IsComplete = true
		adv.Animation = models.AnimCelebrate
		profile.TotalXP += gamification.CompletionBonusXP
		profile.Credits += gamification.CompletionBonusCredits
		profile.Coins += gamification.CompletionBonusCoins
		xpAwarded += gamification.CompletionBonusXP
	}

	sess.Progress.Accumulate(subject, chapter, adv.CorrectCount, adv.TotalQuestions)
	sess.History = append(sess.History, models.ProgressRecord{
		Date:           now.UTC().Truncate(24 * time.Hour),
		Subject:        subject,
		Chapter:        chapter,
		CorrectCount:   adv.CorrectCount,
		TotalQuestions: adv.TotalQuestions,
		XPAwarded:      xpAwarded,
	})

	result := models.GateResult{
		Passed:   passed,
		Accuracy: accuracy,
		Message:  gateMessage(passed, accuracy),
	}
	for _, def := range gamification.EvaluateAchievements(profile) {
		result.NewAchievements = append(result.NewAchievements, fmt.Sprintf("%s %s (+%d XP)", def.Icon, def.Name, def.XP))
	}
	for _, q := range gamification.SettleQuests(sess.Quests, profile, now) {
		result.QuestsClaimed = append(result.QuestsClaimed, q.ID)
	}
	return result, nil
}

func gateMessage(passed bool, accuracy float64) string {
	if passed {
		return fmt.Sprintf("🎉 Great job! %.0f%% achieved. +%d XP, +%d Credit, +%d Coins",
			accuracy, gamification.CompletionBonusXP, gamification.CompletionBonusCredits, gamification.CompletionBonusCoins)
	}
	return fmt.Sprintf("📚 You scored %.0f%%. Need at least %.0f%% to move forward. Retry!", accuracy, gamification.GateThreshold)
}
