package gamification

import "github.com/project-codexa/backend/internal/models"

// ConditionKind is the closed set of achievement predicates. Each kind is a
// threshold comparison against one named profile field, which keeps the
// catalog data-only and serializable.
type ConditionKind string

const (
	CondQuizCount    ConditionKind = "quiz_count"
	CondDailyStreak  ConditionKind = "daily_streak"
	CondCorrectTotal ConditionKind = "correct_total"
	CondLastQuizPct  ConditionKind = "last_quiz_pct"
)

// AchievementDef is one catalog entry.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Kind        ConditionKind
	Threshold   float64
	Icon        string
	XP          int
}

// Achievements is the fixed catalog, evaluated in order.
var Achievements = []AchievementDef{
	{ID: "first_steps", Name: "First Steps", Description: "Complete 1 quiz", Kind: CondQuizCount, Threshold: 1, Icon: "🥉", XP: 25},
	{ID: "warming_up", Name: "Warming Up", Description: "Reach 5 quizzes", Kind: CondQuizCount, Threshold: 5, Icon: "🥈", XP: 50},
	{ID: "quiz_pro", Name: "Quiz Pro", Description: "Reach 20 quizzes", Kind: CondQuizCount, Threshold: 20, Icon: "🥇", XP: 100},
	{ID: "hot_streak", Name: "Hot Streak", Description: "Daily streak 5+", Kind: CondDailyStreak, Threshold: 5, Icon: "🔥", XP: 50},
	{ID: "flawless", Name: "Flawless", Description: "Score 100% in a quiz", Kind: CondLastQuizPct, Threshold: 100, Icon: "💯", XP: 50},
	{ID: "marathon", Name: "Marathon", Description: "Answer 50 correct in total", Kind: CondCorrectTotal, Threshold: 50, Icon: "🏅", XP: 75},
}

func conditionMet(def AchievementDef, p *models.LearnerProfile) bool {
	switch def.Kind {
	case CondQuizCount:
		return float64(p.QuizCount) >= def.Threshold
	case CondDailyStreak:
		return float64(p.DailyStreak) >= def.Threshold
	case CondCorrectTotal:
		return float64(p.CorrectTotal) >= def.Threshold
	case CondLastQuizPct:
		return p.LastQuizPct >= def.Threshold
	}
	return false
}

// EvaluateAchievements unlocks every achievement whose condition is now true
// and was not unlocked before, crediting its XP reward. Re-running never
// double-awards: membership in the unlocked set is the guard.
func EvaluateAchievements(p *models.LearnerProfile) []AchievementDef {
	var newly []AchievementDef
	for _, def := range Achievements {
		if p.UnlockedAchievements[def.ID] {
			continue
		}
		if !conditionMet(def, p) {
			continue
		}
		p.UnlockedAchievements[def.ID] = true
		p.TotalXP += def.XP
		newly = append(newly, def)
	}
	return newly
}
