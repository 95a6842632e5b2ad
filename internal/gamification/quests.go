package gamification

import (
	"time"

	"github.com/project-codexa/backend/internal/models"
)

// Quest counter keys. Daily keys are tracked in the daily window; the quiz
// key mirrors into the weekly counters.
const (
	KeyDailyQuizzes  = "daily_quizzes"
	KeyDailyCorrect  = "daily_correct"
	KeyWeeklyQuizzes = "weekly_quizzes"
	KeyWeekly80Plus  = "weekly_80plus"
)

type QuestScope string

const (
	ScopeDaily  QuestScope = "daily"
	ScopeWeekly QuestScope = "weekly"
)

// QuestDef is one counted objective with a one-time reward per window.
type QuestDef struct {
	ID          string
	Name        string
	Description string
	Scope       QuestScope
	Key         string
	Target      int
	RewardXP    int
	RewardCoins int
}

var DailyQuests = []QuestDef{
	{ID: "q_daily_quiz", Name: "Daily Quizzer", Description: "Complete 1 quiz today", Scope: ScopeDaily, Key: KeyDailyQuizzes, Target: 1, RewardXP: 20, RewardCoins: 5},
	{ID: "q_daily_correct", Name: "Sharp Mind", Description: "Get 5 correct answers today", Scope: ScopeDaily, Key: KeyDailyCorrect, Target: 5, RewardXP: 20, RewardCoins: 5},
}

var WeeklyQuests = []QuestDef{
	{ID: "q_weekly_quizzes", Name: "Weekly Warrior", Description: "Complete 10 quizzes this week", Scope: ScopeWeekly, Key: KeyWeeklyQuizzes, Target: 10, RewardXP: 100, RewardCoins: 25},
	{ID: "q_weekly_accuracy", Name: "Precision", Description: "Achieve 80%+ in 3 quizzes this week", Scope: ScopeWeekly, Key: KeyWeekly80Plus, Target: 3, RewardXP: 100, RewardCoins: 25},
}

// resetWindows zeroes expired windows before any counter is touched or read.
// Daily counters reset on the first event of a new day; weekly counters once
// 7 or more days have elapsed since the window start. Claimed ids belonging
// to a reset scope are cleared so quests can pay again in the new window.
func resetWindows(qs *models.QuestState, today time.Time) {
	if !sameDate(qs.DailyResetDate, today) {
		qs.DailyCounters = make(map[string]int)
		qs.DailyResetDate = today
		for _, q := range DailyQuests {
			delete(qs.ClaimedIDs, q.ID)
		}
	}
	if daysBetween(qs.WeeklyWindowStart, today) >= 7 {
		qs.WeeklyCounters = make(map[string]int)
		qs.WeeklyWindowStart = today
		for _, q := range WeeklyQuests {
			delete(qs.ClaimedIDs, q.ID)
		}
	}
}

// IncrementQuest applies one quest-affecting event. A quiz-completion event
// mirrors into the weekly quiz counter and, when the attempt hit the
// high-accuracy bar, the weekly precision counter.
func IncrementQuest(qs *models.QuestState, key string, amount int, highAccuracy bool, today time.Time) {
	resetWindows(qs, today)

	qs.DailyCounters[key] += amount
	if key == KeyDailyQuizzes {
		qs.WeeklyCounters[KeyWeeklyQuizzes] += amount
		if highAccuracy {
			qs.WeeklyCounters[KeyWeekly80Plus]++
		}
	}
}

// SettleQuests pays every quest whose counter reached its target and that has
// not already been claimed this window, crediting XP and coins to the
// profile. Claimed ids make settlement idempotent within a window.
func SettleQuests(qs *models.QuestState, p *models.LearnerProfile, today time.Time) []QuestDef {
	resetWindows(qs, today)

	var claimed []QuestDef
	for _, q := range append(append([]QuestDef{}, DailyQuests...), WeeklyQuests...) {
		if qs.ClaimedIDs[q.ID] {
			continue
		}
		counter := qs.DailyCounters
		if q.Scope == ScopeWeekly {
			counter = qs.WeeklyCounters
		}
		if counter[q.Key] < q.Target {
			continue
		}
		qs.ClaimedIDs[q.ID] = true
		p.TotalXP += q.RewardXP
		p.Coins += q.RewardCoins
		claimed = append(claimed, q)
	}
	return claimed
}

// sameDate reports whether a and b fall on the same UTC calendar day.
func sameDate(a, b time.Time) bool {
	return a.UTC().Format("2006-01-02") == b.UTC().Format("2006-01-02")
}

// daysBetween returns whole days from a to b.
func daysBetween(a, b time.Time) int {
	a = a.UTC().Truncate(24 * time.Hour)
	b = b.UTC().Truncate(24 * time.Hour)
	return int(b.Sub(a).Hours() / 24)
}
