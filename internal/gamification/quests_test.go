package gamification

import (
	"testing"
	"time"

	"github.com/project-codexa/backend/internal/models"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestIncrementQuest_DailyCounter(t *testing.T) {
	qs := models.NewQuestState(day(0))

	IncrementQuest(qs, KeyDailyCorrect, 1, false, day(0))
	IncrementQuest(qs, KeyDailyCorrect, 2, false, day(0))

	if qs.DailyCounters[KeyDailyCorrect] != 3 {
		t.Errorf("expected daily_correct 3, got %d", qs.DailyCounters[KeyDailyCorrect])
	}
}

func TestIncrementQuest_QuizMirrorsWeekly(t *testing.T) {
	qs := models.NewQuestState(day(0))

	IncrementQuest(qs, KeyDailyQuizzes, 1, false, day(0))
	IncrementQuest(qs, KeyDailyQuizzes, 1, true, day(0))

	if qs.DailyCounters[KeyDailyQuizzes] != 2 {
		t.Errorf("expected daily quizzes 2, got %d", qs.DailyCounters[KeyDailyQuizzes])
	}
	if qs.WeeklyCounters[KeyWeeklyQuizzes] != 2 {
		t.Errorf("expected weekly quizzes 2, got %d", qs.WeeklyCounters[KeyWeeklyQuizzes])
	}
	if qs.WeeklyCounters[KeyWeekly80Plus] != 1 {
		t.Errorf("expected one high-accuracy quiz, got %d", qs.WeeklyCounters[KeyWeekly80Plus])
	}
}

func TestIncrementQuest_DailyWindowReset(t *testing.T) {
	qs := models.NewQuestState(day(0))
	IncrementQuest(qs, KeyDailyQuizzes, 1, false, day(0))

	IncrementQuest(qs, KeyDailyCorrect, 1, false, day(1))

	if qs.DailyCounters[KeyDailyQuizzes] != 0 {
		t.Errorf("expected daily quizzes zeroed by new day, got %d", qs.DailyCounters[KeyDailyQuizzes])
	}
	if qs.DailyCounters[KeyDailyCorrect] != 1 {
		t.Errorf("expected daily correct 1 in new window, got %d", qs.DailyCounters[KeyDailyCorrect])
	}
	if !qs.DailyResetDate.Equal(day(1)) {
		t.Errorf("expected reset date stamped, got %v", qs.DailyResetDate)
	}
	// Weekly survives a daily rollover.
	if qs.WeeklyCounters[KeyWeeklyQuizzes] != 1 {
		t.Errorf("weekly counter must survive daily reset, got %d", qs.WeeklyCounters[KeyWeeklyQuizzes])
	}
}

func TestIncrementQuest_WeeklyWindowReset(t *testing.T) {
	qs := models.NewQuestState(day(0))
	IncrementQuest(qs, KeyDailyQuizzes, 1, true, day(0))

	IncrementQuest(qs, KeyDailyQuizzes, 1, false, day(7))

	if qs.WeeklyCounters[KeyWeeklyQuizzes] != 1 {
		t.Errorf("expected weekly counter restarted, got %d", qs.WeeklyCounters[KeyWeeklyQuizzes])
	}
	if qs.WeeklyCounters[KeyWeekly80Plus] != 0 {
		t.Errorf("expected high-accuracy counter zeroed, got %d", qs.WeeklyCounters[KeyWeekly80Plus])
	}
	if !qs.WeeklyWindowStart.Equal(day(7)) {
		t.Errorf("expected window start stamped, got %v", qs.WeeklyWindowStart)
	}
}

func TestSettleQuests_PaysOnTarget(t *testing.T) {
	qs := models.NewQuestState(day(0))
	p := models.NewLearnerProfile(1, DefaultAvatar)

	IncrementQuest(qs, KeyDailyQuizzes, 1, false, day(0))
	IncrementQuest(qs, KeyDailyCorrect, 5, false, day(0))

	claimed := SettleQuests(qs, p, day(0))

	if len(claimed) != 2 {
		t.Fatalf("expected 2 claimed quests, got %d", len(claimed))
	}
	if p.TotalXP != 40 || p.Coins != 10 {
		t.Errorf("expected 40 XP / 10 coins, got %d / %d", p.TotalXP, p.Coins)
	}
	if !qs.ClaimedIDs["q_daily_quiz"] || !qs.ClaimedIDs["q_daily_correct"] {
		t.Errorf("expected both ids claimed, got %v", qs.ClaimedIDs)
	}
}

func TestSettleQuests_IdempotentWithinWindow(t *testing.T) {
	qs := models.NewQuestState(day(0))
	p := models.NewLearnerProfile(1, DefaultAvatar)
	IncrementQuest(qs, KeyDailyQuizzes, 1, false, day(0))
	SettleQuests(qs, p, day(0))
	xp, coins := p.TotalXP, p.Coins

	claimed := SettleQuests(qs, p, day(0))

	if len(claimed) != 0 {
		t.Errorf("expected no re-claims, got %d", len(claimed))
	}
	if p.TotalXP != xp || p.Coins != coins {
		t.Error("re-settlement must not pay again")
	}
}

func TestSettleQuests_ClaimClearsOnNewWindow(t *testing.T) {
	qs := models.NewQuestState(day(0))
	p := models.NewLearnerProfile(1, DefaultAvatar)
	IncrementQuest(qs, KeyDailyQuizzes, 1, false, day(0))
	SettleQuests(qs, p, day(0))

	IncrementQuest(qs, KeyDailyQuizzes, 1, false, day(1))
	claimed := SettleQuests(qs, p, day(1))

	if len(claimed) != 1 || claimed[0].ID != "q_daily_quiz" {
		t.Fatalf("expected q_daily_quiz claimable again in new window, got %v", claimed)
	}
}

func TestSettleQuests_WeeklyTargets(t *testing.T) {
	qs := models.NewQuestState(day(0))
	p := models.NewLearnerProfile(1, DefaultAvatar)

	// Ten quizzes across the week, three of them high-accuracy.
	for i := 0; i < 10; i++ {
		IncrementQuest(qs, KeyDailyQuizzes, 1, i < 3, day(i%6))
	}

	claimed := SettleQuests(qs, p, day(5))

	ids := make(map[string]bool)
	for _, q := range claimed {
		ids[q.ID] = true
	}
	if !ids["q_weekly_quizzes"] {
		t.Errorf("expected q_weekly_quizzes claimed, got %v", ids)
	}
	if !ids["q_weekly_accuracy"] {
		t.Errorf("expected q_weekly_accuracy claimed, got %v", ids)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b time.Time
		want int
	}{
		{day(0), day(0), 0},
		{day(0), day(1), 1},
		{day(0), day(7), 7},
		{day(3), day(1), -2},
	}
	for _, tt := range tests {
		if got := daysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("daysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
