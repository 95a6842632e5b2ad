package models

import "time"

// QuestState holds the time-windowed objective counters for one learner.
// Daily counters reset the first time a quest-affecting event lands on a date
// later than DailyResetDate; weekly counters reset once 7 or more days have
// elapsed since WeeklyWindowStart. ClaimedIDs prevents a quest from paying
// out more than once per window.
type QuestState struct {
	DailyCounters     map[string]int  `json:"daily_counters"`
	DailyResetDate    time.Time       `json:"daily_reset_date"`
	WeeklyCounters    map[string]int  `json:"weekly_counters"`
	WeeklyWindowStart time.Time       `json:"weekly_window_start"`
	ClaimedIDs        map[string]bool `json:"-"`
}

// NewQuestState returns zeroed counters with both windows anchored at today.
func NewQuestState(today time.Time) *QuestState {
	return &QuestState{
		DailyCounters:     make(map[string]int),
		DailyResetDate:    today,
		WeeklyCounters:    make(map[string]int),
		WeeklyWindowStart: today,
		ClaimedIDs:        make(map[string]bool),
	}
}

// ── Response Types ────────────────────────────────────────

type QuestEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	Target      int    `json:"target"`
	Progress    int    `json:"progress"`
	RewardXP    int    `json:"reward_xp"`
	RewardCoins int    `json:"reward_coins"`
	Claimed     bool   `json:"claimed"`
}

type QuestsResponse struct {
	Daily        []QuestEntry `json:"daily"`
	Weekly       []QuestEntry `json:"weekly"`
	NewlyClaimed []string     `json:"newly_claimed,omitempty"`
}
