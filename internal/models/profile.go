package models

import "time"

// DefaultCredits is the number of game credits a fresh profile starts with.
const DefaultCredits = 3

// LearnerProfile is the process-wide reward state for one learner. It is
// mutated only by the reward ledger; levels and ranks are derived from
// TotalXP and never stored.
type LearnerProfile struct {
	UserID          int64           `json:"user_id"`
	TotalXP         int             `json:"total_xp"`
	Coins           int             `json:"coins"`
	Credits         int             `json:"credits"`
	DailyStreak     int             `json:"daily_streak"`
	LastActiveDate  *time.Time      `json:"last_active_date,omitempty"`
	CorrectStreak   int             `json:"correct_streak"`
	CorrectTotal    int             `json:"correct_total"`
	QuizCount       int             `json:"quiz_count"`
	LastQuizPct     float64         `json:"last_quiz_pct"`
	Avatar          string          `json:"avatar"`
	UnlockedAvatars map[string]bool `json:"-"`

	// UnlockedAchievements is keyed by achievement id. Membership is the
	// idempotency guard for achievement payout.
	UnlockedAchievements map[string]bool `json:"-"`
}

// NewLearnerProfile returns the starting profile for a user, with the
// default avatar already unlocked.
func NewLearnerProfile(userID int64, defaultAvatar string) *LearnerProfile {
	return &LearnerProfile{
		UserID:               userID,
		Credits:              DefaultCredits,
		Avatar:               defaultAvatar,
		UnlockedAvatars:      map[string]bool{defaultAvatar: true},
		UnlockedAchievements: make(map[string]bool),
	}
}

// ── Request Types ─────────────────────────────────────────

type PurchaseRequest struct {
	ItemID string `json:"item_id"`
}

type SelectAvatarRequest struct {
	Avatar string `json:"avatar"`
}

type GameCompleteRequest struct {
	Won bool `json:"won"`
}

// ── Response Types ────────────────────────────────────────

type ProfileResponse struct {
	TotalXP         int      `json:"total_xp"`
	Level           int      `json:"level"`
	Rank            string   `json:"rank"`
	Badge           string   `json:"badge"`
	Coins           int      `json:"coins"`
	Credits         int      `json:"credits"`
	DailyStreak     int      `json:"daily_streak"`
	CorrectStreak   int      `json:"correct_streak"`
	CorrectTotal    int      `json:"correct_total"`
	QuizCount       int      `json:"quiz_count"`
	LastQuizPct     float64  `json:"last_quiz_pct"`
	Avatar          string   `json:"avatar"`
	UnlockedAvatars []string `json:"unlocked_avatars"`
	Achievements    []string `json:"achievements"`
}

type PurchaseResponse struct {
	ItemID         string `json:"item_id"`
	CoinsRemaining int    `json:"coins_remaining"`
	Credits        int    `json:"credits"`
}

type GameStartResponse struct {
	CreditsRemaining int `json:"credits_remaining"`
}

type GameCompleteResponse struct {
	XPAwarded      int  `json:"xp_awarded"`
	CreditRefunded bool `json:"credit_refunded"`
	Credits        int  `json:"credits"`
}
