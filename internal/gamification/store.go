package gamification

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/project-codexa/backend/internal/models"
	"github.com/project-codexa/backend/internal/session"
)

// Store round-trips learner state against Postgres. It implements
// session.Loader so the session manager can hydrate on first touch.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ session.Loader = (*Store)(nil)

// LoadSession hydrates the full session context for a user, creating default
// rows on first touch. The progress table is rebuilt from history so the two
// can never disagree.
func (s *Store) LoadSession(userID int64) (*session.Session, error) {
	profile, err := s.getOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	if err := s.loadSets(profile); err != nil {
		return nil, err
	}

	quests, err := s.getOrCreateQuestState(userID)
	if err != nil {
		return nil, err
	}

	history, err := s.listHistory(userID)
	if err != nil {
		return nil, err
	}

	progress := make(models.ProgressTable)
	for _, rec := range history {
		progress.Accumulate(rec.Subject, rec.Chapter, rec.CorrectCount, rec.TotalQuestions)
	}

	return &session.Session{
		Profile:    profile,
		Quests:     quests,
		History:    history,
		Progress:   progress,
		ClassLevel: "10",
		Language:   "English",
	}, nil
}

// SaveSession persists profile, quest state, set-valued unlocks and any
// history entries appended since the last save.
func (s *Store) SaveSession(sess *session.Session) error {
	userID := sess.Profile.UserID

	if err := s.saveProfile(sess.Profile); err != nil {
		return err
	}
	if err := s.saveSets(sess.Profile); err != nil {
		return err
	}
	if err := s.saveQuestState(userID, sess.Quests); err != nil {
		return err
	}
	return s.appendNewHistory(userID, sess.History)
}

// ── Profile ─────────────────────────────────────────────

func (s *Store) getOrCreateProfile(userID int64) (*models.LearnerProfile, error) {
	p := &models.LearnerProfile{
		UserID:               userID,
		UnlockedAvatars:      make(map[string]bool),
		UnlockedAchievements: make(map[string]bool),
	}

	var lastActive sql.NullTime
	err := s.db.QueryRow(
		`SELECT total_xp, coins, credits, daily_streak, last_active_date,
		        correct_streak, correct_total, quiz_count, last_quiz_pct, avatar
		 FROM learner_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.TotalXP, &p.Coins, &p.Credits, &p.DailyStreak, &lastActive,
		&p.CorrectStreak, &p.CorrectTotal, &p.QuizCount, &p.LastQuizPct, &p.Avatar)

	if err == sql.ErrNoRows {
		p = models.NewLearnerProfile(userID, DefaultAvatar)
		_, err = s.db.Exec(
			`INSERT INTO learner_profiles (user_id, credits, avatar) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id) DO NOTHING`,
			userID, p.Credits, p.Avatar,
		)
		if err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if lastActive.Valid {
		t := lastActive.Time.UTC().Truncate(24 * time.Hour)
		p.LastActiveDate = &t
	}
	return p, nil
}

func (s *Store) saveProfile(p *models.LearnerProfile) error {
	var lastActive interface{}
	if p.LastActiveDate != nil {
		lastActive = *p.LastActiveDate
	}
	_, err := s.db.Exec(
		`UPDATE learner_profiles
		 SET total_xp = $2, coins = $3, credits = $4, daily_streak = $5,
		     last_active_date = $6, correct_streak = $7, correct_total = $8,
		     quiz_count = $9, last_quiz_pct = $10, avatar = $11, updated_at = NOW()
		 WHERE user_id = $1`,
		p.UserID, p.TotalXP, p.Coins, p.Credits, p.DailyStreak,
		lastActive, p.CorrectStreak, p.CorrectTotal, p.QuizCount, p.LastQuizPct, p.Avatar,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *Store) loadSets(p *models.LearnerProfile) error {
	rows, err := s.db.Query(`SELECT avatar FROM unlocked_avatars WHERE user_id = $1`, p.UserID)
	if err != nil {
		return fmt.Errorf("load avatars: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var avatar string
		if err := rows.Scan(&avatar); err != nil {
			return err
		}
		p.UnlockedAvatars[avatar] = true
	}
	// The default avatar is always available even for legacy rows.
	p.UnlockedAvatars[DefaultAvatar] = true

	achRows, err := s.db.Query(`SELECT achievement FROM achievements WHERE user_id = $1`, p.UserID)
	if err != nil {
		return fmt.Errorf("load achievements: %w", err)
	}
	defer achRows.Close()
	for achRows.Next() {
		var id string
		if err := achRows.Scan(&id); err != nil {
			return err
		}
		p.UnlockedAchievements[id] = true
	}
	return nil
}

func (s *Store) saveSets(p *models.LearnerProfile) error {
	for avatar := range p.UnlockedAvatars {
		if _, err := s.db.Exec(
			`INSERT INTO unlocked_avatars (user_id, avatar) VALUES ($1, $2)
			 ON CONFLICT (user_id, avatar) DO NOTHING`,
			p.UserID, avatar,
		); err != nil {
			return fmt.Errorf("save avatar unlock: %w", err)
		}
	}
	for id := range p.UnlockedAchievements {
		if _, err := s.db.Exec(
			`INSERT INTO achievements (user_id, achievement) VALUES ($1, $2)
			 ON CONFLICT (user_id, achievement) DO NOTHING`,
			p.UserID, id,
		); err != nil {
			return fmt.Errorf("save achievement: %w", err)
		}
	}
	return nil
}

// ── Quest State ─────────────────────────────────────────

func (s *Store) getOrCreateQuestState(userID int64) (*models.QuestState, error) {
	var (
		dailyJSON, weeklyJSON, claimedJSON []byte
		qs                                 = models.NewQuestState(time.Now().UTC().Truncate(24 * time.Hour))
	)

	err := s.db.QueryRow(
		`SELECT daily_counters, daily_reset_date, weekly_counters, weekly_window_start, claimed_ids
		 FROM quest_state WHERE user_id = $1`,
		userID,
	).Scan(&dailyJSON, &qs.DailyResetDate, &weeklyJSON, &qs.WeeklyWindowStart, &claimedJSON)

	if err == sql.ErrNoRows {
		if _, err := s.db.Exec(
			`INSERT INTO quest_state (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
			userID,
		); err != nil {
			return nil, fmt.Errorf("create quest state: %w", err)
		}
		return qs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load quest state: %w", err)
	}

	if err := json.Unmarshal(dailyJSON, &qs.DailyCounters); err != nil {
		log.Printf("[gamification] corrupt daily counters for user %d, resetting: %v", userID, err)
		qs.DailyCounters = make(map[string]int)
	}
	if err := json.Unmarshal(weeklyJSON, &qs.WeeklyCounters); err != nil {
		log.Printf("[gamification] corrupt weekly counters for user %d, resetting: %v", userID, err)
		qs.WeeklyCounters = make(map[string]int)
	}
	var claimed []string
	if err := json.Unmarshal(claimedJSON, &claimed); err == nil {
		for _, id := range claimed {
			qs.ClaimedIDs[id] = true
		}
	}
	qs.DailyResetDate = qs.DailyResetDate.UTC().Truncate(24 * time.Hour)
	qs.WeeklyWindowStart = qs.WeeklyWindowStart.UTC().Truncate(24 * time.Hour)
	return qs, nil
}

func (s *Store) saveQuestState(userID int64, qs *models.QuestState) error {
	dailyJSON, err := json.Marshal(qs.DailyCounters)
	if err != nil {
		return fmt.Errorf("marshal daily counters: %w", err)
	}
	weeklyJSON, err := json.Marshal(qs.WeeklyCounters)
	if err != nil {
		return fmt.Errorf("marshal weekly counters: %w", err)
	}
	claimed := make([]string, 0, len(qs.ClaimedIDs))
	for id := range qs.ClaimedIDs {
		claimed = append(claimed, id)
	}
	claimedJSON, err := json.Marshal(claimed)
	if err != nil {
		return fmt.Errorf("marshal claimed ids: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO quest_state (user_id, daily_counters, daily_reset_date, weekly_counters, weekly_window_start, claimed_ids, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   daily_counters = EXCLUDED.daily_counters,
		   daily_reset_date = EXCLUDED.daily_reset_date,
		   weekly_counters = EXCLUDED.weekly_counters,
		   weekly_window_start = EXCLUDED.weekly_window_start,
		   claimed_ids = EXCLUDED.claimed_ids,
		   updated_at = NOW()`,
		userID, dailyJSON, qs.DailyResetDate, weeklyJSON, qs.WeeklyWindowStart, claimedJSON,
	)
	if err != nil {
		return fmt.Errorf("save quest state: %w", err)
	}
	return nil
}

// ── History ─────────────────────────────────────────────

func (s *Store) listHistory(userID int64) ([]models.ProgressRecord, error) {
	rows, err := s.db.Query(
		`SELECT quiz_date, subject, chapter, correct_count, total_questions, xp_awarded
		 FROM progress_history WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var history []models.ProgressRecord
	for rows.Next() {
		var rec models.ProgressRecord
		if err := rows.Scan(&rec.Date, &rec.Subject, &rec.Chapter,
			&rec.CorrectCount, &rec.TotalQuestions, &rec.XPAwarded); err != nil {
			return nil, err
		}
		rec.Date = rec.Date.UTC().Truncate(24 * time.Hour)
		history = append(history, rec)
	}
	return history, rows.Err()
}

// appendNewHistory inserts only the entries beyond what is already persisted.
// History is append-only, so the persisted count is a stable cursor.
func (s *Store) appendNewHistory(userID int64, history []models.ProgressRecord) error {
	var persisted int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM progress_history WHERE user_id = $1`, userID,
	).Scan(&persisted); err != nil {
		return fmt.Errorf("count history: %w", err)
	}

	for _, rec := range history[min(persisted, len(history)):] {
		if _, err := s.db.Exec(
			`INSERT INTO progress_history (user_id, quiz_date, subject, chapter, correct_count, total_questions, xp_awarded)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			userID, rec.Date, rec.Subject, rec.Chapter, rec.CorrectCount, rec.TotalQuestions, rec.XPAwarded,
		); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
	}
	return nil
}
