package gamification

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/project-codexa/backend/internal/models"
	"github.com/project-codexa/backend/internal/session"
)

// GameWinXP is awarded when a learner wins a credit-gated mini-game.
const GameWinXP = 10

type Handler struct {
	sessions *session.Manager
}

func NewHandler(sessions *session.Manager) *Handler {
	return &Handler{sessions: sessions}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ── Profile ─────────────────────────────────────────────

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	p := sess.Profile
	avatars := make([]string, 0, len(p.UnlockedAvatars))
	for a := range p.UnlockedAvatars {
		avatars = append(avatars, a)
	}
	sort.Strings(avatars)

	achieved := make([]string, 0, len(p.UnlockedAchievements))
	for id := range p.UnlockedAchievements {
		achieved = append(achieved, id)
	}
	sort.Strings(achieved)

	writeJSON(w, http.StatusOK, models.ProfileResponse{
		TotalXP:         p.TotalXP,
		Level:           Level(p.TotalXP),
		Rank:            Rank(p.TotalXP),
		Badge:           Badge(p.QuizCount),
		Coins:           p.Coins,
		Credits:         p.Credits,
		DailyStreak:     p.DailyStreak,
		CorrectStreak:   p.CorrectStreak,
		CorrectTotal:    p.CorrectTotal,
		QuizCount:       p.QuizCount,
		LastQuizPct:     p.LastQuizPct,
		Avatar:          p.Avatar,
		UnlockedAvatars: avatars,
		Achievements:    achieved,
	})
}

// ── Quests ──────────────────────────────────────────────

// GetQuests settles anything claimable, then lists both windows with current
// progress. Settlement here means a learner who finished a quest yesterday
// but never hit the gate endpoint again still gets paid on their next visit.
func (h *Handler) GetQuests(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	claimed := SettleQuests(sess.Quests, sess.Profile, time.Now().UTC())
	if len(claimed) > 0 {
		if err := h.sessions.Save(sess); err != nil {
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save quest rewards"})
			return
		}
	}

	resp := models.QuestsResponse{}
	for _, q := range claimed {
		resp.NewlyClaimed = append(resp.NewlyClaimed, q.ID)
	}
	for _, q := range DailyQuests {
		resp.Daily = append(resp.Daily, questEntry(q, sess.Quests.DailyCounters, sess.Quests.ClaimedIDs))
	}
	for _, q := range WeeklyQuests {
		resp.Weekly = append(resp.Weekly, questEntry(q, sess.Quests.WeeklyCounters, sess.Quests.ClaimedIDs))
	}

	writeJSON(w, http.StatusOK, resp)
}

func questEntry(q QuestDef, counters map[string]int, claimed map[string]bool) models.QuestEntry {
	progress := counters[q.Key]
	if progress > q.Target {
		progress = q.Target
	}
	return models.QuestEntry{
		ID:          q.ID,
		Name:        q.Name,
		Description: q.Description,
		Scope:       string(q.Scope),
		Target:      q.Target,
		Progress:    progress,
		RewardXP:    q.RewardXP,
		RewardCoins: q.RewardCoins,
		Claimed:     claimed[q.ID],
	}
}

// ── Shop ────────────────────────────────────────────────

func (h *Handler) ListShop(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":   ShopItems,
		"avatars": Avatars,
	})
}

func (h *Handler) BuyItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, found := FindShopItem(req.ItemID)
	if !found {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Unknown shop item"})
		return
	}

	if err := ApplyPurchase(item, sess.Profile); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessions.Save(sess); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save purchase"})
		return
	}

	writeJSON(w, http.StatusOK, models.PurchaseResponse{
		ItemID:         item.ID,
		CoinsRemaining: sess.Profile.Coins,
		Credits:        sess.Profile.Credits,
	})
}

func (h *Handler) SelectAvatar(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.SelectAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := SelectAvatar(sess.Profile, req.Avatar); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessions.Save(sess); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save avatar"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"avatar": sess.Profile.Avatar})
}

// ── Mini-Game Credits ───────────────────────────────────

func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := SpendCredit(sess.Profile); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessions.Save(sess); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save game start"})
		return
	}

	writeJSON(w, http.StatusOK, models.GameStartResponse{CreditsRemaining: sess.Profile.Credits})
}

func (h *Handler) CompleteGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.GameCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp := models.GameCompleteResponse{}
	if req.Won {
		sess.Profile.TotalXP += GameWinXP
		RefundCredit(sess.Profile)
		resp.XPAwarded = GameWinXP
		resp.CreditRefunded = true
	}
	resp.Credits = sess.Profile.Credits

	if err := h.sessions.Save(sess); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save game result"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ── Helpers ─────────────────────────────────────────────

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
