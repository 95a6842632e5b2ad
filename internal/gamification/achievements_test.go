package gamification

import (
	"testing"

	"github.com/project-codexa/backend/internal/models"
)

func TestEvaluateAchievements_FreshProfile(t *testing.T) {
	p := models.NewLearnerProfile(1, DefaultAvatar)

	if newly := EvaluateAchievements(p); len(newly) != 0 {
		t.Errorf("fresh profile should unlock nothing, got %d", len(newly))
	}
}

func TestEvaluateAchievements_UnlocksAndPays(t *testing.T) {
	p := models.NewLearnerProfile(1, DefaultAvatar)
	p.QuizCount = 5
	p.LastQuizPct = 100

	newly := EvaluateAchievements(p)

	wantIDs := map[string]bool{"first_steps": true, "warming_up": true, "flawless": true}
	if len(newly) != len(wantIDs) {
		t.Fatalf("expected %d unlocks, got %d", len(wantIDs), len(newly))
	}
	wantXP := 0
	for _, def := range newly {
		if !wantIDs[def.ID] {
			t.Errorf("unexpected unlock %s", def.ID)
		}
		wantXP += def.XP
	}
	if p.TotalXP != wantXP {
		t.Errorf("expected %d XP from unlocks, got %d", wantXP, p.TotalXP)
	}
	for id := range wantIDs {
		if !p.UnlockedAchievements[id] {
			t.Errorf("expected %s marked unlocked", id)
		}
	}
}

func TestEvaluateAchievements_Idempotent(t *testing.T) {
	p := models.NewLearnerProfile(1, DefaultAvatar)
	p.QuizCount = 1

	first := EvaluateAchievements(p)
	if len(first) != 1 || first[0].ID != "first_steps" {
		t.Fatalf("expected first_steps, got %v", first)
	}
	xp := p.TotalXP

	second := EvaluateAchievements(p)
	if len(second) != 0 {
		t.Errorf("re-evaluation must unlock nothing, got %d", len(second))
	}
	if p.TotalXP != xp {
		t.Errorf("re-evaluation must not pay again: %d -> %d", xp, p.TotalXP)
	}
}

func TestEvaluateAchievements_LaterProgress(t *testing.T) {
	p := models.NewLearnerProfile(1, DefaultAvatar)
	p.QuizCount = 1
	EvaluateAchievements(p)

	p.QuizCount = 20
	p.CorrectTotal = 50

	newly := EvaluateAchievements(p)

	ids := make(map[string]bool)
	for _, def := range newly {
		ids[def.ID] = true
	}
	for _, want := range []string{"warming_up", "quiz_pro", "marathon"} {
		if !ids[want] {
			t.Errorf("expected %s unlocked, got %v", want, ids)
		}
	}
	if ids["first_steps"] {
		t.Error("first_steps must not unlock twice")
	}
}
