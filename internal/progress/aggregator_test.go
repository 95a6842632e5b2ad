package progress

import (
	"testing"
	"time"

	"github.com/project-codexa/backend/internal/models"
)

func record(dayOffset int, subject, chapter string, correct, total, xp int) models.ProgressRecord {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return models.ProgressRecord{
		Date:           base.AddDate(0, 0, dayOffset),
		Subject:        subject,
		Chapter:        chapter,
		CorrectCount:   correct,
		TotalQuestions: total,
		XPAwarded:      xp,
	}
}

func TestOverallAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		history []models.ProgressRecord
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []models.ProgressRecord{record(0, "Maths", "Integers", 4, 5, 45)}, 80},
		{"mixed", []models.ProgressRecord{
			record(0, "Maths", "Integers", 4, 5, 45),
			record(1, "Physics", "Sound", 2, 5, 10),
		}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallAccuracy(tt.history); got != tt.want {
				t.Errorf("OverallAccuracy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChapterMasteries(t *testing.T) {
	table := make(models.ProgressTable)
	table.Accumulate("Maths", "Integers", 4, 5)
	table.Accumulate("Maths", "Integers", 4, 5)
	table.Accumulate("Maths", "Algebra", 2, 5)
	table.Accumulate("Physics", "Sound", 5, 5)

	out := ChapterMasteries(table)

	if len(out) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(out))
	}
	// Sorted by subject, then chapter.
	if out[0].Chapter != "Algebra" || out[1].Chapter != "Integers" || out[2].Chapter != "Sound" {
		t.Errorf("unexpected order: %v", out)
	}
	if out[0].Mastered {
		t.Error("40% chapter must not be mastered")
	}
	if !out[1].Mastered || out[1].Accuracy != 80 {
		t.Errorf("expected Integers mastered at 80, got %+v", out[1])
	}
	if !out[2].Mastered || out[2].Accuracy != 100 {
		t.Errorf("expected Sound mastered at 100, got %+v", out[2])
	}
}

func TestMasterySummary(t *testing.T) {
	table := make(models.ProgressTable)
	table.Accumulate("Maths", "Integers", 4, 5)
	table.Accumulate("Maths", "Algebra", 2, 5)

	resp := MasterySummary(table)

	if resp.AttemptedChapters != 2 || resp.MasteredChapters != 1 {
		t.Errorf("expected 1/2 mastered, got %d/%d", resp.MasteredChapters, resp.AttemptedChapters)
	}
	if resp.CompletionPct != 50 {
		t.Errorf("expected 50%% completion, got %v", resp.CompletionPct)
	}
}

func TestMasterySummary_Empty(t *testing.T) {
	resp := MasterySummary(make(models.ProgressTable))
	if resp.CompletionPct != 0 || resp.AttemptedChapters != 0 {
		t.Errorf("expected zeroed summary, got %+v", resp)
	}
}

func TestActivityByDate(t *testing.T) {
	history := []models.ProgressRecord{
		record(1, "Physics", "Sound", 2, 5, 10),
		record(0, "Maths", "Integers", 4, 5, 45),
		record(0, "Maths", "Algebra", 5, 5, 50),
	}

	days := ActivityByDate(history)

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2026-03-02" || days[1].Date != "2026-03-03" {
		t.Errorf("expected ascending dates, got %s / %s", days[0].Date, days[1].Date)
	}

	first := days[0]
	if first.Quizzes != 2 || first.Correct != 9 || first.Questions != 10 || first.XP != 95 {
		t.Errorf("unexpected aggregation: %+v", first)
	}
	if first.Accuracy != 90 {
		t.Errorf("expected 90%% day accuracy, got %v", first.Accuracy)
	}
}

func TestStats(t *testing.T) {
	history := []models.ProgressRecord{
		record(0, "Maths", "Integers", 4, 5, 45),
		record(1, "Physics", "Sound", 2, 5, 10),
	}
	table := make(models.ProgressTable)
	for _, rec := range history {
		table.Accumulate(rec.Subject, rec.Chapter, rec.CorrectCount, rec.TotalQuestions)
	}

	stats := Stats(history, table, 12)

	if stats.QuizCount != 12 {
		t.Errorf("expected quiz count 12, got %d", stats.QuizCount)
	}
	if stats.OverallAccuracy != 60 {
		t.Errorf("expected 60%% accuracy, got %v", stats.OverallAccuracy)
	}
	if stats.SubjectCount != 2 {
		t.Errorf("expected 2 subjects, got %d", stats.SubjectCount)
	}
	if stats.Badge != "Bronze" {
		t.Errorf("expected Bronze badge at 12 quizzes, got %q", stats.Badge)
	}
}
