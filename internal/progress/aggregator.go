// Package progress derives read-only analytics from quiz history. Every
// function is deterministic over its inputs and mutates nothing.
package progress

import (
	"sort"

	"github.com/project-codexa/backend/internal/gamification"
	"github.com/project-codexa/backend/internal/models"
)

// OverallAccuracy is total correct over total questions across all history,
// as a percentage. Empty history yields 0.
func OverallAccuracy(history []models.ProgressRecord) float64 {
	correct, total := 0, 0
	for _, rec := range history {
		correct += rec.CorrectCount
		total += rec.TotalQuestions
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}

// ChapterMasteries lists per-chapter accuracy from the accumulation table,
// sorted by subject then chapter. A chapter is mastered at 70% or better.
func ChapterMasteries(table models.ProgressTable) []models.ChapterMastery {
	var out []models.ChapterMastery
	for subject, chapters := range table {
		for chapter, cs := range chapters {
			total := cs.Total
			if total < 1 {
				total = 1
			}
			acc := 100 * float64(cs.Score) / float64(total)
			out = append(out, models.ChapterMastery{
				Subject:  subject,
				Chapter:  chapter,
				Accuracy: acc,
				Mastered: acc >= gamification.MasteryThreshold,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		return out[i].Chapter < out[j].Chapter
	})
	return out
}

// MasterySummary rolls chapter masteries up into a completion percentage.
func MasterySummary(table models.ProgressTable) models.MasteryResponse {
	chapters := ChapterMasteries(table)
	mastered := 0
	for _, c := range chapters {
		if c.Mastered {
			mastered++
		}
	}
	pct := 0.0
	if len(chapters) > 0 {
		pct = 100 * float64(mastered) / float64(len(chapters))
	}
	return models.MasteryResponse{
		Chapters:          chapters,
		MasteredChapters:  mastered,
		AttemptedChapters: len(chapters),
		CompletionPct:     pct,
	}
}

// ActivityByDate aggregates history per calendar day for heatmap and
// timeline rendering, sorted by date ascending.
func ActivityByDate(history []models.ProgressRecord) []models.DailyActivity {
	byDate := make(map[string]*models.DailyActivity)
	for _, rec := range history {
		key := rec.Date.UTC().Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &models.DailyActivity{Date: key}
			byDate[key] = day
		}
		day.Quizzes++
		day.Correct += rec.CorrectCount
		day.Questions += rec.TotalQuestions
		day.XP += rec.XPAwarded
	}

	out := make([]models.DailyActivity, 0, len(byDate))
	for _, day := range byDate {
		if day.Questions > 0 {
			day.Accuracy = 100 * float64(day.Correct) / float64(day.Questions)
		}
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Stats summarizes lifetime quiz performance for the overview cards.
func Stats(history []models.ProgressRecord, table models.ProgressTable, quizCount int) models.ProgressStatsResponse {
	return models.ProgressStatsResponse{
		QuizCount:       quizCount,
		OverallAccuracy: OverallAccuracy(history),
		SubjectCount:    len(table),
		Badge:           gamification.Badge(quizCount),
	}
}
