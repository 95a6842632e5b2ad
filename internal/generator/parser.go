package generator

import (
	"log"
	"regexp"
	"strings"

	"github.com/project-codexa/backend/internal/models"
)

// The quiz wire format produced by the model:
//
//	[QUIZ START]
//	[QUESTION]
//	Question: ...
//	[A] ...
//	[B] ...
//	[C] ...
//	[CORRECT: A]
//	[/QUESTION]
//	... (five question sub-blocks)
//	[QUIZ END]

var (
	quizBlockRe = regexp.MustCompile(`(?s)\[QUIZ START\](.*?)\[QUIZ END\]`)
	questionRe  = regexp.MustCompile(`(?s)\[QUESTION\](.*?)\[/QUESTION\]`)
	promptRe    = regexp.MustCompile(`(?m)^\s*Question:\s*(.+?)\s*$`)
	correctRe   = regexp.MustCompile(`(?m)^\s*\[CORRECT:\s*([A-C])\s*\]`)
)

var optionRes = [models.OptionCount]*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*\[A\]\s*(.+?)\s*$`),
	regexp.MustCompile(`(?m)^\s*\[B\]\s*(.+?)\s*$`),
	regexp.MustCompile(`(?m)^\s*\[C\]\s*(.+?)\s*$`),
}

// ParseQuizBlock extracts question records from raw model output. It is
// deliberately lenient: missing outer delimiters yield an empty slice, and a
// malformed sub-block (no prompt line, or a missing option) is dropped rather
// than failing the batch. Callers must not assume five questions come back.
func ParseQuizBlock(raw string) []models.QuestionRecord {
	m := quizBlockRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	var items []models.QuestionRecord
	for _, qm := range questionRe.FindAllStringSubmatch(m[1], -1) {
		block := qm[1]

		question := ""
		if pm := promptRe.FindStringSubmatch(block); pm != nil {
			question = strings.TrimSpace(pm[1])
		}

		options := make([]string, models.OptionCount)
		complete := question != ""
		for i, re := range optionRes {
			om := re.FindStringSubmatch(block)
			if om == nil {
				complete = false
				continue
			}
			options[i] = strings.TrimSpace(om[1])
		}
		if !complete {
			continue
		}

		// A missing or unparseable correctness marker falls back to option A.
		// Logged so generation bugs don't masquerade as wrong answer keys.
		correctIndex := 0
		if cm := correctRe.FindStringSubmatch(block); cm != nil {
			correctIndex = int(cm[1][0] - 'A')
		} else {
			log.Printf("[generator] question %q has no parseable correctness marker, defaulting to A", question)
		}

		items = append(items, models.QuestionRecord{
			Question:     question,
			Options:      options,
			CorrectIndex: correctIndex,
		})
	}
	return items
}

// ResolveAnswerIndex maps a textual answer back to its option index,
// returning models.AnswerNotFound when no option matches.
func ResolveAnswerIndex(options []string, answer string) int {
	for i, opt := range options {
		if opt == answer {
			return i
		}
	}
	return models.AnswerNotFound
}
