package generator

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ExpectedQuestions is how many MCQs a well-formed quiz block must contain.
const ExpectedQuestions = 5

// ValidationError collects everything wrong with a generated quiz block.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateQuizBlock is the strict producer-side gate: exactly five sub-blocks,
// each with a prompt line, all three options and one parseable correctness
// marker. It exists for the generation retry loop; gameplay parsing uses the
// lenient ParseQuizBlock instead.
func ValidateQuizBlock(raw string) error {
	var errs []string

	m := quizBlockRe.FindStringSubmatch(raw)
	if m == nil {
		return &ValidationError{Errors: []string{"missing [QUIZ START]/[QUIZ END] delimiters"}}
	}

	blocks := questionRe.FindAllStringSubmatch(m[1], -1)
	if len(blocks) != ExpectedQuestions {
		errs = append(errs, fmt.Sprintf("expected %d question blocks, got %d", ExpectedQuestions, len(blocks)))
	}

	for i, qm := range blocks {
		block := qm[1]
		qNum := i + 1

		if promptRe.FindStringSubmatch(block) == nil {
			errs = append(errs, fmt.Sprintf("question %d: missing 'Question:' line", qNum))
		}
		for j, re := range optionRes {
			if re.FindStringSubmatch(block) == nil {
				errs = append(errs, fmt.Sprintf("question %d: missing option [%c]", qNum, 'A'+j))
			}
		}
		if correctRe.FindStringSubmatch(block) == nil {
			errs = append(errs, fmt.Sprintf("question %d: missing [CORRECT: X] marker", qNum))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// GenerateValidQuiz runs the generate -> validate -> regenerate loop, bounded
// by maxRetries extra attempts. The last output is accepted even when still
// invalid — the lenient parser degrades it to fewer playable questions.
func (g *Generator) GenerateValidQuiz(ctx context.Context, classLevel, subject, chapter string, part int, language string, maxRetries int) (string, error) {
	raw, err := g.GenerateQuiz(ctx, classLevel, subject, chapter, part, language)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		verr := ValidateQuizBlock(raw)
		if verr == nil {
			return raw, nil
		}
		log.Printf("[generator] quiz attempt %d invalid, regenerating: %v", attempt+1, verr)

		retried, err := g.GenerateQuiz(ctx, classLevel, subject, chapter, part, language)
		if err != nil {
			return raw, nil // keep the last successful output
		}
		raw = retried
	}
	return raw, nil
}
