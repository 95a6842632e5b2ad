package generator

import (
	"context"
	"strings"
	"testing"
)

func TestValidateQuizBlock_Valid(t *testing.T) {
	if err := ValidateQuizBlock(validQuizBlock(5)); err != nil {
		t.Fatalf("expected valid block, got: %v", err)
	}
}

func TestValidateQuizBlock_MissingDelimiters(t *testing.T) {
	err := ValidateQuizBlock(questionBlock(1, "A"))
	if err == nil {
		t.Fatal("expected error for missing delimiters")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Errors) != 1 || !strings.Contains(ve.Errors[0], "delimiters") {
		t.Errorf("expected delimiter error, got: %v", ve.Errors)
	}
}

func TestValidateQuizBlock_WrongCount(t *testing.T) {
	err := ValidateQuizBlock(validQuizBlock(3))
	if err == nil {
		t.Fatal("expected error for 3 questions")
	}
	ve := err.(*ValidationError)
	found := false
	for _, e := range ve.Errors {
		if strings.Contains(e, "expected 5 question blocks, got 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected count error, got: %v", ve.Errors)
	}
}

func TestValidateQuizBlock_MissingPieces(t *testing.T) {
	broken := `[QUESTION]
Question: No options below?
[CORRECT: A]
[/QUESTION]
`
	raw := "[QUIZ START]\n" +
		questionBlock(1, "A") + questionBlock(2, "B") + questionBlock(3, "C") + questionBlock(4, "A") +
		broken +
		"[QUIZ END]"

	err := ValidateQuizBlock(raw)
	if err == nil {
		t.Fatal("expected error for missing options")
	}
	ve := err.(*ValidationError)
	for _, opt := range []string{"[A]", "[B]", "[C]"} {
		found := false
		for _, e := range ve.Errors {
			if strings.Contains(e, "question 5") && strings.Contains(e, opt) {
				found = true
			}
		}
		if !found {
			t.Errorf("expected missing option %s error, got: %v", opt, ve.Errors)
		}
	}
}

func TestValidateQuizBlock_MissingCorrectMarker(t *testing.T) {
	noMarker := `[QUESTION]
Question: Where is the answer key?
[A] one
[B] two
[C] three
[/QUESTION]
`
	raw := "[QUIZ START]\n" +
		questionBlock(1, "A") + questionBlock(2, "B") + questionBlock(3, "C") + questionBlock(4, "A") +
		noMarker +
		"[QUIZ END]"

	err := ValidateQuizBlock(raw)
	if err == nil {
		t.Fatal("expected error for missing [CORRECT: X]")
	}
	if !strings.Contains(err.Error(), "missing [CORRECT: X] marker") {
		t.Errorf("expected marker error, got: %v", err)
	}
}

// scriptedClient returns canned outputs in order, then repeats the last one.
type scriptedClient struct {
	outputs []string
	calls   int
}

func (s *scriptedClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	i := s.calls
	if i >= len(s.outputs) {
		i = len(s.outputs) - 1
	}
	s.calls++
	return s.outputs[i], nil
}

func TestGenerateValidQuiz_FirstTryValid(t *testing.T) {
	client := &scriptedClient{outputs: []string{validQuizBlock(5)}}
	g := &Generator{llm: client, model: "test"}

	raw, err := g.GenerateValidQuiz(context.Background(), "10", "Physics", "Electricity", 1, "English", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected 1 generation call, got %d", client.calls)
	}
	if err := ValidateQuizBlock(raw); err != nil {
		t.Errorf("expected valid output, got: %v", err)
	}
}

func TestGenerateValidQuiz_RetriesThenSucceeds(t *testing.T) {
	client := &scriptedClient{outputs: []string{validQuizBlock(3), validQuizBlock(5)}}
	g := &Generator{llm: client, model: "test"}

	raw, err := g.GenerateValidQuiz(context.Background(), "10", "Physics", "Electricity", 1, "English", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("expected 2 generation calls, got %d", client.calls)
	}
	if err := ValidateQuizBlock(raw); err != nil {
		t.Errorf("expected retried output to be valid, got: %v", err)
	}
}

func TestGenerateValidQuiz_AcceptsLastInvalid(t *testing.T) {
	// Every attempt comes back short; the combinator must still hand the last
	// output to the lenient parser rather than fail the request.
	client := &scriptedClient{outputs: []string{validQuizBlock(3)}}
	g := &Generator{llm: client, model: "test"}

	raw, err := g.GenerateValidQuiz(context.Background(), "10", "Physics", "Electricity", 1, "English", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 3 {
		t.Errorf("expected 3 generation calls (1 + 2 retries), got %d", client.calls)
	}
	if items := ParseQuizBlock(raw); len(items) != 3 {
		t.Errorf("expected 3 playable questions from degraded output, got %d", len(items))
	}
}

func TestMockClient_QuizIsValid(t *testing.T) {
	mock := NewMockClient()
	out, err := mock.Generate(context.Background(), SystemPrompt("English"), BuildQuizPrompt("10", "Physics", "Electricity", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateQuizBlock(out); err != nil {
		t.Errorf("mock quiz should pass strict validation, got: %v", err)
	}
}
