package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// LLMClient is the interface both generator implementations satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// Generator wraps an LLMClient with lesson, quiz and Q&A methods.
type Generator struct {
	llm   LLMClient
	model string
}

func NewGenerator() *Generator {
	var llm LLMClient
	model := "mock"

	if os.Getenv("MOCK_GENERATOR") == "true" {
		llm = NewMockClient()
		log.Println("[generator] using mock data")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-sonnet-4-5"
		}
		llm = NewAPIClient(model)
		log.Println("[generator] using Anthropic API:", model)
	}

	return &Generator{llm: llm, model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateLesson produces the teaching text for one chapter part.
func (g *Generator) GenerateLesson(ctx context.Context, classLevel, subject, chapter string, part int, language string) (string, error) {
	out, err := g.llm.Generate(ctx, SystemPrompt(language), BuildLessonPrompt(classLevel, subject, chapter, part))
	if err != nil {
		return "", fmt.Errorf("generate lesson: %w", err)
	}
	return out, nil
}

// GenerateQuiz produces the raw quiz block text for one chapter part.
// Callers parse it leniently; it may not conform to the template.
func (g *Generator) GenerateQuiz(ctx context.Context, classLevel, subject, chapter string, part int, language string) (string, error) {
	out, err := g.llm.Generate(ctx, SystemPrompt(language), BuildQuizPrompt(classLevel, subject, chapter, part))
	if err != nil {
		return "", fmt.Errorf("generate quiz: %w", err)
	}
	return out, nil
}

// AnswerQuestion produces a contextual answer to a learner's question.
func (g *Generator) AnswerQuestion(ctx context.Context, question, chapter, subject, classLevel, language string) (string, error) {
	out, err := g.llm.Generate(ctx, SystemPrompt(language), BuildAnswerPrompt(question, chapter, subject, classLevel))
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}
	return out, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return "", err
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in API response")
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("[generator] retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("[generator] Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	if len(userPrompt) >= 9 && userPrompt[:9] == "QUIZ TASK" {
		return buildMockQuiz(), nil
	}
	return "This is a mock lesson. Key idea one, key idea two, key idea three. Does this make sense?", nil
}

func buildMockQuiz() string {
	quiz := "[QUIZ START]\n"
	for i := 0; i < ExpectedQuestions; i++ {
		correct := byte('A' + i%3)
		quiz += fmt.Sprintf(`[QUESTION]
Question: Mock question %d about the current chapter part?
[A] First plausible option for question %d
[B] Second plausible option for question %d
[C] Third plausible option for question %d
[CORRECT: %c]
[/QUESTION]
`, i+1, i+1, i+1, i+1, correct)
	}
	quiz += "[QUIZ END]"
	return quiz
}
