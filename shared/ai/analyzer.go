package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"video-detective/shared/config"

	"google.golang.org/genai"
)

// ContentGenerator is the slice of the Gemini API the analyzer needs.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ErrEmptyAssessment is returned when the model answers with no text at all,
// which is what a safety block looks like from the outside.
var ErrEmptyAssessment = errors.New("empty response from model")

type Analyzer struct {
	generator ContentGenerator
	model     string
}

func NewAnalyzer(ctx context.Context, cfg *config.AIConfig) (*Analyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return NewAnalyzerWithGenerator(client.Models, cfg.Model), nil
}

func NewAnalyzerWithGenerator(generator ContentGenerator, model string) *Analyzer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Analyzer{
		generator: generator,
		model:     model,
	}
}

func (a *Analyzer) Model() string {
	return a.model
}

// Assess sends prompt as a single user turn and returns the trimmed text of
// the answer. There is no retry and no fallback model.
func (a *Analyzer) Assess(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := a.generator.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", a.model, err)
	}
	if result == nil {
		return "", ErrEmptyAssessment
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyAssessment
	}

	return text, nil
}
