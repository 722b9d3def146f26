package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int

	gotModel    string
	gotContents []*genai.Content
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.gotModel = model
	f.gotContents = contents
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.text, genai.RoleModel)},
		},
	}, nil
}

func TestAssessSendsSingleUserTurn(t *testing.T) {
	gen := &fakeGenerator{text: "\n  Key Points:\n- one\n\n"}
	analyzer := NewAnalyzerWithGenerator(gen, "gemini-test")

	text, err := analyzer.Assess(context.Background(), "analyze this")
	require.NoError(t, err)

	assert.Equal(t, "Key Points:\n- one", text)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "gemini-test", gen.gotModel)
	require.Len(t, gen.gotContents, 1)
	assert.Equal(t, "user", string(gen.gotContents[0].Role))
	require.Len(t, gen.gotContents[0].Parts, 1)
	assert.Equal(t, "analyze this", gen.gotContents[0].Parts[0].Text)
}

func TestAssessDefaultsModel(t *testing.T) {
	analyzer := NewAnalyzerWithGenerator(&fakeGenerator{}, "")
	assert.Equal(t, "gemini-2.5-flash", analyzer.Model())
}

func TestAssessSurfacesServiceError(t *testing.T) {
	quota := errors.New("RESOURCE_EXHAUSTED: quota exceeded")
	gen := &fakeGenerator{err: quota}
	analyzer := NewAnalyzerWithGenerator(gen, "gemini-test")

	_, err := analyzer.Assess(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, quota)
	assert.Equal(t, 1, gen.calls, "no retry expected")
}

func TestAssessRejectsEmptyAnswer(t *testing.T) {
	analyzer := NewAnalyzerWithGenerator(&fakeGenerator{text: "   "}, "gemini-test")

	_, err := analyzer.Assess(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyAssessment)
}

func TestAssessRejectsEmptyPrompt(t *testing.T) {
	gen := &fakeGenerator{text: "ignored"}
	analyzer := NewAnalyzerWithGenerator(gen, "gemini-test")

	_, err := analyzer.Assess(context.Background(), " ")
	require.Error(t, err)
	assert.Zero(t, gen.calls)
}
