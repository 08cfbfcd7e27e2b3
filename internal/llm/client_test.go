package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "gemini-2.5-flash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewGeminiClient_DefaultsModel(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "test-key", "")
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, DefaultGenerationModel, client.Model())
}

func TestExtractTextFromResponse_JoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("Led the "), genai.Text("platform rebuild.")},
			},
		}},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Led the platform rebuild.", text)
}

func TestExtractTextFromResponse_NoCandidates(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}

func TestExtractTextFromResponse_EmptyContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}
	_, err := extractTextFromResponse(resp)
	assert.Error(t, err)
}
