package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// GeminiEmbedder implements Embedder using the Gemini embedding API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates a Gemini-backed embedder.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Embed converts a single text into a vector.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	trimmed, err := validateInput(text)
	if err != nil {
		return nil, err
	}

	em := e.client.EmbeddingModel(e.model)
	resp, err := em.EmbedContent(ctx, genai.Text(trimmed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVectorization, err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("%w: empty embedding in response", ErrVectorization)
	}

	return resp.Embedding.Values, nil
}

// EmbedBatch converts multiple texts in a single API call.
// Results are returned in input order.
func (e *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrInvalidInput
	}

	trimmed := make([]string, len(texts))
	for i, t := range texts {
		cleaned, err := validateInput(t)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		trimmed[i] = cleaned
	}

	em := e.client.EmbeddingModel(e.model)
	batch := em.NewBatch()
	for _, t := range trimmed {
		batch.AddContent(genai.Text(t))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVectorization, err)
	}
	if len(resp.Embeddings) != len(trimmed) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", ErrVectorization, len(trimmed), len(resp.Embeddings))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("%w: empty embedding at index %d", ErrVectorization, i)
		}
		vectors[i] = emb.Values
	}

	return vectors, nil
}

// Model returns the configured embedding model name.
func (e *GeminiEmbedder) Model() string {
	return e.model
}

// Close releases resources held by the underlying client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
