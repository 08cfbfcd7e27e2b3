// Package validation checks that generated CV text is relevant to its query
// and grounded in the retrieved context.
package validation

import (
	"context"
	"strings"
	"unicode"

	"github.com/jonathan/cv-composer/internal/embedding"
	"github.com/jonathan/cv-composer/internal/types"
)

const (
	minGeneratedChars  = 50
	minGeneratedWords  = 30
	relevanceThreshold = 0.3
	groundingThreshold = 0.2

	noDigitsPenalty     = 0.10
	noStrongVerbPenalty = 0.15
)

// strongActionVerbs is the fixed vocabulary the quality heuristic looks for.
var strongActionVerbs = []string{
	"implemented", "developed", "designed", "managed", "led", "created",
}

// Validator scores generated text against its query and context entries.
type Validator struct {
	embedder embedding.Embedder
}

// New creates a Validator using the given embedder.
func New(embedder embedding.Embedder) *Validator {
	return &Validator{embedder: embedder}
}

// Validate runs all checks and aggregates them into a verdict.
//
// Length, relevance, and grounding failures populate reason codes and gate
// validity; only the quality heuristics (digits, strong verbs) reduce
// confidence. If embedding infrastructure fails mid-validation the verdict
// degrades to a neutral pass rather than blocking the generation pipeline.
func (v *Validator) Validate(ctx context.Context, queryText, generatedText string, contextEntries []types.CorpusEntry) types.ValidationVerdict {
	var reasons []types.ReasonCode

	// Check 1: minimum length.
	if len(strings.TrimSpace(generatedText)) < minGeneratedChars {
		reasons = append(reasons, types.ReasonTooShort)
	}

	// Checks 2 and 3 need embeddings; any failure degrades the whole
	// validation to a neutral pass.
	genVector, err := v.embedder.Embed(ctx, generatedText)
	if err != nil {
		return skippedVerdict()
	}
	queryVector, err := v.embedder.Embed(ctx, queryText)
	if err != nil {
		return skippedVerdict()
	}

	// Check 2: relevance to the query.
	relevance, err := embedding.Cosine(genVector, queryVector)
	if err != nil {
		return skippedVerdict()
	}
	if relevance < relevanceThreshold {
		reasons = append(reasons, types.ReasonLowRelevance)
	}

	// Check 3: grounding in the retrieved context. Skipped when there is
	// no context to ground against.
	if len(contextEntries) > 0 {
		grounding, err := v.maxGrounding(ctx, genVector, contextEntries)
		if err != nil {
			return skippedVerdict()
		}
		if grounding < groundingThreshold {
			reasons = append(reasons, types.ReasonPoorGrounding)
		}
	}

	// Check 4: quality heuristics.
	if len(strings.Fields(generatedText)) < minGeneratedWords {
		reasons = append(reasons, types.ReasonTooFewWords)
	}

	confidence := 1.0
	if !containsDigit(generatedText) {
		confidence -= noDigitsPenalty
	}
	if !containsStrongVerb(generatedText) {
		confidence -= noStrongVerbPenalty
	}
	if confidence < 0 {
		confidence = 0
	}

	return types.ValidationVerdict{
		IsValid:    len(reasons) == 0 && confidence > 0.5,
		Reasons:    reasons,
		Confidence: confidence,
	}
}

// maxGrounding returns the highest similarity between the generated text
// and any context entry. Context contents are embedded in one batch call.
func (v *Validator) maxGrounding(ctx context.Context, genVector []float32, contextEntries []types.CorpusEntry) (float64, error) {
	texts := make([]string, len(contextEntries))
	for i, entry := range contextEntries {
		texts[i] = entry.Content
	}

	vectors, err := v.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, err
	}

	maxSim := -1.0
	for _, vec := range vectors {
		sim, err := embedding.Cosine(genVector, vec)
		if err != nil {
			return 0, err
		}
		if sim > maxSim {
			maxSim = sim
		}
	}
	return maxSim, nil
}

// skippedVerdict is the degraded outcome when embedding infrastructure is
// unavailable: a neutral pass that never blocks the caller.
func skippedVerdict() types.ValidationVerdict {
	return types.ValidationVerdict{
		IsValid:    true,
		Reasons:    []types.ReasonCode{types.ReasonValidationSkipped},
		Confidence: 0.5,
	}
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsStrongVerb(s string) bool {
	lower := strings.ToLower(s)
	for _, verb := range strongActionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}
