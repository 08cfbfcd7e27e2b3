package ranking

import (
	"sort"

	"github.com/jonathan/cv-composer/internal/types"
)

// Weights for the composite re-ranking score.
const (
	lengthWeight     = 0.3
	confidenceWeight = 0.4
	kindWeight       = 0.3

	// normalizedLength saturates at this word count
	lengthNormWords = 500.0
)

// contentKindWeights orders content shapes by how useful they are as
// generation context. Unknown kinds score 0.5.
var contentKindWeights = map[types.ContentKind]float64{
	types.KindJobDescription: 1.0,
	types.KindParagraph:      0.8,
	types.KindAchievement:    0.7,
	types.KindBullet:         0.6,
}

const defaultKindWeight = 0.5

// Rerank re-orders already similarity-ranked entries by secondary quality
// signals: length, confidence, and content kind. It only re-orders; it
// never introduces or duplicates entries, so similarity ranking alone
// determines eligibility. topK <= 0 keeps all entries.
func Rerank(ranked []types.CorpusEntry, topK int) []types.CorpusEntry {
	if len(ranked) == 0 {
		return ranked
	}

	type rescored struct {
		entry types.CorpusEntry
		score float64
	}

	scores := make([]rescored, len(ranked))
	for i, entry := range ranked {
		scores[i] = rescored{entry: entry, score: compositeScore(entry)}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	result := make([]types.CorpusEntry, len(scores))
	for i, s := range scores {
		result[i] = s.entry
	}

	if topK > 0 && topK < len(result) {
		result = result[:topK]
	}
	return result
}

// compositeScore combines the secondary quality signals for one entry.
func compositeScore(entry types.CorpusEntry) float64 {
	normalizedLength := float64(entry.WordCount) / lengthNormWords
	if normalizedLength > 1.0 {
		normalizedLength = 1.0
	}
	if normalizedLength < 0 {
		normalizedLength = 0
	}

	// Unset confidence counts as full confidence, matching ingestion's default.
	confidence := entry.Confidence
	if confidence == 0 {
		confidence = 1.0
	}

	kind, ok := contentKindWeights[entry.ContentKind]
	if !ok {
		kind = defaultKindWeight
	}

	return normalizedLength*lengthWeight + confidence*confidenceWeight + kind*kindWeight
}
