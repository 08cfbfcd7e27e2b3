package types

// ReasonCode tags a specific issue found while validating generated text.
type ReasonCode string

const (
	ReasonTooShort          ReasonCode = "too_short"
	ReasonLowRelevance      ReasonCode = "low_relevance"
	ReasonPoorGrounding     ReasonCode = "poor_grounding"
	ReasonTooFewWords       ReasonCode = "too_few_words"
	ReasonValidationSkipped ReasonCode = "validation_skipped"
)

// ValidationVerdict is the outcome of validating one piece of generated text.
// It is produced per call and not persisted by the engine.
type ValidationVerdict struct {
	IsValid    bool         `json:"is_valid"`
	Reasons    []ReasonCode `json:"reasons,omitempty"`
	Confidence float64      `json:"confidence"`
}

// HasReason reports whether the verdict carries the given reason code.
func (v ValidationVerdict) HasReason(code ReasonCode) bool {
	for _, r := range v.Reasons {
		if r == code {
			return true
		}
	}
	return false
}
