package retrieval

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-composer/internal/types"
)

// FormatForPrompt renders retrieved entries into a prompt-ready block.
// Deterministic, no side effects: the same entries always produce the
// same text.
func FormatForPrompt(entries []types.CorpusEntry) string {
	if len(entries) == 0 {
		return "No examples available."
	}

	var sb strings.Builder
	sb.WriteString("PROFESSIONAL EXAMPLES:\n\n")

	for i, entry := range entries {
		confidence := entry.Confidence
		if confidence == 0 {
			confidence = 1.0
		}
		sb.WriteString(fmt.Sprintf("Example %d (%s - %s):\n", i+1, entry.Profession, entry.Section.Display()))
		sb.WriteString(entry.Content)
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("[Confidence: %.0f%%]\n\n", confidence*100))
	}

	return sb.String()
}
