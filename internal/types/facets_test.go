package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProfession_Known(t *testing.T) {
	assert.Equal(t, ProfessionBackendDev, ParseProfession("Backend Developer"))
	assert.Equal(t, ProfessionGeneral, ParseProfession("General"))
}

func TestParseProfession_Unknown(t *testing.T) {
	assert.Equal(t, ProfessionUnrecognized, ParseProfession("Underwater Basket Weaver"))
}

func TestParseProfession_EmptyMeansUnfiltered(t *testing.T) {
	assert.Equal(t, Profession(""), ParseProfession(""))
}

func TestParseSection_Known(t *testing.T) {
	assert.Equal(t, SectionSummary, ParseSection("summary"))
	assert.Equal(t, SectionAchievement, ParseSection("achievement"))
}

func TestParseSection_Unknown(t *testing.T) {
	assert.Equal(t, SectionUnrecognized, ParseSection("hobbies"))
}

func TestParseSection_EmptyMeansUnfiltered(t *testing.T) {
	assert.Equal(t, Section(""), ParseSection(""))
}

func TestSectionDisplay(t *testing.T) {
	assert.Equal(t, "Professional Summary", SectionSummary.Display())
	assert.Equal(t, "Achievement Bullet", SectionAchievement.Display())
	// Unknown sections fall back to their raw value
	assert.Equal(t, "unrecognized", SectionUnrecognized.Display())
}

func TestVerdictHasReason(t *testing.T) {
	v := ValidationVerdict{Reasons: []ReasonCode{ReasonTooShort, ReasonLowRelevance}}
	assert.True(t, v.HasReason(ReasonTooShort))
	assert.False(t, v.HasReason(ReasonPoorGrounding))
}
