package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-composer/internal/types"
)

const sampleResume = `Jane Doe
Summary
Senior backend developer with eight years building payment platforms.
Highlights
Cut API latency by 60% through connection pooling and caching layers.
Mentored four junior engineers into mid-level roles within a year.
Experience
Acme Corp, Senior Backend Developer
Designed and operated the billing service handling two million daily requests.
Owned the on-call rotation and reduced pager volume by half over two quarters.

Beta LLC, Backend Developer
Maintained legacy settlement jobs.
Education
BSc Computer Science
Skills
Go, PostgreSQL, Kubernetes, gRPC
`

func TestParseResumeSections_SplitsOnHeadings(t *testing.T) {
	sections := parseResumeSections(sampleResume)

	assert.Contains(t, sections.Summary, "Senior backend developer")
	assert.Contains(t, sections.Experience, "Acme Corp")
	assert.Contains(t, sections.Education, "BSc Computer Science")
	assert.Contains(t, sections.Skills, "PostgreSQL")
	assert.Contains(t, sections.Accomplishments, "Cut API latency")
}

func TestParseResumeSections_MissingHeadings(t *testing.T) {
	sections := parseResumeSections("just some text without structure")
	assert.Empty(t, sections.Experience)
	assert.Empty(t, sections.Skills)
}

func TestExtractSummary_FirstLineTruncated(t *testing.T) {
	long := strings.Repeat("a", 400)
	sections := resumeSections{Summary: "\n" + long}
	assert.Len(t, sections.extractSummary(), maxSummaryChars)
}

func TestExtractAchievements_CappedAtFive(t *testing.T) {
	sections := parseResumeSections(sampleResume)
	achievements := sections.extractAchievements()

	require.NotEmpty(t, achievements)
	assert.LessOrEqual(t, len(achievements), 5)
	assert.Contains(t, achievements[0], "Cut API latency")
}

func TestExtractSkills_CommaSplit(t *testing.T) {
	sections := resumeSections{Skills: "Go, PostgreSQL, , Kubernetes"}
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, sections.extractSkills())
}

func TestExtractResponsibilities_FirstJobOnly(t *testing.T) {
	sections := parseResumeSections(sampleResume)
	responsibilities := sections.extractResponsibilities()

	require.NotEmpty(t, responsibilities)
	for _, line := range responsibilities {
		assert.NotContains(t, line, "Beta LLC")
		assert.NotContains(t, line, "settlement")
	}
}

func TestEntriesFromResumeText_BuildsFacetedEntries(t *testing.T) {
	entries := EntriesFromResumeText(sampleResume, "Backend Developer", "jane_doe.pdf")
	require.NotEmpty(t, entries)

	bySection := map[types.Section]int{}
	for _, entry := range entries {
		bySection[entry.Section]++
		assert.Equal(t, types.ProfessionBackendDev, entry.Profession)
		assert.Equal(t, "jane_doe.pdf", entry.SourceDocument)
		assert.Equal(t, "Backend Developer", entry.Category)
		assert.Positive(t, entry.WordCount)
		assert.Positive(t, entry.Confidence)
	}

	assert.Equal(t, 1, bySection[types.SectionSummary])
	assert.GreaterOrEqual(t, bySection[types.SectionAchievement], 1)
	assert.Equal(t, 1, bySection[types.SectionSkill])
}

func TestEntriesFromResumeText_EmptyText(t *testing.T) {
	assert.Empty(t, EntriesFromResumeText("", "General", "blank.pdf"))
}
