// Package ingestion imports corpus entries from JSON dumps and PDF resumes.
package ingestion

import (
	"strings"

	"github.com/jonathan/cv-composer/internal/types"
)

// classifyScanLimit caps how much text the keyword classifiers inspect.
const classifyScanLimit = 1000

// professionKeywords drives keyword-based profession detection for entries
// imported without an explicit profession. First match wins, in this order.
var professionKeywords = []struct {
	profession types.Profession
	keywords   []string
}{
	{types.ProfessionAccountant, []string{"account", "accounting", "ledger", "reconcil", "payable", "receivable", "financial"}},
	{types.ProfessionBackendDev, []string{"backend", "api", "server", "database", "python", "java", "nodejs", "microservice"}},
	{types.ProfessionFrontendDev, []string{"frontend", "ui", "ux", "react", "angular", "vue", "html", "css", "javascript"}},
	{types.ProfessionManager, []string{"manager", "lead", "supervise", "team", "direct", "manage", "leadership", "supervisor"}},
	{types.ProfessionDevOpsEngineer, []string{"devops", "docker", "kubernetes", "deployment", "ci/cd", "infrastructure", "aws", "cloud"}},
	{types.ProfessionDataScientist, []string{"data", "machine learning", "analytics", "sql", "analysis"}},
	{types.ProfessionQAEngineer, []string{"testing", "test", "qa", "quality", "automation"}},
}

// sectionKeywords drives keyword-based section detection. First match wins.
var sectionKeywords = []struct {
	section  types.Section
	keywords []string
}{
	{types.SectionSummary, []string{"specialized", "expertise", "background", "professional", "summary", "experience in"}},
	{types.SectionAchievement, []string{"managed", "led", "implemented", "developed", "improved", "achieved", "increased", "reduced", "optimized"}},
	{types.SectionExperience, []string{"responsible", "duties", "role", "position", "worked", "assigned"}},
	{types.SectionSkill, []string{"proficient", "knowledge", "expertise", "experience with", "skilled"}},
}

// ClassifyProfession guesses a profession from entry text.
// Defaults to General when nothing matches.
func ClassifyProfession(title, content string) types.Profession {
	haystack := scanText(title, content)
	for _, group := range professionKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(haystack, kw) {
				return group.profession
			}
		}
	}
	return types.ProfessionGeneral
}

// ClassifySection guesses a CV section from entry text.
// Defaults to achievement, the most common shape in the corpus.
func ClassifySection(title, content string) types.Section {
	haystack := scanText(title, content)
	for _, group := range sectionKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(haystack, kw) {
				return group.section
			}
		}
	}
	return types.SectionAchievement
}

// ClassifyContentKind buckets an entry by word count.
func ClassifyContentKind(wordCount int) types.ContentKind {
	switch {
	case wordCount > 300:
		return types.KindJobDescription
	case wordCount > 100:
		return types.KindParagraph
	default:
		return types.KindBullet
	}
}

// CountWords returns the whitespace-separated word count of text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

func scanText(title, content string) string {
	haystack := strings.ToLower(content) + " " + strings.ToLower(title)
	if len(haystack) > classifyScanLimit {
		haystack = haystack[:classifyScanLimit]
	}
	return haystack
}
