package ingestion

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/cv-composer/internal/types"
)

// ExtractPDFText pulls plain text from every page of a PDF resume.
// Pages that fail to decode are skipped; only a fully unreadable file errors.
func ExtractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("no extractable text in PDF %s", path)
	}
	return sb.String(), nil
}

// EntriesFromResumeText parses resume text into corpus entries: one summary,
// up to five achievements, one skills entry, and up to three responsibilities.
// Embeddings are left unset; the importer computes them in batch.
func EntriesFromResumeText(text, category, sourceDocument string) []types.CorpusEntry {
	sections := parseResumeSections(text)
	profession := types.ParseProfession(category)
	if profession == "" || profession == types.ProfessionUnrecognized {
		profession = ClassifyProfession(category, text)
	}

	var entries []types.CorpusEntry

	if summary := sections.extractSummary(); len(summary) > 10 {
		entries = append(entries, newResumeEntry(
			category+" Summary", summary, profession, types.SectionSummary, category, sourceDocument, 0.9))
	}

	for _, achievement := range sections.extractAchievements() {
		entries = append(entries, newResumeEntry(
			category+" Achievement", achievement, profession, types.SectionAchievement, category, sourceDocument, 0.8))
	}

	if skills := sections.extractSkills(); len(skills) > 0 {
		entries = append(entries, newResumeEntry(
			category+" Skills", strings.Join(skills, ", "), profession, types.SectionSkill, category, sourceDocument, 0.85))
	}

	for _, responsibility := range sections.extractResponsibilities() {
		entries = append(entries, newResumeEntry(
			category+" Responsibility", responsibility, profession, types.SectionResponsibility, category, sourceDocument, 0.75))
	}

	return entries
}

func newResumeEntry(title, content string, profession types.Profession, section types.Section, category, source string, confidence float64) types.CorpusEntry {
	wordCount := CountWords(content)
	return types.CorpusEntry{
		Title:          title,
		Content:        content,
		Profession:     profession,
		Section:        section,
		Category:       category,
		ContentKind:    ClassifyContentKind(wordCount),
		Confidence:     confidence,
		WordCount:      wordCount,
		SourceDocument: source,
	}
}
