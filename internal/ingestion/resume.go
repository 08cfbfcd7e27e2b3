package ingestion

import (
	"regexp"
	"strings"
)

// resumeSections holds the text of the recognizable resume headings.
type resumeSections struct {
	Summary         string
	Experience      string
	Education       string
	Skills          string
	Accomplishments string
}

var (
	summaryRe         = regexp.MustCompile(`(?is)Summary\s*(.*?)(?:Experience|Education|Skills|Highlights|$)`)
	experienceRe      = regexp.MustCompile(`(?is)Experience\s*(.*?)(?:Education|Skills|$)`)
	educationRe       = regexp.MustCompile(`(?is)Education\s*(.*?)(?:Skills|$)`)
	skillsRe          = regexp.MustCompile(`(?is)Skills\s*(.*)`)
	accomplishmentsRe = regexp.MustCompile(`(?is)(?:Accomplishments|Highlights)\s*(.*?)(?:Experience|$)`)
)

// parseResumeSections splits raw resume text by its conventional headings.
// Missing headings leave their section empty; partial resumes are fine.
func parseResumeSections(text string) resumeSections {
	return resumeSections{
		Summary:         firstGroup(summaryRe, text),
		Experience:      firstGroup(experienceRe, text),
		Education:       firstGroup(educationRe, text),
		Skills:          firstGroup(skillsRe, text),
		Accomplishments: firstGroup(accomplishmentsRe, text),
	}
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

const maxSummaryChars = 300

// extractSummary returns the first non-empty summary line, truncated.
func (s resumeSections) extractSummary() string {
	for _, line := range strings.Split(s.Summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > maxSummaryChars {
			return line[:maxSummaryChars]
		}
		return line
	}
	return ""
}

// extractAchievements collects bullet lines from the accomplishments and
// experience sections, capped at five.
func (s resumeSections) extractAchievements() []string {
	var achievements []string

	achievements = append(achievements, linesLongerThan(s.Accomplishments, 20, 3)...)
	achievements = append(achievements, linesLongerThan(s.Experience, 30, 2)...)

	if len(achievements) > 5 {
		achievements = achievements[:5]
	}
	return achievements
}

// extractSkills splits the skills section on commas.
func (s resumeSections) extractSkills() []string {
	if s.Skills == "" {
		return nil
	}
	var skills []string
	for _, skill := range strings.Split(s.Skills, ",") {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

// extractResponsibilities returns substantial lines from the first job
// block of the experience section.
func (s resumeSections) extractResponsibilities() []string {
	if s.Experience == "" {
		return nil
	}
	firstJob := strings.SplitN(s.Experience, "\n\n", 2)[0]
	return linesLongerThan(firstJob, 40, 3)
}

func linesLongerThan(text string, minLen, limit int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > minLen {
			out = append(out, line)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
