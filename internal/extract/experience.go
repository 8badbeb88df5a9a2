package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-assistant/internal/types"
)

var (
	experiencePattern = regexp.MustCompile(`(?i)(worked|experience)\s*(?:at|with|for)?\s*([a-z\s]+?)(?: as ([a-z\s]+?))?(?: from ([^,.]+))?(?:,|\.|$)`)
	triggerWords      = regexp.MustCompile(`(?i)worked|experience`)
	prepositionWords  = regexp.MustCompile(`(?i)\bat\b|\bwith\b|\bfor\b`)
)

// ExtractWorkExperiences extracts every work-experience clause from a
// transcript, in order of appearance. One transcript may yield several
// entries; none is a valid result.
func ExtractWorkExperiences(transcript string) []types.ResumeWorkExperience {
	matches := experiencePattern.FindAllStringSubmatch(transcript, -1)
	if len(matches) == 0 {
		return nil
	}

	experiences := make([]types.ResumeWorkExperience, 0, len(matches))
	for _, m := range matches {
		description := triggerWords.ReplaceAllString(m[0], "")
		description = prepositionWords.ReplaceAllString(description, "")
		description = strings.TrimSpace(strings.Trim(strings.TrimSpace(description), ",."))

		experiences = append(experiences, types.ResumeWorkExperience{
			Company:      CapitalizeWords(strings.TrimSpace(m[2])),
			JobTitle:     CapitalizeWords(strings.TrimSpace(m[3])),
			Date:         strings.TrimSpace(m[4]),
			Descriptions: []string{description},
		})
	}
	return experiences
}
