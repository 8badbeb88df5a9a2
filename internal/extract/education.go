package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-assistant/internal/types"
)

var educationPattern = regexp.MustCompile(`(?i)(studied at|graduated from)\s+([a-z\s]+?)(?:\s+with\s+a\s+([a-z\s]+?))?(?:,|\.|$)`)

// ExtractEducations extracts every education clause from a transcript, in
// order of appearance.
func ExtractEducations(transcript string) []types.ResumeEducation {
	matches := educationPattern.FindAllStringSubmatch(transcript, -1)
	if len(matches) == 0 {
		return nil
	}

	educations := make([]types.ResumeEducation, 0, len(matches))
	for _, m := range matches {
		educations = append(educations, types.ResumeEducation{
			School: CapitalizeWords(strings.TrimSpace(m[2])),
			Degree: CapitalizeWords(strings.TrimSpace(m[3])),
		})
	}
	return educations
}
