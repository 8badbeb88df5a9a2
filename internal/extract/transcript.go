package extract

import (
	"github.com/jonathan/resume-assistant/internal/types"
)

// ParseTranscript runs every field extractor independently over one finalized
// transcript and assembles the results into a partial-resume patch. It never
// fails; a category absent from the patch simply means no extractor matched.
func ParseTranscript(transcript string) types.ResumePatch {
	return types.ResumePatch{
		Profile:           ExtractProfile(transcript),
		WorkExperiences:   ExtractWorkExperiences(transcript),
		Educations:        ExtractEducations(transcript),
		Projects:          ExtractProjects(transcript),
		SkillDescriptions: ExtractSkillDescriptions(transcript),
	}
}
