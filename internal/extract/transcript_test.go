package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-assistant/internal/types"
)

func TestParseTranscript(t *testing.T) {
	transcript := "My name is Asha Verma. I have 5 years of experience. " +
		"I worked at Infosys as Software Engineer from 2019 to 2023. " +
		"My skills include Java, Python, and Leadership."

	patch := ParseTranscript(transcript)

	assert.Equal(t, "Asha Verma", patch.Profile.Name)
	assert.Equal(t, "5", patch.Profile.ExperienceYears)

	assert.Len(t, patch.WorkExperiences, 1)
	assert.Equal(t, "Infosys", patch.WorkExperiences[0].Company)
	assert.Equal(t, "Software Engineer", patch.WorkExperiences[0].JobTitle)
	assert.Equal(t, "2019 to 2023", patch.WorkExperiences[0].Date)

	assert.Equal(t, []string{"Java", "Python", "Leadership"}, patch.SkillDescriptions)

	assert.Empty(t, patch.Educations)
	assert.Empty(t, patch.Projects)
}

func TestParseTranscript_NoMatchesIsEmptyPatch(t *testing.T) {
	patch := ParseTranscript("")
	assert.True(t, patch.IsEmpty())
}

func TestParseTranscript_IndependentExtractors(t *testing.T) {
	patch := ParseTranscript("I graduated from pune university.")

	assert.Equal(t, types.ResumeProfile{Summary: "I graduated from pune university"}, patch.Profile)
	assert.Equal(t, []types.ResumeEducation{{School: "Pune University"}}, patch.Educations)
	assert.Empty(t, patch.WorkExperiences)
	assert.Empty(t, patch.SkillDescriptions)
}
