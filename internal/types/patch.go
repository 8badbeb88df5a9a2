package types

// ResumePatch is a partial update produced by the intake pipeline. Absent
// categories are nil/empty; scalar profile fields apply only when non-empty.
type ResumePatch struct {
	Profile           ResumeProfile          `json:"profile"`
	WorkExperiences   []ResumeWorkExperience `json:"workExperiences,omitempty"`
	Educations        []ResumeEducation      `json:"educations,omitempty"`
	Projects          []ResumeProject        `json:"projects,omitempty"`
	SkillDescriptions []string               `json:"skillDescriptions,omitempty"`
}

// IsEmpty reports whether the patch carries no field updates at all.
func (p ResumePatch) IsEmpty() bool {
	return p.Profile == (ResumeProfile{}) &&
		len(p.WorkExperiences) == 0 &&
		len(p.Educations) == 0 &&
		len(p.Projects) == 0 &&
		len(p.SkillDescriptions) == 0
}
