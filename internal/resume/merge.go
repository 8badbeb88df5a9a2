// Package resume owns the mutable resume aggregate and the single merge
// policy shared by every intake entry point.
package resume

import (
	"github.com/jonathan/resume-assistant/internal/types"
)

// New returns an empty resume aggregate. No field is required to be
// non-empty; lists start empty and grow as patches arrive.
func New() *types.Resume {
	return &types.Resume{}
}

// ApplyPatch merges a partial-resume patch into the aggregate in place.
//
// Scalar profile fields overwrite only when the patch value is non-empty.
// List categories are length-reconciled first: the aggregate list is extended
// with empty placeholder entries until it can hold the patch, then each patch
// element overwrites the aggregate element at the same index. The merge never
// appends beyond what length reconciliation requires, so a one-entry patch
// only ever touches index 0.
func ApplyPatch(r *types.Resume, p types.ResumePatch) {
	applyProfile(&r.Profile, p.Profile)

	if n := len(p.WorkExperiences); n > 0 {
		for len(r.WorkExperiences) < n {
			r.WorkExperiences = append(r.WorkExperiences, types.ResumeWorkExperience{})
		}
		for i, exp := range p.WorkExperiences {
			r.WorkExperiences[i] = exp
		}
	}

	if n := len(p.Educations); n > 0 {
		for len(r.Educations) < n {
			r.Educations = append(r.Educations, types.ResumeEducation{})
		}
		for i, edu := range p.Educations {
			r.Educations[i] = edu
		}
	}

	if n := len(p.Projects); n > 0 {
		for len(r.Projects) < n {
			r.Projects = append(r.Projects, types.ResumeProject{})
		}
		for i, proj := range p.Projects {
			r.Projects[i] = proj
		}
	}

	if len(p.SkillDescriptions) > 0 {
		r.Skills.Descriptions = p.SkillDescriptions
	}
}

// applyProfile copies non-empty profile fields onto the target. Each field has
// its own typed assignment; there is no name-based dispatch.
func applyProfile(dst *types.ResumeProfile, src types.ResumeProfile) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.URL != "" {
		dst.URL = src.URL
	}
	if src.Summary != "" {
		dst.Summary = src.Summary
	}
	if src.Location != "" {
		dst.Location = src.Location
	}
	if src.ExperienceYears != "" {
		dst.ExperienceYears = src.ExperienceYears
	}
	if src.PhotoDataURL != "" {
		dst.PhotoDataURL = src.PhotoDataURL
	}
	if src.PublicSlug != "" {
		dst.PublicSlug = src.PublicSlug
	}
}
