// Package types provides type definitions for structured data used throughout the resume-assistant system.
package types

// ResumeProfile holds the contact and identity fields of a resume.
// PublicSlug, when set by the owner, pins the slug under which the
// record is published.
type ResumeProfile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	URL             string `json:"url"`
	Summary         string `json:"summary"`
	Location        string `json:"location"`
	ExperienceYears string `json:"experienceYears,omitempty"`
	PhotoDataURL    string `json:"photoDataUrl,omitempty"`
	PublicSlug      string `json:"publicSlug,omitempty"`
}

// ResumeWorkExperience is one entry of the work history list. Date is an
// unparsed free-text range.
type ResumeWorkExperience struct {
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// ResumeEducation is one entry of the education list.
type ResumeEducation struct {
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Date         string   `json:"date"`
	GPA          string   `json:"gpa"`
	Descriptions []string `json:"descriptions"`
}

// ResumeProject is one entry of the projects list.
type ResumeProject struct {
	Project      string   `json:"project"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// FeaturedSkill is a skill with a display rating. Featured skills are
// form-edited only; the intake pipeline never touches them.
type FeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
}

// ResumeSkills holds the free-text skill list plus featured skills.
type ResumeSkills struct {
	FeaturedSkills []FeaturedSkill `json:"featuredSkills"`
	Descriptions   []string        `json:"descriptions"`
}

// ResumeCustom holds the free-form custom section.
type ResumeCustom struct {
	Descriptions []string `json:"descriptions"`
}

// ResumePortfolioItem is one entry of the portfolio list.
type ResumePortfolioItem struct {
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Descriptions []string `json:"descriptions"`
	MediaType    string   `json:"mediaType"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
}

// Resume is the full aggregate persisted as one version snapshot.
type Resume struct {
	Profile         ResumeProfile          `json:"profile"`
	WorkExperiences []ResumeWorkExperience `json:"workExperiences"`
	Educations      []ResumeEducation      `json:"educations"`
	Projects        []ResumeProject        `json:"projects"`
	Skills          ResumeSkills           `json:"skills"`
	Custom          ResumeCustom           `json:"custom"`
	Portfolio       []ResumePortfolioItem  `json:"portfolio"`
}

// Clone returns a deep copy of the resume. Stored version snapshots are
// frozen copies; nothing may hold a mutable reference into history.
func (r Resume) Clone() Resume {
	out := r
	out.WorkExperiences = make([]ResumeWorkExperience, len(r.WorkExperiences))
	for i, exp := range r.WorkExperiences {
		exp.Descriptions = cloneStrings(exp.Descriptions)
		out.WorkExperiences[i] = exp
	}
	out.Educations = make([]ResumeEducation, len(r.Educations))
	for i, edu := range r.Educations {
		edu.Descriptions = cloneStrings(edu.Descriptions)
		out.Educations[i] = edu
	}
	out.Projects = make([]ResumeProject, len(r.Projects))
	for i, proj := range r.Projects {
		proj.Descriptions = cloneStrings(proj.Descriptions)
		out.Projects[i] = proj
	}
	out.Skills.FeaturedSkills = make([]FeaturedSkill, len(r.Skills.FeaturedSkills))
	copy(out.Skills.FeaturedSkills, r.Skills.FeaturedSkills)
	out.Skills.Descriptions = cloneStrings(r.Skills.Descriptions)
	out.Custom.Descriptions = cloneStrings(r.Custom.Descriptions)
	out.Portfolio = make([]ResumePortfolioItem, len(r.Portfolio))
	for i, item := range r.Portfolio {
		item.Descriptions = cloneStrings(item.Descriptions)
		out.Portfolio[i] = item
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
