package interview

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-assistant/internal/extract"
	"github.com/jonathan/resume-assistant/internal/types"
)

// Prompt is a bilingual question prompt.
type Prompt struct {
	EN string `json:"en"`
	HI string `json:"hi"`
}

// Step is one question of the guided intake sequence. Its handler parses a
// raw answer into a partial-resume patch; list categories always carry a
// single entry so the merge only ever touches index 0.
type Step struct {
	ID          string
	Prompt      Prompt
	Placeholder string
	handler     func(answer string) types.ResumePatch
}

// Steps returns the fixed question sequence: name, work experience, skills,
// education, summary. The order is a design constant.
func Steps() []Step {
	return []Step{
		{
			ID:          "name",
			Prompt:      Prompt{EN: "What is your name?", HI: "आपका नाम क्या है?"},
			Placeholder: "My name is Laverne Lindsey",
			handler: func(answer string) types.ResumePatch {
				return types.ResumePatch{Profile: types.ResumeProfile{Name: answer}}
			},
		},
		{
			ID:          "experience",
			Prompt:      Prompt{EN: "What work have you done before?", HI: "आपने पहले क्या कार्य किया है?"},
			Placeholder: "I worked at Amazon as an SDE from 2021 to 2023",
			handler: func(answer string) types.ResumePatch {
				return types.ResumePatch{
					WorkExperiences: []types.ResumeWorkExperience{parseExperienceAnswer(answer)},
				}
			},
		},
		{
			ID:          "skills",
			Prompt:      Prompt{EN: "What skills do you have?", HI: "आपके कौशल क्या हैं?"},
			Placeholder: "JavaScript, Java, Microservices, Mentoring",
			handler: func(answer string) types.ResumePatch {
				return types.ResumePatch{SkillDescriptions: extract.SplitList(answer)}
			},
		},
		{
			ID:          "education",
			Prompt:      Prompt{EN: "What education do you have?", HI: "आपकी शिक्षा क्या है?"},
			Placeholder: "B.Tech in CSE from IIT Bombay, 2020",
			handler: func(answer string) types.ResumePatch {
				return types.ResumePatch{
					Educations: []types.ResumeEducation{parseEducationAnswer(answer)},
				}
			},
		},
		{
			ID:          "summary",
			Prompt:      Prompt{EN: "How would you summarize yourself?", HI: "अपने बारे में संक्षेप में बताएं।"},
			Placeholder: "Product-focused engineer building accessible tools",
			handler: func(answer string) types.ResumePatch {
				return types.ResumePatch{Profile: types.ResumeProfile{Summary: answer}}
			},
		},
	}
}

var (
	answerCompanyPattern = regexp.MustCompile(`(?i)\bat\s+([a-z0-9\s]+?)(?:\s+as\s+|\s+from\s+|,|\.|$)`)
	answerTitlePattern   = regexp.MustCompile(`(?i)\bas\s+([a-z0-9\s]+?)(?:\s+from\s+|,|\.|$)`)
	answerDatePattern    = regexp.MustCompile(`(?i)\bfrom\s+(.+)`)
)

// parseExperienceAnswer reuses the transcript extraction idioms on a single
// chat answer. The whole answer doubles as the company when no "at" clause is
// present, and always becomes the single description line.
func parseExperienceAnswer(answer string) types.ResumeWorkExperience {
	exp := types.ResumeWorkExperience{
		Company:      answer,
		Descriptions: []string{answer},
	}
	if m := answerCompanyPattern.FindStringSubmatch(answer); m != nil {
		exp.Company = strings.TrimSpace(m[1])
	}
	if m := answerTitlePattern.FindStringSubmatch(answer); m != nil {
		exp.JobTitle = strings.TrimSpace(m[1])
	}
	if m := answerDatePattern.FindStringSubmatch(answer); m != nil {
		exp.Date = strings.TrimSpace(m[1])
	}
	return exp
}

// parseEducationAnswer expects "<degree> in <school>, <date>". The whole
// answer doubles as the degree when no "in" clause is present.
func parseEducationAnswer(answer string) types.ResumeEducation {
	edu := types.ResumeEducation{Degree: answer}

	degree, rest, found := strings.Cut(answer, " in ")
	if !found {
		return edu
	}
	edu.Degree = strings.TrimSpace(degree)

	school, date, _ := strings.Cut(rest, ",")
	edu.School = strings.TrimSpace(school)
	edu.Date = strings.TrimSpace(date)
	return edu
}
