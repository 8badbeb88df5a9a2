package extract

import (
	"strings"

	"github.com/jonathan/resume-assistant/internal/types"
)

// ExtractProjects extracts a project entry from every sentence that mentions
// the word "project". The words preceding the mention become the title and
// the whole sentence becomes the single description line.
func ExtractProjects(transcript string) []types.ResumeProject {
	var projects []types.ResumeProject
	for _, sentence := range strings.Split(transcript, ".") {
		idx := strings.Index(strings.ToLower(sentence), "project")
		if idx < 0 {
			continue
		}
		projects = append(projects, types.ResumeProject{
			Project:      CapitalizeWords(strings.TrimSpace(sentence[:idx])),
			Descriptions: []string{strings.TrimSpace(sentence)},
		})
	}
	return projects
}
