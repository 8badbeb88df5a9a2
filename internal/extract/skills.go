package extract

import (
	"regexp"
)

var skillsPattern = regexp.MustCompile(`(?i)(skills|expertise|tech stack)\s*(includes?|are|:)\s*([^.\n]*)`)

// ExtractSkillDescriptions extracts the skill list introduced by a trigger
// clause such as "my skills include ...". The list runs to the end of the
// sentence and is split on commas and conjunctions.
func ExtractSkillDescriptions(transcript string) []string {
	m := skillsPattern.FindStringSubmatch(transcript)
	if m == nil {
		return nil
	}
	return SplitList(m[3])
}
