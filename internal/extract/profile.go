package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-assistant/internal/types"
)

var (
	namePattern     = regexp.MustCompile(`(?i)my name is ([a-z\s]+)`)
	locationPattern = regexp.MustCompile(`(?i)based in ([a-z\s]+)`)
	emailPattern    = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3})?[\s.-]?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	yearsPattern    = regexp.MustCompile(`(?i)(\d+)\s+years of experience`)
)

// ExtractProfile extracts profile fields from a transcript. Fields that do not
// match stay empty; the result is a partial profile, never an error.
func ExtractProfile(transcript string) types.ResumeProfile {
	var profile types.ResumeProfile

	if m := namePattern.FindStringSubmatch(transcript); m != nil {
		profile.Name = CapitalizeWords(strings.TrimSpace(m[1]))
	}
	if m := locationPattern.FindStringSubmatch(transcript); m != nil {
		profile.Location = CapitalizeWords(strings.TrimSpace(m[1]))
	}

	// The text preceding the first sentence terminator doubles as a summary.
	if summary := strings.TrimSpace(strings.SplitN(transcript, ".", 2)[0]); summary != "" {
		profile.Summary = summary
	}

	if m := emailPattern.FindString(transcript); m != "" {
		profile.Email = m
	}
	if m := phonePattern.FindString(transcript); m != "" {
		profile.Phone = strings.TrimSpace(m)
	}

	// Years are only trusted when the literal phrase is present.
	if strings.Contains(strings.ToLower(transcript), "years of experience") {
		if m := yearsPattern.FindStringSubmatch(transcript); m != nil {
			profile.ExperienceYears = m[1]
		}
	}

	return profile
}
