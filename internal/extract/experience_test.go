package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-assistant/internal/types"
)

func TestExtractWorkExperiences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []types.ResumeWorkExperience
	}{
		{
			name:  "company title and date",
			input: "I worked at Infosys as Software Engineer from 2019 to 2023.",
			expected: []types.ResumeWorkExperience{
				{
					Company:      "Infosys",
					JobTitle:     "Software Engineer",
					Date:         "2019 to 2023",
					Descriptions: []string{"Infosys as Software Engineer from 2019 to 2023"},
				},
			},
		},
		{
			name:  "company only",
			input: "I worked at wipro.",
			expected: []types.ResumeWorkExperience{
				{
					Company:      "Wipro",
					Descriptions: []string{"wipro"},
				},
			},
		},
		{
			name:  "multiple clauses in order",
			input: "I worked at Google as a developer, and later worked with Amazon from 2020.",
			expected: []types.ResumeWorkExperience{
				{
					Company:      "Google",
					JobTitle:     "A Developer",
					Descriptions: []string{"Google as a developer"},
				},
				{
					Company:      "Amazon",
					Date:         "2020",
					Descriptions: []string{"Amazon from 2020"},
				},
			},
		},
		{
			name:     "no experience clause",
			input:    "My name is Asha Verma.",
			expected: nil,
		},
		{
			name:     "empty transcript",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractWorkExperiences(tt.input))
		})
	}
}
