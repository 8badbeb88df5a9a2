package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Service wraps a Client with the assist operations the resume editor offers:
// summarization, skill inference, and translation. A Service with a nil
// client reports ErrUnavailable from every operation.
type Service struct {
	client Client
}

// NewService creates an assist service. client may be nil when no API key is
// configured.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Available reports whether the text service is configured.
func (s *Service) Available() bool {
	return s.client != nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	return s.client.GenerateText(ctx, prompt)
}

// SummarizeProfile writes a concise professional summary for resume text.
func (s *Service) SummarizeProfile(ctx context.Context, resumeText string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a concise two-sentence professional resume summary highlighting the most impressive accomplishments from this profile:\n%s",
		resumeText,
	)
	return s.generate(ctx, prompt)
}

var skillListSeparator = regexp.MustCompile(`,|\n|-`)

// InferSkills extracts a list of core skills mentioned in resume text.
func (s *Service) InferSkills(ctx context.Context, text string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Extract a comma-separated list of core skills mentioned in this resume text. Respond with only the comma separated skills list:\n%s",
		text,
	)
	content, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var skills []string
	for _, token := range skillListSeparator.Split(content, -1) {
		token = strings.TrimSpace(token)
		if token != "" {
			skills = append(skills, token)
		}
	}
	return skills, nil
}

// Translate translates resume text into the target language; the default
// target is Hindi.
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == "" {
		targetLanguage = "Hindi"
	}
	prompt := fmt.Sprintf(
		"Translate the following resume summary into %s. Respond with only the translated text:\n%s",
		targetLanguage, text,
	)
	return s.generate(ctx, prompt)
}
