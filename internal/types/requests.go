package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// SaveResumeRequest represents the request to append a resume version. The
// snapshot stays raw so it can be schema-checked exactly as sent before
// unmarshaling.
type SaveResumeRequest struct {
	UserID         string          `json:"userId" validate:"required,min=1"`
	EditedBy       string          `json:"editedBy,omitempty"`
	Resume         json.RawMessage `json:"resume" validate:"required"`
	PDFDownloadURL string          `json:"pdfDownloadUrl,omitempty"`
}

// AddCommentRequest represents the request to append a comment to a record.
type AddCommentRequest struct {
	UserID  string `json:"userId" validate:"required,min=1"`
	Author  string `json:"author,omitempty"`
	Message string `json:"message" validate:"required,min=1"`
}

// ParseTranscriptRequest carries one finalized transcript string.
type ParseTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required,min=1"`
}

// InterviewAnswerRequest carries one submitted chat answer.
type InterviewAnswerRequest struct {
	Answer string `json:"answer"`
}

// SummarizeRequest carries the resume text to summarize.
type SummarizeRequest struct {
	ResumeText string `json:"resumeText"`
}

// InferSkillsRequest carries the text to infer skills from.
type InferSkillsRequest struct {
	Text string `json:"text"`
}

// TranslateRequest carries the text and target language for translation.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}

// Validate validates the SaveResumeRequest using the validator.
func (r *SaveResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AddCommentRequest using the validator.
func (r *AddCommentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseTranscriptRequest using the validator.
func (r *ParseTranscriptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
