// Package interview implements the fixed-sequence guided intake: an ordered
// list of bilingual questions whose answers are parsed and merged into a
// working resume aggregate one step at a time.
package interview

import (
	"strings"

	"github.com/jonathan/resume-assistant/internal/resume"
	"github.com/jonathan/resume-assistant/internal/types"
)

// Message is one entry of the append-only prompt/answer log. The log exists
// for display; nothing else consumes it.
type Message struct {
	Sender string `json:"sender"` // "bot" or "user"
	Text   string `json:"text"`
}

// Locale selects the prompt language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleHI Locale = "hi"
)

// Interview drives one guided intake session. stepIndex runs from 0 to
// len(steps); reaching len(steps) is terminal. Submissions are discrete,
// synchronous events; the caller serializes access per session.
type Interview struct {
	steps     []Step
	stepIndex int
	locale    Locale
	resume    *types.Resume
	messages  []Message
}

// New starts an interview at the first step with an empty working resume.
func New(locale Locale) *Interview {
	if locale != LocaleHI {
		locale = LocaleEN
	}
	welcome := "Let's fill your resume one question at a time."
	if locale == LocaleHI {
		welcome = "चलिये, आपकी जानकारी एक-एक करके भरते हैं।"
	}
	return &Interview{
		steps:    Steps(),
		locale:   locale,
		resume:   resume.New(),
		messages: []Message{{Sender: "bot", Text: welcome}},
	}
}

// StepIndex returns the current position in the question sequence.
func (iv *Interview) StepIndex() int {
	return iv.stepIndex
}

// Complete reports whether every step has been answered.
func (iv *Interview) Complete() bool {
	return iv.stepIndex >= len(iv.steps)
}

// Current returns the step awaiting an answer, or nil once complete.
func (iv *Interview) Current() *Step {
	if iv.Complete() {
		return nil
	}
	step := iv.steps[iv.stepIndex]
	return &step
}

// PromptText returns the current prompt in the session locale.
func (iv *Interview) PromptText() string {
	step := iv.Current()
	if step == nil {
		return ""
	}
	if iv.locale == LocaleHI && step.Prompt.HI != "" {
		return step.Prompt.HI
	}
	return step.Prompt.EN
}

// Messages returns the prompt/answer log so far.
func (iv *Interview) Messages() []Message {
	return iv.messages
}

// Resume returns the working aggregate the interview edits.
func (iv *Interview) Resume() *types.Resume {
	return iv.resume
}

// Submit processes one answer. A whitespace-only answer is ignored: the step
// stays put, nothing is logged, no field changes. After the last step every
// submission is a no-op. Otherwise the step handler's patch is merged into
// the working resume, the exchange is logged, and the index advances by one.
// Step handlers emit single-entry lists, so they only ever edit index 0.
func (iv *Interview) Submit(answer string) {
	if iv.Complete() {
		return
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return
	}

	step := iv.steps[iv.stepIndex]
	resume.ApplyPatch(iv.resume, step.handler(trimmed))

	iv.messages = append(iv.messages,
		Message{Sender: "bot", Text: iv.PromptText()},
		Message{Sender: "user", Text: answer},
	)
	iv.stepIndex++
}
