package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-assistant/internal/extract"
	"github.com/jonathan/resume-assistant/internal/interview"
	"github.com/jonathan/resume-assistant/internal/types"
)

// SessionResponse is the state of an interview session returned after every
// intake operation.
type SessionResponse struct {
	SessionID   string              `json:"sessionId"`
	StepIndex   int                 `json:"stepIndex"`
	Complete    bool                `json:"complete"`
	Prompt      string              `json:"prompt,omitempty"`
	Placeholder string              `json:"placeholder,omitempty"`
	Messages    []interview.Message `json:"messages"`
	Resume      *types.Resume       `json:"resume"`
}

// sessionResponse snapshots the session state. Callers hold sess.mu; the
// response carries copies, never the live resume or message log, so encoding
// after unlock cannot observe a concurrent submission.
func sessionResponse(id string, sess *session) SessionResponse {
	snapshot := sess.iv.Resume().Clone()
	resp := SessionResponse{
		SessionID: id,
		StepIndex: sess.iv.StepIndex(),
		Complete:  sess.iv.Complete(),
		Messages:  append([]interview.Message(nil), sess.iv.Messages()...),
		Resume:    &snapshot,
	}
	if step := sess.iv.Current(); step != nil {
		resp.Prompt = sess.iv.PromptText()
		resp.Placeholder = step.Placeholder
	}
	return resp
}

// handleParseTranscript runs the field extractors over one finalized
// transcript and returns the partial-resume patch. An empty patch is a valid
// result, not an error.
func (s *Server) handleParseTranscript(w http.ResponseWriter, r *http.Request) {
	var req types.ParseTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "transcript is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"patch": extract.ParseTranscript(req.Transcript),
	})
}

// handleCreateSession starts a new guided-intake interview.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale string `json:"locale"`
	}
	// Body is optional; default locale is English.
	_ = json.NewDecoder(r.Body).Decode(&req)

	id, sess := s.sessions.create(interview.Locale(req.Locale))

	sess.mu.Lock()
	resp := sessionResponse(id, sess)
	sess.mu.Unlock()
	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleGetSession returns the current state of an interview session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess, ok := s.sessions.get(id)
	if !ok {
		s.failWith(w, &ErrSessionNotFound{ID: id}, "Unable to load session")
		return
	}

	sess.mu.Lock()
	resp := sessionResponse(id, sess)
	sess.mu.Unlock()
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSessionAnswer submits one answer to an interview session. Empty
// answers and post-completion submissions are no-ops that return the
// unchanged session state.
func (s *Server) handleSessionAnswer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess, ok := s.sessions.get(id)
	if !ok {
		s.failWith(w, &ErrSessionNotFound{ID: id}, "Unable to load session")
		return
	}

	var req types.InterviewAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sess.mu.Lock()
	sess.iv.Submit(req.Answer)
	resp := sessionResponse(id, sess)
	sess.mu.Unlock()
	s.jsonResponse(w, http.StatusOK, resp)
}
