package server

import (
	"encoding/json"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-assistant/internal/types"
)

// handleSummarize writes a short professional summary for resume text.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req types.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := s.assist.SummarizeProfile(r.Context(), req.ResumeText)
	if err != nil {
		s.failWith(w, err, "Unable to summarize profile")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

// handleInferSkills extracts a skill list from resume text.
func (s *Server) handleInferSkills(w http.ResponseWriter, r *http.Request) {
	var req types.InferSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	skills, err := s.assist.InferSkills(r.Context(), req.Text)
	if err != nil {
		s.failWith(w, err, "Unable to infer skills")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleTranslate translates resume text into a target language.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req types.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	translated, err := s.assist.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		s.failWith(w, err, "Unable to translate resume")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"translated": translated})
}

// handleEnhance runs summarization and skill inference over the same text in
// parallel.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req types.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var (
		summary string
		skills  []string
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		summary, err = s.assist.SummarizeProfile(ctx, req.ResumeText)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.assist.InferSkills(ctx, req.ResumeText)
		return err
	})
	if err := g.Wait(); err != nil {
		s.failWith(w, err, "Unable to enhance profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"summary": summary,
		"skills":  skills,
	})
}
