package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-assistant/internal/schemas"
	"github.com/jonathan/resume-assistant/internal/types"
)

// SaveResumeResponse is the response for POST /resume/save.
type SaveResumeResponse struct {
	Message       string `json:"message"`
	VersionNumber int    `json:"versionNumber"`
	ProfileSlug   string `json:"profileSlug"`
	ResumeID      string `json:"resumeId"`
}

// handleSaveResume appends a resume snapshot to the caller's version history.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	var req types.SaveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil || string(req.Resume) == "null" {
		s.errorResponse(w, http.StatusBadRequest, "userId and resume are required")
		return
	}

	// The raw snapshot is schema-checked exactly as sent.
	if err := schemas.ValidateResume(req.Resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var snapshot types.Resume
	if err := json.Unmarshal(req.Resume, &snapshot); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+err.Error())
		return
	}

	result, err := s.store.SaveVersion(r.Context(), req.UserID, req.EditedBy, snapshot, req.PDFDownloadURL)
	if err != nil {
		s.failWith(w, err, "Unable to save resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, SaveResumeResponse{
		Message:       "Resume saved",
		VersionNumber: result.VersionNumber,
		ProfileSlug:   result.ProfileSlug,
		ResumeID:      result.RecordID.String(),
	})
}

// handleListVersions returns version metadata for a user; an unknown user
// gets an empty list.
func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	versions, err := s.store.ListVersions(r.Context(), userID)
	if err != nil {
		s.failWith(w, err, "Unable to list versions")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"versions": versions})
}

// handleGetVersion returns one snapshot: the numbered version when
// versionNumber is supplied, otherwise the latest.
func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	var versionNumber *int
	if raw := r.URL.Query().Get("versionNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "versionNumber must be an integer")
			return
		}
		versionNumber = &n
	}

	version, err := s.store.GetVersion(r.Context(), userID, versionNumber)
	if err != nil {
		s.failWith(w, err, "Unable to fetch resume version")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume":        version.Data,
		"versionNumber": version.VersionNumber,
	})
}

// handleAddComment appends a comment to an existing record.
func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req types.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "userId and message required")
		return
	}

	comments, err := s.store.AddComment(r.Context(), req.UserID, req.Author, req.Message)
	if err != nil {
		s.failWith(w, err, "Unable to add comment")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"comments": comments})
}

// handleListComments returns a record's comments; empty list when none.
func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	comments, err := s.store.ListComments(r.Context(), userID)
	if err != nil {
		s.failWith(w, err, "Unable to fetch comments")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"comments": comments})
}

// handlePublicProfile resolves a public slug to the latest snapshot of the
// owning record. Unauthenticated by design.
func (s *Server) handlePublicProfile(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		s.errorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	profile, err := s.store.GetBySlug(r.Context(), slug)
	if err != nil {
		s.failWith(w, err, "Unable to load public profile")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume":        profile.Resume,
		"versionNumber": profile.VersionNumber,
		"slug":          profile.Slug,
	})
}
