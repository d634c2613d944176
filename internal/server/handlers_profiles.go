package server

import (
	"net/http"

	"github.com/jonathan/careerpath/internal/types"
)

// ---------------------------------------------------------------------
// LinkedIn Profile Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetLinkedInProfileByUserID(r.Context(), r.PathValue("userId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.NewLinkedInProfile
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	profile, err := s.store.CreateLinkedInProfile(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch types.LinkedInProfilePatch
	if err := s.decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	profile, err := s.store.UpdateLinkedInProfile(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// ---------------------------------------------------------------------
// Resume Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.store.GetResume(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.GetResumesByUserID(r.Context(), r.PathValue("userId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.NewResume
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	resume, err := s.store.CreateResume(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, resume)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	var patch types.ResumePatch
	if err := s.decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	resume, err := s.store.UpdateResume(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteResume(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
