package server

import (
	"net/http"

	"github.com/jonathan/careerpath/internal/types"
)

// ---------------------------------------------------------------------
// Job Application Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.store.GetJobApplications(r.Context(), r.PathValue("userId"), r.URL.Query().Get("status"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, apps)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := s.store.GetJobApplication(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Job application not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req types.NewJobApplication
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.store.CreateJobApplication(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	var patch types.JobApplicationPatch
	if err := s.decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.store.UpdateJobApplication(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Job application not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteJobApplication(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Job application not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------
// Bookmark Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := s.store.GetBookBookmarks(r.Context(), r.PathValue("userId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, bookmarks)
}

// handleCreateBookmark rejects a second bookmark of the same book by the same user.
func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req types.NewBookBookmark
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	existing, err := s.store.GetBookBookmark(r.Context(), req.UserID, req.BookID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if existing != nil {
		s.errorResponse(w, http.StatusBadRequest, "Book already bookmarked")
		return
	}

	bookmark, err := s.store.CreateBookBookmark(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, bookmark)
}

func (s *Server) handleUpdateBookmark(w http.ResponseWriter, r *http.Request) {
	var patch types.BookBookmarkPatch
	if err := s.decode(r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	bookmark, err := s.store.UpdateBookBookmark(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if bookmark == nil {
		s.errorResponse(w, http.StatusNotFound, "Bookmark not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, bookmark)
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteBookBookmark(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Bookmark not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
