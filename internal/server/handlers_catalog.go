package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/careerpath/internal/types"
)

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

func (s *Server) handleInterviewCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.GetInterviewCategories(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, categories)
}

func (s *Server) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.store.GetInterviewQuestions(r.Context(), r.URL.Query().Get("categoryId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, questions)
}

func (s *Server) handleInterviewQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.store.GetInterviewQuestion(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if question == nil {
		s.errorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, question)
}

func (s *Server) handleInterviewTips(w http.ResponseWriter, r *http.Request) {
	tips, err := s.store.GetInterviewTips(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tips)
}

// ---------------------------------------------------------------------
// Mentor Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := s.store.GetMentors(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, mentors)
}

func (s *Server) handleGetMentor(w http.ResponseWriter, r *http.Request) {
	mentor, err := s.store.GetMentor(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if mentor == nil {
		s.errorResponse(w, http.StatusNotFound, "Mentor not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, mentor)
}

// ---------------------------------------------------------------------
// Salary Handlers
// ---------------------------------------------------------------------

func (s *Server) handleSalaryInsights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	insights, err := s.store.GetSalaryInsights(r.Context(), types.SalaryFilter{
		Role:     q.Get("role"),
		Location: q.Get("location"),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, insights)
}

func (s *Server) handleNegotiationTips(w http.ResponseWriter, r *http.Request) {
	tips, err := s.store.GetNegotiationTips(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tips)
}

// ---------------------------------------------------------------------
// Event Handlers
// ---------------------------------------------------------------------

// RefreshEventsRequest replaces the cached event feed.
type RefreshEventsRequest struct {
	Events []json.RawMessage `json:"events" validate:"required"`
}

func (s *Server) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.events.Current(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

func (s *Server) handleRefreshEvents(w http.ResponseWriter, r *http.Request) {
	var req RefreshEventsRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	cache, err := s.events.Refresh(r.Context(), req.Events)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, cache)
}
