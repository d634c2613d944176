package server

import (
	"net/http"

	"github.com/jonathan/careerpath/internal/types"
)

// ---------------------------------------------------------------------
// Roadmap Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListRoadmaps(w http.ResponseWriter, r *http.Request) {
	var (
		roadmaps []types.CareerRoadmap
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		roadmaps, err = s.store.GetRoadmapsByCategory(r.Context(), category)
	} else {
		roadmaps, err = s.store.GetRoadmaps(r.Context())
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmaps)
}

func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	roadmap, err := s.store.GetRoadmap(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if roadmap == nil {
		s.errorResponse(w, http.StatusNotFound, "Roadmap not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}

// ---------------------------------------------------------------------
// Progress Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := s.progress.Get(r.Context(), r.PathValue("userId"), r.PathValue("roadmapId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleStartRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.StartRoadmapRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	p, err := s.progress.Start(r.Context(), req.UserID, r.PathValue("roadmapId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleCompleteMilestone(w http.ResponseWriter, r *http.Request) {
	var req types.StartRoadmapRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	p, err := s.progress.CompleteMilestone(r.Context(), req.UserID, r.PathValue("roadmapId"), r.PathValue("milestoneId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	list, err := s.progress.List(r.Context(), r.PathValue("userId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, list)
}

// ---------------------------------------------------------------------
// Career Analysis Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var survey types.CareerSurvey
	if err := s.decode(r, &survey); err != nil {
		s.fail(w, r, err)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), survey)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"recommendations": result.Recommendations})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := s.analyzer.Get(r.Context(), r.PathValue("userId"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
