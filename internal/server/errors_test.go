package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/careerpath/internal/analysis"
	"github.com/jonathan/careerpath/internal/errs"
	"github.com/jonathan/careerpath/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "userId", Message: "required"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("decode: %w", &ErrValidation{Message: "invalid request body"}), http.StatusBadRequest},
		{"roadmap", progress.ErrRoadmapNotFound, http.StatusNotFound},
		{"progress", progress.ErrProgressNotFound, http.StatusNotFound},
		{"milestone", progress.ErrMilestoneNotFound, http.StatusNotFound},
		{"analysis", analysis.ErrAnalysisNotFound, http.StatusNotFound},
		{"duplicate username", fmt.Errorf("username %q: %w", "ada", errs.ErrAlreadyExists), http.StatusConflict},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"backend", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_Error(t *testing.T) {
	assert.Equal(t, "validation error: userId - required", (&ErrValidation{Field: "userId", Message: "required"}).Error())
	assert.Equal(t, "validation error: invalid request body", (&ErrValidation{Message: "invalid request body"}).Error())
}
