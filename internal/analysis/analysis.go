// Package analysis turns a profile survey into ranked career recommendations over the roadmap
// catalog and stores the result as the user's single career analysis.
package analysis

import (
	"context"
	"fmt"

	"github.com/jonathan/careerpath/internal/errs"
	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/types"
)

// ErrAnalysisNotFound indicates the user has no stored analysis.
var ErrAnalysisNotFound = fmt.Errorf("career analysis %w", errs.ErrNotFound)

// Store is the storage surface the analyzer needs.
type Store interface {
	storage.Roadmaps
	storage.Analyses
}

// Analyzer scores surveys and persists the outcome.
type Analyzer struct {
	store Store
}

// NewAnalyzer creates an analyzer over store.
func NewAnalyzer(store Store) *Analyzer {
	return &Analyzer{store: store}
}

// Analyze scores survey against the roadmap catalog and replaces the user's stored analysis.
func (a *Analyzer) Analyze(ctx context.Context, survey types.CareerSurvey) (*types.CareerAnalysisResult, error) {
	roadmaps, err := a.store.GetRoadmaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roadmaps: %w", err)
	}

	result, err := a.store.SaveCareerAnalysis(ctx, types.NewCareerAnalysisResult{
		UserID:            survey.UserID,
		Skills:            survey.Skills,
		Interests:         survey.Interests,
		Education:         survey.Education,
		CareerGoals:       survey.CareerGoals,
		WorkStyle:         survey.WorkStyle,
		Location:          survey.Location,
		SalaryExpectation: survey.SalaryExpectation,
		Recommendations:   Recommend(survey, roadmaps),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save career analysis: %w", err)
	}
	return result, nil
}

// Get returns the stored analysis for userID, or ErrAnalysisNotFound.
func (a *Analyzer) Get(ctx context.Context, userID string) (*types.CareerAnalysisResult, error) {
	result, err := a.store.GetCareerAnalysis(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load career analysis: %w", err)
	}
	if result == nil {
		return nil, ErrAnalysisNotFound
	}
	return result, nil
}
