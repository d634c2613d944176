// Package progress advances per-user roadmap progress: starting a roadmap and completing milestones.
//
// Completion is a read-modify-write over two storage calls. Concurrent completions for the same
// record can lose an update; callers that need stronger guarantees must serialize them.
package progress

import (
	"context"
	"fmt"
	"slices"

	"github.com/jonathan/careerpath/internal/errs"
	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/types"
)

var (
	// ErrRoadmapNotFound indicates the named roadmap does not exist.
	ErrRoadmapNotFound = fmt.Errorf("roadmap %w", errs.ErrNotFound)
	// ErrProgressNotFound indicates the user has not started the roadmap.
	ErrProgressNotFound = fmt.Errorf("progress %w", errs.ErrNotFound)
	// ErrMilestoneNotFound indicates the milestone is not part of the roadmap.
	ErrMilestoneNotFound = fmt.Errorf("milestone %w", errs.ErrNotFound)
)

// Derived roadmap states for a user.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Store is the storage surface the engine needs.
type Store interface {
	storage.Roadmaps
	storage.Progress
}

// Engine applies start and complete transitions.
type Engine struct {
	store Store
}

// NewEngine creates an engine over store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Start returns the user's progress on roadmapID, creating it on the first call.
// Starting twice returns the existing record unchanged.
func (e *Engine) Start(ctx context.Context, userID, roadmapID string) (*types.UserRoadmapProgress, error) {
	roadmap, err := e.store.GetRoadmap(ctx, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roadmap %s: %w", roadmapID, err)
	}
	if roadmap == nil {
		return nil, ErrRoadmapNotFound
	}

	existing, err := e.store.GetUserRoadmapProgress(ctx, userID, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := e.store.CreateUserRoadmapProgress(ctx, types.NewUserRoadmapProgress{
		UserID:              userID,
		RoadmapID:           roadmapID,
		CompletedMilestones: []string{},
		CurrentMilestone:    FirstMilestone(roadmap),
		OverallProgress:     0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}
	return created, nil
}

// CompleteMilestone marks milestoneID done. Re-completing is a no-op for the completed set.
// The current milestone moves to the array successor of milestoneID, even when earlier
// milestones are still open, and is cleared after the last one.
func (e *Engine) CompleteMilestone(ctx context.Context, userID, roadmapID, milestoneID string) (*types.UserRoadmapProgress, error) {
	current, err := e.store.GetUserRoadmapProgress(ctx, userID, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if current == nil {
		return nil, ErrProgressNotFound
	}

	roadmap, err := e.store.GetRoadmap(ctx, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roadmap %s: %w", roadmapID, err)
	}
	if roadmap == nil {
		return nil, ErrRoadmapNotFound
	}
	if indexOf(roadmap, milestoneID) < 0 {
		return nil, ErrMilestoneNotFound
	}

	completed := union(current.CompletedMilestones, milestoneID)
	next := NextMilestone(roadmap, milestoneID)
	percent := Percent(len(completed), len(roadmap.Milestones))

	updated, err := e.store.UpdateUserRoadmapProgress(ctx, current.ID, types.UserRoadmapProgressPatch{
		CompletedMilestones: &completed,
		CurrentMilestone:    &next,
		OverallProgress:     &percent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	if updated == nil {
		return nil, ErrProgressNotFound
	}
	return updated, nil
}

// Get returns the user's progress on roadmapID, or ErrProgressNotFound.
func (e *Engine) Get(ctx context.Context, userID, roadmapID string) (*types.UserRoadmapProgress, error) {
	p, err := e.store.GetUserRoadmapProgress(ctx, userID, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if p == nil {
		return nil, ErrProgressNotFound
	}
	return p, nil
}

// List returns every progress record for userID.
func (e *Engine) List(ctx context.Context, userID string) ([]types.UserRoadmapProgress, error) {
	list, err := e.store.GetUserRoadmapProgressList(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return list, nil
}

// FirstMilestone returns the id of the milestone with the lowest order, or "" for an empty roadmap.
func FirstMilestone(r *types.CareerRoadmap) string {
	if len(r.Milestones) == 0 {
		return ""
	}
	first := r.Milestones[0]
	for _, m := range r.Milestones[1:] {
		if m.Order < first.Order {
			first = m
		}
	}
	return first.ID
}

// NextMilestone returns the id after milestoneID in array order, or "" when it is last or unknown.
func NextMilestone(r *types.CareerRoadmap, milestoneID string) string {
	i := indexOf(r, milestoneID)
	if i < 0 || i+1 >= len(r.Milestones) {
		return ""
	}
	return r.Milestones[i+1].ID
}

// Percent is 100 * completed / total, or 0 for an empty roadmap.
func Percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(completed) / float64(total)
}

// Status derives the roadmap state from a progress record; nil means not started.
func Status(p *types.UserRoadmapProgress, r *types.CareerRoadmap) string {
	if p == nil {
		return StatusNotStarted
	}
	for _, m := range r.Milestones {
		if !slices.Contains(p.CompletedMilestones, m.ID) {
			return StatusInProgress
		}
	}
	return StatusCompleted
}

func indexOf(r *types.CareerRoadmap, milestoneID string) int {
	return slices.IndexFunc(r.Milestones, func(m types.Milestone) bool { return m.ID == milestoneID })
}

func union(set []string, id string) []string {
	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	if !slices.Contains(out, id) {
		out = append(out, id)
	}
	return out
}
