package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/careerpath/internal/errs"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/storage/memory"
	"github.com/jonathan/careerpath/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*Engine, *memory.Store) {
	t.Helper()
	store := memory.New(memory.WithSessions(session.NewMemoryStore(0)))
	t.Cleanup(store.Close)
	return NewEngine(store), store
}

func TestWebDevScenario(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	p, err := e.Start(ctx, "u1", "web-dev-roadmap")
	require.NoError(t, err)
	assert.Empty(t, p.CompletedMilestones)
	assert.Equal(t, "wdm-1", p.CurrentMilestone)
	assert.Equal(t, 0.0, p.OverallProgress)

	p, err = e.CompleteMilestone(ctx, "u1", "web-dev-roadmap", "wdm-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"wdm-1"}, p.CompletedMilestones)
	assert.Equal(t, "wdm-2", p.CurrentMilestone)
	assert.Equal(t, 20.0, p.OverallProgress)
}

func TestStart_Idempotent(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	first, err := e.Start(ctx, "u1", "devops-roadmap")
	require.NoError(t, err)
	second, err := e.Start(ctx, "u1", "devops-roadmap")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.StartedAt, second.StartedAt)

	list, err := e.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStart_UnknownRoadmap(t *testing.T) {
	e, _ := newEngine(t)
	_, err := e.Start(context.Background(), "u1", "nope")
	require.ErrorIs(t, err, ErrRoadmapNotFound)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCompleteMilestone_NoDuplicates(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	_, err := e.Start(ctx, "u1", "web-dev-roadmap")
	require.NoError(t, err)
	_, err = e.CompleteMilestone(ctx, "u1", "web-dev-roadmap", "wdm-1")
	require.NoError(t, err)
	p, err := e.CompleteMilestone(ctx, "u1", "web-dev-roadmap", "wdm-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"wdm-1"}, p.CompletedMilestones)
	assert.Equal(t, 20.0, p.OverallProgress)
}

func TestCompleteMilestone_LastClearsCurrent(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	_, err := e.Start(ctx, "u1", "mobile-dev-roadmap")
	require.NoError(t, err)

	var p *types.UserRoadmapProgress
	for _, id := range []string{"mdr-1", "mdr-2", "mdr-3", "mdr-4"} {
		p, err = e.CompleteMilestone(ctx, "u1", "mobile-dev-roadmap", id)
		require.NoError(t, err)
		assert.Equal(t, Percent(len(p.CompletedMilestones), 4), p.OverallProgress)
	}

	assert.Equal(t, "", p.CurrentMilestone)
	assert.Equal(t, 100.0, p.OverallProgress)
}

func TestCompleteMilestone_OutOfOrderAdvancesPastOpenMilestones(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	_, err := e.Start(ctx, "u1", "web-dev-roadmap")
	require.NoError(t, err)
	p, err := e.CompleteMilestone(ctx, "u1", "web-dev-roadmap", "wdm-3")
	require.NoError(t, err)

	assert.Equal(t, []string{"wdm-3"}, p.CompletedMilestones)
	assert.Equal(t, "wdm-4", p.CurrentMilestone)
	assert.Equal(t, 20.0, p.OverallProgress)
}

func TestCompleteMilestone_WithoutProgress(t *testing.T) {
	e, store := newEngine(t)
	ctx := context.Background()

	_, err := e.CompleteMilestone(ctx, "u1", "web-dev-roadmap", "wdm-1")
	require.ErrorIs(t, err, ErrProgressNotFound)

	p, err := store.GetUserRoadmapProgress(ctx, "u1", "web-dev-roadmap")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCompleteMilestone_UnknownMilestone(t *testing.T) {
	e, _ := newEngine(t)
	ctx := context.Background()

	_, err := e.Start(ctx, "u1", "web-dev-roadmap")
	require.NoError(t, err)
	_, err = e.CompleteMilestone(ctx, "u1", "web-dev-roadmap", "dsr-1")
	require.ErrorIs(t, err, ErrMilestoneNotFound)

	p, err := e.Get(ctx, "u1", "web-dev-roadmap")
	require.NoError(t, err)
	assert.Empty(t, p.CompletedMilestones)
}

func TestGet_Missing(t *testing.T) {
	e, _ := newEngine(t)
	_, err := e.Get(context.Background(), "u1", "web-dev-roadmap")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestHelpers(t *testing.T) {
	r := &types.CareerRoadmap{Milestones: []types.Milestone{
		{ID: "b", Order: 2},
		{ID: "a", Order: 1},
		{ID: "c", Order: 3},
	}}

	assert.Equal(t, "a", FirstMilestone(r))
	assert.Equal(t, "a", NextMilestone(r, "b"))
	assert.Equal(t, "", NextMilestone(r, "c"))
	assert.Equal(t, "", NextMilestone(r, "z"))
	assert.Equal(t, "", FirstMilestone(&types.CareerRoadmap{}))

	assert.Equal(t, 0.0, Percent(0, 0))
	assert.InDelta(t, 33.333, Percent(1, 3), 0.001)
	assert.Equal(t, 100.0, Percent(3, 3))

	assert.Equal(t, StatusNotStarted, Status(nil, r))
	assert.Equal(t, StatusInProgress, Status(&types.UserRoadmapProgress{CompletedMilestones: []string{"a"}}, r))
	assert.Equal(t, StatusCompleted, Status(&types.UserRoadmapProgress{CompletedMilestones: []string{"c", "a", "b"}}, r))
}
