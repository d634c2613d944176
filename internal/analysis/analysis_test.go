package analysis

import (
	"context"
	"testing"

	"github.com/jonathan/careerpath/internal/catalog"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/storage/memory"
	"github.com/jonathan/careerpath/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_WebDeveloper(t *testing.T) {
	survey := types.CareerSurvey{
		UserID:    "u1",
		Skills:    []string{"html", "CSS", "js", "React", "nodejs", "SQL"},
		Interests: []string{"web applications"},
	}

	recs := Recommend(survey, catalog.Roadmaps())
	require.Len(t, recs, MaxRecommendations)

	top := recs[0]
	assert.Equal(t, "web-dev-roadmap", top.RoadmapID)
	assert.Empty(t, top.MissingSkills)
	assert.Len(t, top.MatchedSkills, 6)
	assert.GreaterOrEqual(t, top.MatchScore, 70)
	assert.LessOrEqual(t, top.MatchScore, 100)
	assert.Equal(t, "12 months", top.EstimatedTime)
	assert.NotEmpty(t, top.Recommendation)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
}

func TestRecommend_TiesOrderedByTitle(t *testing.T) {
	roadmaps := []types.CareerRoadmap{
		{ID: "c", Title: "Charlie", RequiredSkills: []string{"Rust"}},
		{ID: "a", Title: "Alpha", RequiredSkills: []string{"Rust"}},
		{ID: "b", Title: "Bravo", RequiredSkills: []string{"Rust"}},
	}

	recs := Recommend(types.CareerSurvey{Skills: []string{"Cobol"}}, roadmaps)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{recs[0].RoadmapID, recs[1].RoadmapID, recs[2].RoadmapID})
	for _, r := range recs {
		assert.Equal(t, 0, r.MatchScore)
		assert.Equal(t, []string{"Rust"}, r.MissingSkills)
		assert.Equal(t, []string{}, r.MatchedSkills)
	}
}

func TestRecommend_SkillMatching(t *testing.T) {
	roadmaps := []types.CareerRoadmap{{ID: "ml", Title: "ML", RequiredSkills: []string{"Machine Learning", "Python"}}}

	recs := Recommend(types.CareerSurvey{Skills: []string{"ML", "Excel"}}, roadmaps)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"Machine Learning"}, recs[0].MatchedSkills)
	assert.Equal(t, []string{"Python"}, recs[0].MissingSkills)
	assert.Equal(t, 35, recs[0].MatchScore)

	recs = Recommend(types.CareerSurvey{Skills: []string{"python 3", "machine learning"}}, roadmaps)
	assert.Empty(t, recs[0].MissingSkills)
	assert.Equal(t, 70, recs[0].MatchScore)
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"c++", "c#", "cloud"}, tokens("C++ and C#, the Cloud"))
	assert.Empty(t, tokens("  "))
	assert.Equal(t, "go", normalizeSkill(" Golang "))
}

func TestAnalyzer_ReplacesPriorAnalysis(t *testing.T) {
	store := memory.New(memory.WithSessions(session.NewMemoryStore(0)))
	defer store.Close()
	a := NewAnalyzer(store)
	ctx := context.Background()

	first, err := a.Analyze(ctx, types.CareerSurvey{UserID: "u1", Skills: []string{"Python", "SQL"}})
	require.NoError(t, err)
	require.NotEmpty(t, first.Recommendations)

	second, err := a.Analyze(ctx, types.CareerSurvey{UserID: "u1", Skills: []string{"Figma"}})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := a.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Figma"}, got.Skills)
}

func TestAnalyzer_GetMissing(t *testing.T) {
	store := memory.New(memory.WithSessions(session.NewMemoryStore(0)))
	defer store.Close()

	_, err := NewAnalyzer(store).Get(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrAnalysisNotFound)
}
