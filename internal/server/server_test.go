package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/careerpath/internal/config"
	"github.com/jonathan/careerpath/internal/logger"
	"github.com/jonathan/careerpath/internal/server/ratelimit"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/storage/memory"
	"github.com/jonathan/careerpath/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.BcryptCost = 10
	return &cfg
}

func newTestServerWith(t *testing.T, store storage.Store, limiter *ratelimit.Limiter) http.Handler {
	t.Helper()
	if limiter == nil {
		limiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	}
	s, err := New(Deps{Store: store, Config: testConfig(), Logger: logger.Nop(), Limiter: limiter})
	require.NoError(t, err)
	t.Cleanup(s.release)
	return s.Handler()
}

func newTestServer(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.New(memory.WithSessions(session.NewMemoryStore(0)))
	return newTestServerWith(t, store, nil), store
}

// do sends body as JSON and returns the recorded response.
func do(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	return decodeBody[map[string]string](t, w)["message"]
}

func TestNew_RequiresStoreAndConfig(t *testing.T) {
	_, err := New(Deps{Config: testConfig()})
	assert.Error(t, err)
	_, err = New(Deps{Store: memory.New()})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	w := do(t, h, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","backend":"memory"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	h, _ := newTestServer(t)
	w := do(t, h, http.MethodOptions, "/api/roadmaps", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRoadmapRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/roadmaps", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]types.CareerRoadmap](t, w), 13)

	w = do(t, h, http.MethodGet, "/api/roadmaps?category=data+%26+analytics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, r := range decodeBody[[]types.CareerRoadmap](t, w) {
		assert.Equal(t, "Data & Analytics", r.Category)
	}

	w = do(t, h, http.MethodGet, "/api/roadmaps/web-dev-roadmap", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[types.CareerRoadmap](t, w).Milestones, 5)

	w = do(t, h, http.MethodGet, "/api/roadmaps/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Roadmap not found", message(t, w))
}

func TestProgressScenario(t *testing.T) {
	h, _ := newTestServer(t)
	body := map[string]string{"userId": "u1"}

	w := do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/start", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	started := decodeBody[types.UserRoadmapProgress](t, w)
	assert.Equal(t, "wdm-1", started.CurrentMilestone)
	assert.Zero(t, started.OverallProgress)
	assert.Empty(t, started.CompletedMilestones)

	w = do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/start", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, started.ID, decodeBody[types.UserRoadmapProgress](t, w).ID)

	w = do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/milestone/wdm-1/complete", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	done := decodeBody[types.UserRoadmapProgress](t, w)
	assert.Equal(t, []string{"wdm-1"}, done.CompletedMilestones)
	assert.Equal(t, "wdm-2", done.CurrentMilestone)
	assert.InDelta(t, 20.0, done.OverallProgress, 1e-9)

	w = do(t, h, http.MethodGet, "/api/roadmaps/web-dev-roadmap/progress/u1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, done, decodeBody[types.UserRoadmapProgress](t, w))

	w = do(t, h, http.MethodGet, "/api/users/u1/roadmap-progress", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]types.UserRoadmapProgress](t, w), 1)
}

func TestProgressErrors(t *testing.T) {
	h, store := newTestServer(t)
	body := map[string]string{"userId": "u2"}

	w := do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/milestone/wdm-1/complete", body, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	p, err := store.GetUserRoadmapProgress(context.Background(), "u2", "web-dev-roadmap")
	require.NoError(t, err)
	assert.Nil(t, p, "completing without progress creates nothing")

	w = do(t, h, http.MethodPost, "/api/roadmaps/missing/start", body, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/start", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/milestone/bogus/complete", body, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/api/roadmaps/web-dev-roadmap/progress/nobody", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/start", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation error: userId - required", message(t, w))

	w = do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/start", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCareerAnalysisRoutes(t *testing.T) {
	h, _ := newTestServer(t)
	survey := types.CareerSurvey{
		UserID:    "u1",
		Skills:    []string{"html", "CSS", "js", "React", "nodejs", "SQL"},
		Interests: []string{"web applications"},
	}

	w := do(t, h, http.MethodPost, "/api/career-analysis/analyze", survey, "")
	require.Equal(t, http.StatusOK, w.Code)
	recs := decodeBody[map[string][]types.CareerRecommendation](t, w)["recommendations"]
	require.NotEmpty(t, recs)
	assert.Equal(t, "web-dev-roadmap", recs[0].RoadmapID)

	w = do(t, h, http.MethodGet, "/api/career-analysis/u1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, survey.Skills, decodeBody[types.CareerAnalysisResult](t, w).Skills)

	w = do(t, h, http.MethodGet, "/api/career-analysis/u9", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/career-analysis/analyze", map[string]string{"userId": "u1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/linkedin-profile", types.NewLinkedInProfile{UserID: "u1", Headline: "Engineer"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[types.LinkedInProfile](t, w)

	w = do(t, h, http.MethodGet, "/api/linkedin-profile/u1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decodeBody[types.LinkedInProfile](t, w).ID)

	w = do(t, h, http.MethodPut, "/api/linkedin-profile/"+created.ID, map[string]any{"headline": "Staff Engineer"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[types.LinkedInProfile](t, w)
	assert.Equal(t, "Staff Engineer", updated.Headline)
	assert.Equal(t, "u1", updated.UserID)

	w = do(t, h, http.MethodPut, "/api/linkedin-profile/missing", map[string]any{"headline": "x"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodGet, "/api/linkedin-profile/u9", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodPost, "/api/linkedin-profile", map[string]any{"headline": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/resumes", types.NewResume{UserID: "u1", TemplateID: "modern", Skills: []string{"Go"}}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	resume := decodeBody[types.Resume](t, w)

	w = do(t, h, http.MethodGet, "/api/resumes/"+resume.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/users/u1/resumes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]types.Resume](t, w), 1)

	w = do(t, h, http.MethodPut, "/api/resumes/"+resume.ID, map[string]any{"summary": "Backend engineer"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[types.Resume](t, w)
	assert.Equal(t, "Backend engineer", updated.Summary)
	assert.Equal(t, []string{"Go"}, updated.Skills)

	w = do(t, h, http.MethodDelete, "/api/resumes/"+resume.ID, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodDelete, "/api/resumes/"+resume.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodGet, "/api/resumes/"+resume.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodPut, "/api/resumes/"+resume.ID, map[string]any{"summary": "x"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/api/users/nobody/resumes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestJobApplicationRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	for _, status := range []string{"applied", "interviewing", ""} {
		w := do(t, h, http.MethodPost, "/api/job-applications", types.NewJobApplication{
			UserID: "u1", Company: "Acme", Position: "Engineer", Status: status,
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, h, http.MethodGet, "/api/users/u1/job-applications", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeBody[[]types.JobApplication](t, w)
	assert.Len(t, all, 3)

	w = do(t, h, http.MethodGet, "/api/users/u1/job-applications?status=applied", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]types.JobApplication](t, w), 2)

	id := all[0].ID
	w = do(t, h, http.MethodPut, "/api/job-applications/"+id, map[string]any{"status": "offer"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "offer", decodeBody[types.JobApplication](t, w).Status)

	w = do(t, h, http.MethodPut, "/api/job-applications/"+id, map[string]any{"status": "ghosted"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/api/job-applications/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodDelete, "/api/job-applications/"+id, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, "/api/job-applications/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/job-applications", map[string]string{"userId": "u1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookmarkRoutes(t *testing.T) {
	h, _ := newTestServer(t)
	req := map[string]any{"userId": "u1", "bookId": "b1", "bookData": map[string]string{"title": "Go"}}

	w := do(t, h, http.MethodPost, "/api/bookmarks", req, "")
	require.Equal(t, http.StatusCreated, w.Code)
	bookmark := decodeBody[types.BookBookmark](t, w)
	assert.JSONEq(t, `{"title":"Go"}`, string(bookmark.BookData))

	w = do(t, h, http.MethodPost, "/api/bookmarks", req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Book already bookmarked", message(t, w))

	w = do(t, h, http.MethodPost, "/api/bookmarks", map[string]any{"userId": "u2", "bookId": "b1"}, "")
	assert.Equal(t, http.StatusCreated, w.Code, "other users may bookmark the same book")

	w = do(t, h, http.MethodPut, "/api/bookmarks/"+bookmark.ID, map[string]any{"lastReadPage": 42}, "")
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[types.BookBookmark](t, w)
	require.NotNil(t, updated.LastReadPage)
	assert.Equal(t, 42, *updated.LastReadPage)

	w = do(t, h, http.MethodGet, "/api/users/u1/bookmarks", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]types.BookBookmark](t, w), 1)

	w = do(t, h, http.MethodDelete, "/api/bookmarks/"+bookmark.ID, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodPut, "/api/bookmarks/"+bookmark.ID, map[string]any{"notes": "x"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/interview/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody[[]types.InterviewCategory](t, w))

	w = do(t, h, http.MethodGet, "/api/interview/questions?categoryId=behavioral", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, q := range decodeBody[[]types.InterviewQuestion](t, w) {
		assert.Equal(t, "behavioral", q.CategoryID)
	}

	w = do(t, h, http.MethodGet, "/api/interview/questions/q-behavioral-1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodGet, "/api/interview/questions/none", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/api/interview/tips", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/mentors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody[[]types.Mentor](t, w))
	w = do(t, h, http.MethodGet, "/api/mentors/mentor-1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodGet, "/api/mentors/none", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/api/salary-insights?role=software+engineer&location=san+francisco", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	insights := decodeBody[[]types.SalaryInsight](t, w)
	require.NotEmpty(t, insights)
	assert.Equal(t, "salary-1", insights[0].ID)

	w = do(t, h, http.MethodGet, "/api/negotiation-tips", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody[[]types.NegotiationTip](t, w))
}

func TestEventRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/events", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"events":[],"cachedAt":null,"fresh":false}`, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/events/cache", `{"events":[{"id":1},{"id":2}]}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/events", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	snapshot := decodeBody[struct {
		Events []json.RawMessage `json:"events"`
		Fresh  bool              `json:"fresh"`
	}](t, w)
	assert.Len(t, snapshot.Events, 2)
	assert.True(t, snapshot.Fresh)

	w = do(t, h, http.MethodPost, "/api/events/cache", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthFlow(t *testing.T) {
	h, _ := newTestServer(t)
	creds := types.RegisterRequest{Username: "ada", Password: "correct horse"}

	w := do(t, h, http.MethodPost, "/api/register", creds, "")
	require.Equal(t, http.StatusCreated, w.Code)
	registered := decodeBody[types.LoginResponse](t, w)
	assert.Equal(t, "ada", registered.User.Username)
	assert.NotEmpty(t, registered.Token)
	assert.NotContains(t, w.Body.String(), "password")

	w = do(t, h, http.MethodPost, "/api/register", creds, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/api/login", types.LoginRequest{Username: "ada", Password: "wrong password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = do(t, h, http.MethodPost, "/api/login", types.LoginRequest{Username: "nobody", Password: "whatever1"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/login", types.LoginRequest{Username: "ada", Password: "correct horse"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody[types.LoginResponse](t, w).Token

	w = do(t, h, http.MethodGet, "/api/user", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, registered.User.ID, decodeBody[types.PublicUser](t, w).ID)

	w = do(t, h, http.MethodPost, "/api/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodGet, "/api/user", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodGet, "/api/user", nil, registered.Token)
	assert.Equal(t, http.StatusOK, w.Code, "other sessions stay live")

	w = do(t, h, http.MethodPost, "/api/register", types.RegisterRequest{Username: "ab", Password: "short"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules:         []ratelimit.Rule{{Method: http.MethodGet, Path: "/api/mentors", Limit: 1, Window: time.Hour}},
	})
	h := newTestServerWith(t, memory.New(memory.WithSessions(session.NewMemoryStore(0))), limiter)

	w := do(t, h, http.MethodGet, "/api/mentors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = do(t, h, http.MethodGet, "/api/mentors", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "Rate limit exceeded. Please try again later.", message(t, w))

	w = do(t, h, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

// brokenStore fails every roadmap read.
type brokenStore struct {
	storage.Store
}

func (brokenStore) GetRoadmaps(context.Context) ([]types.CareerRoadmap, error) {
	return nil, errors.New("connection refused")
}

func (brokenStore) GetRoadmap(context.Context, string) (*types.CareerRoadmap, error) {
	return nil, errors.New("connection refused")
}

func TestBackendFailure(t *testing.T) {
	h := newTestServerWith(t, brokenStore{Store: memory.New(memory.WithSessions(session.NewMemoryStore(0)))}, nil)

	w := do(t, h, http.MethodGet, "/api/roadmaps", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/roadmaps/web-dev-roadmap/start", map[string]string{"userId": "u1"}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
