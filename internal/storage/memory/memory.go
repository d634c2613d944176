// Package memory implements storage.Store with in-process maps seeded from the built-in catalog.
//
// Lookups by fields other than id are linear scans; the store targets development and demo
// scale. A single RWMutex keeps map access safe. It does not make multi-call sequences atomic.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jonathan/careerpath/internal/catalog"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/types"
)

// Store is the in-memory storage backend.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users        *table[types.User]
	profiles     *table[types.LinkedInProfile]
	resumes      *table[types.Resume]
	roadmaps     *table[types.CareerRoadmap]
	progress     *table[types.UserRoadmapProgress]
	categories   *table[types.InterviewCategory]
	questions    *table[types.InterviewQuestion]
	tips         *table[types.InterviewTip]
	mentors      *table[types.Mentor]
	salaries     *table[types.SalaryInsight]
	negotiation  *table[types.NegotiationTip]
	applications *table[types.JobApplication]
	analyses     *table[types.CareerAnalysisResult]
	bookmarks    *table[types.BookBookmark]
	events       *types.EventCache

	sessions session.Store
}

var _ storage.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithSessions replaces the default 24-hour memory session store.
func WithSessions(s session.Store) Option {
	return func(m *Store) { m.sessions = s }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Store) { m.now = now }
}

// New creates a store seeded with the built-in catalog.
func New(opts ...Option) *Store {
	m := &Store{
		now:          func() time.Time { return time.Now().UTC() },
		users:        newTable[types.User](),
		profiles:     newTable[types.LinkedInProfile](),
		resumes:      newTable[types.Resume](),
		roadmaps:     newTable[types.CareerRoadmap](),
		progress:     newTable[types.UserRoadmapProgress](),
		categories:   newTable[types.InterviewCategory](),
		questions:    newTable[types.InterviewQuestion](),
		tips:         newTable[types.InterviewTip](),
		mentors:      newTable[types.Mentor](),
		salaries:     newTable[types.SalaryInsight](),
		negotiation:  newTable[types.NegotiationTip](),
		applications: newTable[types.JobApplication](),
		analyses:     newTable[types.CareerAnalysisResult](),
		bookmarks:    newTable[types.BookBookmark](),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.sessions == nil {
		m.sessions = session.NewMemoryStore(session.DefaultCheckPeriod)
	}

	m.seed()
	return m
}

func (m *Store) seed() {
	for _, r := range catalog.Roadmaps() {
		m.roadmaps.put(r.ID, &r)
	}
	for _, c := range catalog.InterviewCategories() {
		m.categories.put(c.ID, &c)
	}
	for _, q := range catalog.InterviewQuestions() {
		m.questions.put(q.ID, &q)
	}
	for _, t := range catalog.InterviewTips() {
		m.tips.put(t.ID, &t)
	}
	for _, mt := range catalog.Mentors() {
		m.mentors.put(mt.ID, &mt)
	}
	for _, s := range catalog.SalaryInsights() {
		m.salaries.put(s.ID, &s)
	}
	for _, n := range catalog.NegotiationTips() {
		m.negotiation.put(n.ID, &n)
	}
}

// Backend names this implementation.
func (m *Store) Backend() string { return "memory" }

// Sessions returns the session store created with this instance.
func (m *Store) Sessions() session.Store { return m.sessions }

// Close stops the session reaper.
func (m *Store) Close() {
	_ = m.sessions.Close()
}

// get reads one row by id under the read lock.
func get[T any](m *Store, t *table[T], id string) *T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := t.get(id)
	if !ok {
		return nil
	}
	return clone(v)
}

// list reads every row matching keep under the read lock.
func list[T any](m *Store, t *table[T], keep func(*T) bool) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return t.filter(keep)
}

// first reads the first row matching keep under the read lock.
func first[T any](m *Store, t *table[T], keep func(*T) bool) *T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(t.find(keep))
}

// insert stores v under id and returns a copy.
func insert[T any](m *Store, t *table[T], id string, v *T) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.put(id, v)
	return clone(v)
}

// update applies fn to the stored row and returns a copy, or nil when id is unknown.
func update[T any](m *Store, t *table[T], id string, fn func(*T)) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := t.get(id)
	if !ok {
		return nil
	}
	fn(v)
	return clone(v)
}

func remove[T any](m *Store, t *table[T], id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return t.remove(id)
}

// Users

func (m *Store) GetUser(_ context.Context, id string) (*types.User, error) {
	return get(m, m.users, id), nil
}

func (m *Store) GetUserByUsername(_ context.Context, username string) (*types.User, error) {
	return first(m, m.users, func(u *types.User) bool { return u.Username == username }), nil
}

func (m *Store) CreateUser(_ context.Context, u types.NewUser) (*types.User, error) {
	user := &types.User{ID: storage.NewID(), Username: u.Username, Password: u.Password}
	return insert(m, m.users, user.ID, user), nil
}

// Profiles

func (m *Store) GetLinkedInProfile(_ context.Context, id string) (*types.LinkedInProfile, error) {
	return get(m, m.profiles, id), nil
}

func (m *Store) GetLinkedInProfileByUserID(_ context.Context, userID string) (*types.LinkedInProfile, error) {
	return first(m, m.profiles, func(p *types.LinkedInProfile) bool { return p.UserID == userID }), nil
}

func (m *Store) CreateLinkedInProfile(_ context.Context, p types.NewLinkedInProfile) (*types.LinkedInProfile, error) {
	profile := p.Build(storage.NewID(), m.now())
	return insert(m, m.profiles, profile.ID, profile), nil
}

func (m *Store) UpdateLinkedInProfile(_ context.Context, id string, patch types.LinkedInProfilePatch) (*types.LinkedInProfile, error) {
	now := m.now()
	return update(m, m.profiles, id, func(p *types.LinkedInProfile) { patch.Apply(p, now) }), nil
}

// Resumes

func (m *Store) GetResume(_ context.Context, id string) (*types.Resume, error) {
	return get(m, m.resumes, id), nil
}

func (m *Store) GetResumeByUserID(_ context.Context, userID string) (*types.Resume, error) {
	return first(m, m.resumes, func(r *types.Resume) bool { return r.UserID == userID }), nil
}

func (m *Store) GetResumesByUserID(_ context.Context, userID string) ([]types.Resume, error) {
	return list(m, m.resumes, func(r *types.Resume) bool { return r.UserID == userID }), nil
}

func (m *Store) CreateResume(_ context.Context, r types.NewResume) (*types.Resume, error) {
	resume := r.Build(storage.NewID(), m.now())
	return insert(m, m.resumes, resume.ID, resume), nil
}

func (m *Store) UpdateResume(_ context.Context, id string, patch types.ResumePatch) (*types.Resume, error) {
	now := m.now()
	return update(m, m.resumes, id, func(r *types.Resume) { patch.Apply(r, now) }), nil
}

func (m *Store) DeleteResume(_ context.Context, id string) (bool, error) {
	return remove(m, m.resumes, id), nil
}

// Roadmaps

func (m *Store) GetRoadmaps(_ context.Context) ([]types.CareerRoadmap, error) {
	return list(m, m.roadmaps, nil), nil
}

func (m *Store) GetRoadmap(_ context.Context, id string) (*types.CareerRoadmap, error) {
	return get(m, m.roadmaps, id), nil
}

func (m *Store) GetRoadmapsByCategory(_ context.Context, category string) ([]types.CareerRoadmap, error) {
	return catalog.RoadmapsByCategory(list(m, m.roadmaps, nil), category), nil
}

// Progress

func (m *Store) GetUserRoadmapProgress(_ context.Context, userID, roadmapID string) (*types.UserRoadmapProgress, error) {
	return first(m, m.progress, func(p *types.UserRoadmapProgress) bool {
		return p.UserID == userID && p.RoadmapID == roadmapID
	}), nil
}

func (m *Store) GetUserRoadmapProgressList(_ context.Context, userID string) ([]types.UserRoadmapProgress, error) {
	return list(m, m.progress, func(p *types.UserRoadmapProgress) bool { return p.UserID == userID }), nil
}

func (m *Store) CreateUserRoadmapProgress(_ context.Context, p types.NewUserRoadmapProgress) (*types.UserRoadmapProgress, error) {
	progress := p.Build(storage.NewID(), m.now())
	return insert(m, m.progress, progress.ID, progress), nil
}

func (m *Store) UpdateUserRoadmapProgress(_ context.Context, id string, patch types.UserRoadmapProgressPatch) (*types.UserRoadmapProgress, error) {
	now := m.now()
	return update(m, m.progress, id, func(p *types.UserRoadmapProgress) { patch.Apply(p, now) }), nil
}

// Interview

func (m *Store) GetInterviewCategories(_ context.Context) ([]types.InterviewCategory, error) {
	return list(m, m.categories, nil), nil
}

func (m *Store) GetInterviewQuestions(_ context.Context, categoryID string) ([]types.InterviewQuestion, error) {
	return catalog.QuestionsByCategory(list(m, m.questions, nil), categoryID), nil
}

func (m *Store) GetInterviewQuestion(_ context.Context, id string) (*types.InterviewQuestion, error) {
	return get(m, m.questions, id), nil
}

func (m *Store) GetInterviewTips(_ context.Context, category string) ([]types.InterviewTip, error) {
	return catalog.TipsByCategory(list(m, m.tips, nil), category), nil
}

// Mentors

func (m *Store) GetMentors(_ context.Context) ([]types.Mentor, error) {
	return list(m, m.mentors, nil), nil
}

func (m *Store) GetMentor(_ context.Context, id string) (*types.Mentor, error) {
	return get(m, m.mentors, id), nil
}

// Salaries

func (m *Store) GetSalaryInsights(_ context.Context, filter types.SalaryFilter) ([]types.SalaryInsight, error) {
	return catalog.FilterSalaries(list(m, m.salaries, nil), filter), nil
}

func (m *Store) GetNegotiationTips(_ context.Context) ([]types.NegotiationTip, error) {
	return list(m, m.negotiation, nil), nil
}

// Job applications

func (m *Store) GetJobApplications(_ context.Context, userID, status string) ([]types.JobApplication, error) {
	return list(m, m.applications, func(a *types.JobApplication) bool {
		return a.UserID == userID && (status == "" || a.Status == status)
	}), nil
}

func (m *Store) GetJobApplication(_ context.Context, id string) (*types.JobApplication, error) {
	return get(m, m.applications, id), nil
}

func (m *Store) CreateJobApplication(_ context.Context, a types.NewJobApplication) (*types.JobApplication, error) {
	app := a.Build(storage.NewID(), m.now())
	return insert(m, m.applications, app.ID, app), nil
}

func (m *Store) UpdateJobApplication(_ context.Context, id string, patch types.JobApplicationPatch) (*types.JobApplication, error) {
	now := m.now()
	return update(m, m.applications, id, func(a *types.JobApplication) { patch.Apply(a, now) }), nil
}

func (m *Store) DeleteJobApplication(_ context.Context, id string) (bool, error) {
	return remove(m, m.applications, id), nil
}

// Analyses

func (m *Store) GetCareerAnalysis(_ context.Context, userID string) (*types.CareerAnalysisResult, error) {
	return first(m, m.analyses, func(a *types.CareerAnalysisResult) bool { return a.UserID == userID }), nil
}

func (m *Store) SaveCareerAnalysis(_ context.Context, a types.NewCareerAnalysisResult) (*types.CareerAnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := storage.NewID()
	if existing := m.analyses.find(func(r *types.CareerAnalysisResult) bool { return r.UserID == a.UserID }); existing != nil {
		id = existing.ID
	}
	result := a.Build(id, m.now())
	m.analyses.put(id, result)
	return clone(result), nil
}

// Bookmarks

func (m *Store) GetBookBookmarks(_ context.Context, userID string) ([]types.BookBookmark, error) {
	return list(m, m.bookmarks, func(b *types.BookBookmark) bool { return b.UserID == userID }), nil
}

func (m *Store) GetBookBookmark(_ context.Context, userID, bookID string) (*types.BookBookmark, error) {
	return first(m, m.bookmarks, func(b *types.BookBookmark) bool {
		return b.UserID == userID && b.BookID == bookID
	}), nil
}

func (m *Store) CreateBookBookmark(_ context.Context, b types.NewBookBookmark) (*types.BookBookmark, error) {
	bookmark := b.Build(storage.NewID(), m.now())
	return insert(m, m.bookmarks, bookmark.ID, bookmark), nil
}

func (m *Store) UpdateBookBookmark(_ context.Context, id string, patch types.BookBookmarkPatch) (*types.BookBookmark, error) {
	now := m.now()
	return update(m, m.bookmarks, id, func(b *types.BookBookmark) { patch.Apply(b, now) }), nil
}

func (m *Store) DeleteBookBookmark(_ context.Context, id string) (bool, error) {
	return remove(m, m.bookmarks, id), nil
}

// Events

func (m *Store) GetCachedEvents(_ context.Context) (*types.EventCache, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.events), nil
}

func (m *Store) SetCachedEvents(_ context.Context, events []json.RawMessage) (*types.EventCache, error) {
	stored := make([]json.RawMessage, len(events))
	copy(stored, events)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = &types.EventCache{Events: stored, CachedAt: m.now()}
	return clone(m.events), nil
}
