// Package storage defines the persistence contract shared by the memory and document-store backends.
//
// Single-entity reads return nil, nil on a miss; deletes return false, nil for unknown ids and
// updates return nil, nil. A non-nil error always means the backend failed.
package storage

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/types"
)

// Store is every persistence operation the HTTP layer needs.
type Store interface {
	Users
	Profiles
	Resumes
	Roadmaps
	Progress
	Interview
	Mentors
	Salaries
	JobApplications
	Analyses
	Bookmarks
	Events

	// Sessions returns the session store owned by this storage instance.
	Sessions() session.Store
	// Backend names the implementation ("memory" or "document").
	Backend() string
	// Close releases backend resources.
	Close()
}

// Users stores accounts.
type Users interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	CreateUser(ctx context.Context, u types.NewUser) (*types.User, error)
}

// Profiles stores LinkedIn-style profiles.
type Profiles interface {
	GetLinkedInProfile(ctx context.Context, id string) (*types.LinkedInProfile, error)
	GetLinkedInProfileByUserID(ctx context.Context, userID string) (*types.LinkedInProfile, error)
	CreateLinkedInProfile(ctx context.Context, p types.NewLinkedInProfile) (*types.LinkedInProfile, error)
	UpdateLinkedInProfile(ctx context.Context, id string, patch types.LinkedInProfilePatch) (*types.LinkedInProfile, error)
}

// Resumes stores user resumes.
type Resumes interface {
	GetResume(ctx context.Context, id string) (*types.Resume, error)
	// GetResumeByUserID returns the first resume owned by userID.
	GetResumeByUserID(ctx context.Context, userID string) (*types.Resume, error)
	GetResumesByUserID(ctx context.Context, userID string) ([]types.Resume, error)
	CreateResume(ctx context.Context, r types.NewResume) (*types.Resume, error)
	UpdateResume(ctx context.Context, id string, patch types.ResumePatch) (*types.Resume, error)
	DeleteResume(ctx context.Context, id string) (bool, error)
}

// Roadmaps reads the roadmap catalog.
type Roadmaps interface {
	GetRoadmaps(ctx context.Context) ([]types.CareerRoadmap, error)
	GetRoadmap(ctx context.Context, id string) (*types.CareerRoadmap, error)
	GetRoadmapsByCategory(ctx context.Context, category string) ([]types.CareerRoadmap, error)
}

// Progress stores per-user roadmap progress records.
type Progress interface {
	GetUserRoadmapProgress(ctx context.Context, userID, roadmapID string) (*types.UserRoadmapProgress, error)
	GetUserRoadmapProgressList(ctx context.Context, userID string) ([]types.UserRoadmapProgress, error)
	CreateUserRoadmapProgress(ctx context.Context, p types.NewUserRoadmapProgress) (*types.UserRoadmapProgress, error)
	UpdateUserRoadmapProgress(ctx context.Context, id string, patch types.UserRoadmapProgressPatch) (*types.UserRoadmapProgress, error)
}

// Interview reads interview preparation content. Empty filters select everything.
type Interview interface {
	GetInterviewCategories(ctx context.Context) ([]types.InterviewCategory, error)
	GetInterviewQuestions(ctx context.Context, categoryID string) ([]types.InterviewQuestion, error)
	GetInterviewQuestion(ctx context.Context, id string) (*types.InterviewQuestion, error)
	GetInterviewTips(ctx context.Context, category string) ([]types.InterviewTip, error)
}

// Mentors reads the mentor catalog.
type Mentors interface {
	GetMentors(ctx context.Context) ([]types.Mentor, error)
	GetMentor(ctx context.Context, id string) (*types.Mentor, error)
}

// Salaries reads salary insights and negotiation advice.
type Salaries interface {
	GetSalaryInsights(ctx context.Context, filter types.SalaryFilter) ([]types.SalaryInsight, error)
	GetNegotiationTips(ctx context.Context) ([]types.NegotiationTip, error)
}

// JobApplications stores tracked job applications. An empty status selects every status.
type JobApplications interface {
	GetJobApplications(ctx context.Context, userID, status string) ([]types.JobApplication, error)
	GetJobApplication(ctx context.Context, id string) (*types.JobApplication, error)
	CreateJobApplication(ctx context.Context, a types.NewJobApplication) (*types.JobApplication, error)
	UpdateJobApplication(ctx context.Context, id string, patch types.JobApplicationPatch) (*types.JobApplication, error)
	DeleteJobApplication(ctx context.Context, id string) (bool, error)
}

// Analyses stores the single career analysis per user.
type Analyses interface {
	GetCareerAnalysis(ctx context.Context, userID string) (*types.CareerAnalysisResult, error)
	// SaveCareerAnalysis replaces any prior analysis for the same user, reusing its id.
	SaveCareerAnalysis(ctx context.Context, a types.NewCareerAnalysisResult) (*types.CareerAnalysisResult, error)
}

// Bookmarks stores book bookmarks.
type Bookmarks interface {
	GetBookBookmarks(ctx context.Context, userID string) ([]types.BookBookmark, error)
	GetBookBookmark(ctx context.Context, userID, bookID string) (*types.BookBookmark, error)
	CreateBookBookmark(ctx context.Context, b types.NewBookBookmark) (*types.BookBookmark, error)
	UpdateBookBookmark(ctx context.Context, id string, patch types.BookBookmarkPatch) (*types.BookBookmark, error)
	DeleteBookBookmark(ctx context.Context, id string) (bool, error)
}

// Events stores the singleton event cache.
type Events interface {
	// GetCachedEvents returns nil when the cache was never filled.
	GetCachedEvents(ctx context.Context) (*types.EventCache, error)
	// SetCachedEvents drops any existing cache and stores events as the only record.
	SetCachedEvents(ctx context.Context, events []json.RawMessage) (*types.EventCache, error)
}

// NewID returns a fresh opaque entity id.
func NewID() string {
	return uuid.NewString()
}
