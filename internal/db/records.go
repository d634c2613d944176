package db

import (
	"context"

	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/types"
)

// User-owned collections. None of these fall back to defaults: an empty result is a valid state.

func (db *DB) GetLinkedInProfile(ctx context.Context, id string) (*types.LinkedInProfile, error) {
	return findOne[types.LinkedInProfile](ctx, db, tableProfiles, byID(id))
}

func (db *DB) GetLinkedInProfileByUserID(ctx context.Context, userID string) (*types.LinkedInProfile, error) {
	return findOne[types.LinkedInProfile](ctx, db, tableProfiles, filter{"userId": userID})
}

func (db *DB) CreateLinkedInProfile(ctx context.Context, p types.NewLinkedInProfile) (*types.LinkedInProfile, error) {
	profile := p.Build(storage.NewID(), db.now())
	if err := insertDoc(ctx, db, tableProfiles, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (db *DB) UpdateLinkedInProfile(ctx context.Context, id string, patch types.LinkedInProfilePatch) (*types.LinkedInProfile, error) {
	now := db.now()
	return patchDoc(ctx, db, tableProfiles, id, func(p *types.LinkedInProfile) { patch.Apply(p, now) })
}

func (db *DB) GetResume(ctx context.Context, id string) (*types.Resume, error) {
	return findOne[types.Resume](ctx, db, tableResumes, byID(id))
}

// GetResumeByUserID returns the oldest resume owned by userID.
func (db *DB) GetResumeByUserID(ctx context.Context, userID string) (*types.Resume, error) {
	return findOne[types.Resume](ctx, db, tableResumes, filter{"userId": userID})
}

func (db *DB) GetResumesByUserID(ctx context.Context, userID string) ([]types.Resume, error) {
	return findAll[types.Resume](ctx, db, tableResumes, filter{"userId": userID})
}

func (db *DB) CreateResume(ctx context.Context, r types.NewResume) (*types.Resume, error) {
	resume := r.Build(storage.NewID(), db.now())
	if err := insertDoc(ctx, db, tableResumes, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (db *DB) UpdateResume(ctx context.Context, id string, patch types.ResumePatch) (*types.Resume, error) {
	now := db.now()
	return patchDoc(ctx, db, tableResumes, id, func(r *types.Resume) { patch.Apply(r, now) })
}

func (db *DB) DeleteResume(ctx context.Context, id string) (bool, error) {
	return deleteDocs(ctx, db, tableResumes, byID(id))
}

func (db *DB) GetUserRoadmapProgress(ctx context.Context, userID, roadmapID string) (*types.UserRoadmapProgress, error) {
	return findOne[types.UserRoadmapProgress](ctx, db, tableProgress, filter{"userId": userID, "roadmapId": roadmapID})
}

func (db *DB) GetUserRoadmapProgressList(ctx context.Context, userID string) ([]types.UserRoadmapProgress, error) {
	return findAll[types.UserRoadmapProgress](ctx, db, tableProgress, filter{"userId": userID})
}

func (db *DB) CreateUserRoadmapProgress(ctx context.Context, p types.NewUserRoadmapProgress) (*types.UserRoadmapProgress, error) {
	progress := p.Build(storage.NewID(), db.now())
	if err := insertDoc(ctx, db, tableProgress, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (db *DB) UpdateUserRoadmapProgress(ctx context.Context, id string, patch types.UserRoadmapProgressPatch) (*types.UserRoadmapProgress, error) {
	now := db.now()
	return patchDoc(ctx, db, tableProgress, id, func(p *types.UserRoadmapProgress) { patch.Apply(p, now) })
}

// GetJobApplications lists userID's applications, optionally narrowed to one status.
func (db *DB) GetJobApplications(ctx context.Context, userID, status string) ([]types.JobApplication, error) {
	f := filter{"userId": userID}
	if status != "" {
		f["status"] = status
	}
	return findAll[types.JobApplication](ctx, db, tableApplications, f)
}

func (db *DB) GetJobApplication(ctx context.Context, id string) (*types.JobApplication, error) {
	return findOne[types.JobApplication](ctx, db, tableApplications, byID(id))
}

func (db *DB) CreateJobApplication(ctx context.Context, a types.NewJobApplication) (*types.JobApplication, error) {
	app := a.Build(storage.NewID(), db.now())
	if err := insertDoc(ctx, db, tableApplications, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (db *DB) UpdateJobApplication(ctx context.Context, id string, patch types.JobApplicationPatch) (*types.JobApplication, error) {
	now := db.now()
	return patchDoc(ctx, db, tableApplications, id, func(a *types.JobApplication) { patch.Apply(a, now) })
}

func (db *DB) DeleteJobApplication(ctx context.Context, id string) (bool, error) {
	return deleteDocs(ctx, db, tableApplications, byID(id))
}

func (db *DB) GetCareerAnalysis(ctx context.Context, userID string) (*types.CareerAnalysisResult, error) {
	return findOne[types.CareerAnalysisResult](ctx, db, tableAnalyses, filter{"userId": userID})
}

// SaveCareerAnalysis replaces the user's analysis document, keeping its id, or inserts the first one.
func (db *DB) SaveCareerAnalysis(ctx context.Context, a types.NewCareerAnalysisResult) (*types.CareerAnalysisResult, error) {
	owner := filter{"userId": a.UserID}
	existing, err := findOne[types.CareerAnalysisResult](ctx, db, tableAnalyses, owner)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		result := a.Build(existing.ID, db.now())
		if _, err := replaceDoc(ctx, db, tableAnalyses, owner, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	result := a.Build(storage.NewID(), db.now())
	if err := insertDoc(ctx, db, tableAnalyses, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (db *DB) GetBookBookmarks(ctx context.Context, userID string) ([]types.BookBookmark, error) {
	return findAll[types.BookBookmark](ctx, db, tableBookmarks, filter{"userId": userID})
}

func (db *DB) GetBookBookmark(ctx context.Context, userID, bookID string) (*types.BookBookmark, error) {
	return findOne[types.BookBookmark](ctx, db, tableBookmarks, filter{"userId": userID, "bookId": bookID})
}

func (db *DB) CreateBookBookmark(ctx context.Context, b types.NewBookBookmark) (*types.BookBookmark, error) {
	bookmark := b.Build(storage.NewID(), db.now())
	if err := insertDoc(ctx, db, tableBookmarks, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (db *DB) UpdateBookBookmark(ctx context.Context, id string, patch types.BookBookmarkPatch) (*types.BookBookmark, error) {
	now := db.now()
	return patchDoc(ctx, db, tableBookmarks, id, func(b *types.BookBookmark) { patch.Apply(b, now) })
}

func (db *DB) DeleteBookBookmark(ctx context.Context, id string) (bool, error) {
	return deleteDocs(ctx, db, tableBookmarks, byID(id))
}
