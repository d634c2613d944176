package db

import (
	"context"
	"errors"
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonathan/careerpath/internal/db/migrations"
	"github.com/jonathan/careerpath/internal/errs"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/types"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	db := New(mock,
		WithSessions(session.NewMemoryStore(0)),
		WithClock(func() time.Time { return fixedNow }),
	)
	return db, mock
}

func selectAll(table string) string {
	return regexp.QuoteMeta(`SELECT doc FROM ` + table + ` WHERE doc @> $1::jsonb ORDER BY pk`)
}

func selectOne(table string) string {
	return regexp.QuoteMeta(`SELECT doc FROM ` + table + ` WHERE doc @> $1::jsonb ORDER BY pk LIMIT 1`)
}

func exists(table string) string {
	return regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM ` + table + `)`)
}

func docRows(docs ...string) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"doc"})
	for _, d := range docs {
		rows.AddRow([]byte(d))
	}
	return rows
}

func TestGetRoadmaps_FallsBackWhenRemoteEmpty(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectAll(tableRoadmaps)).WithArgs("{}").WillReturnRows(docRows())

	roadmaps, err := db.GetRoadmaps(context.Background())
	require.NoError(t, err)
	assert.Len(t, roadmaps, 13)
	assert.Equal(t, "web-dev-roadmap", roadmaps[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoadmaps_RemoteResultNotMerged(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectAll(tableRoadmaps)).WithArgs("{}").
		WillReturnRows(docRows(`{"id":"remote-roadmap","title":"Remote","category":"Ops","milestones":[]}`))

	roadmaps, err := db.GetRoadmaps(context.Background())
	require.NoError(t, err)
	require.Len(t, roadmaps, 1)
	assert.Equal(t, "remote-roadmap", roadmaps[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoadmapsByCategory_FiltersFallback(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectAll(tableRoadmaps)).WithArgs("{}").WillReturnRows(docRows())

	roadmaps, err := db.GetRoadmapsByCategory(context.Background(), "Data & Analytics")
	require.NoError(t, err)
	assert.Len(t, roadmaps, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoadmap_FallbackOnlyForEmptyCollection(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectQuery(selectOne(tableRoadmaps)).WithArgs(`{"id":"web-dev-roadmap"}`).WillReturnRows(docRows())
	mock.ExpectQuery(exists(tableRoadmaps)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	r, err := db.GetRoadmap(ctx, "web-dev-roadmap")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Len(t, r.Milestones, 5)

	mock.ExpectQuery(selectOne(tableRoadmaps)).WithArgs(`{"id":"web-dev-roadmap"}`).WillReturnRows(docRows())
	mock.ExpectQuery(exists(tableRoadmaps)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	r, err = db.GetRoadmap(ctx, "web-dev-roadmap")
	require.NoError(t, err)
	assert.Nil(t, r)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInterviewQuestions_FilteredFallback(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectAll(tableQuestions)).WithArgs(`{"categoryId":"technical"}`).WillReturnRows(docRows())
	mock.ExpectQuery(exists(tableQuestions)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	qs, err := db.GetInterviewQuestions(context.Background(), "technical")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	for _, q := range qs {
		assert.Equal(t, "technical", q.CategoryID)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInterviewQuestions_ProvisionedCollectionMissDoesNotFallBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectAll(tableQuestions)).WithArgs(`{"categoryId":"technical"}`).WillReturnRows(docRows())
	mock.ExpectQuery(exists(tableQuestions)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	qs, err := db.GetInterviewQuestions(context.Background(), "technical")
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoadmapsByCategory_ProvisionedCollectionIsNotMerged(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()
	custom := `{"id":"custom-1","title":"Custom","category":"Custom","milestones":[]}`

	mock.ExpectQuery(selectAll(tableRoadmaps)).WithArgs("{}").WillReturnRows(docRows(custom))
	roadmaps, err := db.GetRoadmapsByCategory(ctx, "Software Development")
	require.NoError(t, err)
	assert.NotNil(t, roadmaps)
	assert.Empty(t, roadmaps, "built-in roadmaps must not leak into a provisioned collection")

	mock.ExpectQuery(selectAll(tableRoadmaps)).WithArgs("{}").WillReturnRows(docRows(custom))
	roadmaps, err = db.GetRoadmapsByCategory(ctx, "custom")
	require.NoError(t, err)
	require.Len(t, roadmaps, 1)
	assert.Equal(t, "custom-1", roadmaps[0].ID)

	mock.ExpectQuery(selectOne(tableRoadmaps)).WithArgs(`{"id":"web-dev-roadmap"}`).WillReturnRows(docRows())
	mock.ExpectQuery(exists(tableRoadmaps)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	r, err := db.GetRoadmap(ctx, "web-dev-roadmap")
	require.NoError(t, err)
	assert.Nil(t, r, "listing and lookup agree on the provisioned collection")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInterviewTips_ProvisionedCollectionIsNotMerged(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectAll(tableTips)).WithArgs("{}").
		WillReturnRows(docRows(`{"id":"tip-x","category":"remote-only","title":"Remote"}`))

	tips, err := db.GetInterviewTips(context.Background(), "general")
	require.NoError(t, err)
	assert.Empty(t, tips)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrations_ContainmentIndexes(t *testing.T) {
	var all strings.Builder
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	for _, name := range files {
		raw, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		all.Write(raw)
	}

	tables := []string{
		tableUsers, tableProfiles, tableResumes, tableRoadmaps, tableProgress, tableCategories,
		tableQuestions, tableTips, tableMentors, tableSalaries, tableNegotiation,
		tableApplications, tableAnalyses, tableBookmarks,
	}
	for _, table := range tables {
		assert.Contains(t, all.String(), "ON "+table+" USING GIN (doc jsonb_path_ops)", table)
	}
}

func TestGetSalaryInsights_RemoteFilteredInProcess(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectAll(tableSalaries)).WithArgs("{}").WillReturnRows(docRows(
		`{"id":"s-1","role":"Staff Engineer","location":"Berlin"}`,
		`{"id":"s-2","role":"Designer","location":"Berlin"}`,
	))

	got, err := db.GetSalaryInsights(context.Background(), types.SalaryFilter{Role: "engineer"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s-1", got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCollections_NoFallback(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectQuery(selectAll(tableResumes)).WithArgs(`{"userId":"u1"}`).WillReturnRows(docRows())
	resumes, err := db.GetResumesByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, resumes)
	assert.Empty(t, resumes)

	mock.ExpectQuery(selectOne(tableProgress)).WithArgs(`{"roadmapId":"web-dev-roadmap","userId":"u1"}`).WillReturnRows(docRows())
	p, err := db.GetUserRoadmapProgress(ctx, "u1", "web-dev-roadmap")
	require.NoError(t, err)
	assert.Nil(t, p)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryError_Wrapped(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(selectAll(tableMentors)).WithArgs("{}").WillReturnError(boom)

	_, err := db.GetMentors(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "mentors")
}

func TestCreateUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()
	insert := regexp.QuoteMeta(`INSERT INTO users (doc) VALUES ($1::jsonb)`)

	mock.ExpectExec(insert).WithArgs(pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	u, err := db.CreateUser(ctx, types.NewUser{Username: "ada", Password: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ada", u.Username)

	mock.ExpectExec(insert).WithArgs(pgxmock.AnyArg()).WillReturnError(&pgconn.PgError{Code: "23505"})
	_, err = db.CreateUser(ctx, types.NewUser{Username: "ada", Password: "hash"})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateResume(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()
	update := regexp.QuoteMeta(`UPDATE resumes SET doc = $2::jsonb WHERE doc @> $1::jsonb`)

	mock.ExpectQuery(selectOne(tableResumes)).WithArgs(`{"id":"r1"}`).
		WillReturnRows(docRows(`{"id":"r1","userId":"u1","templateId":"modern","summary":"old","createdAt":"2024-01-01T00:00:00Z"}`))
	mock.ExpectExec(update).WithArgs(`{"id":"r1"}`, pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	summary := "new"
	r, err := db.UpdateResume(ctx, "r1", types.ResumePatch{Summary: &summary})
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "new", r.Summary)
	assert.Equal(t, "modern", r.TemplateID)
	assert.Equal(t, fixedNow, r.UpdatedAt)

	mock.ExpectQuery(selectOne(tableResumes)).WithArgs(`{"id":"missing"}`).WillReturnRows(docRows())
	r, err = db.UpdateResume(ctx, "missing", types.ResumePatch{Summary: &summary})
	require.NoError(t, err)
	assert.Nil(t, r)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteResume(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()
	del := regexp.QuoteMeta(`DELETE FROM resumes WHERE doc @> $1::jsonb`)

	mock.ExpectExec(del).WithArgs(`{"id":"r1"}`).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	ok, err := db.DeleteResume(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(del).WithArgs(`{"id":"r1"}`).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	ok, err = db.DeleteResume(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCareerAnalysis_ReplacesKeepingID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectOne(tableAnalyses)).WithArgs(`{"userId":"u1"}`).
		WillReturnRows(docRows(`{"id":"a1","userId":"u1","skills":["Go"]}`))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE career_analyses SET doc = $2::jsonb WHERE doc @> $1::jsonb`)).
		WithArgs(`{"userId":"u1"}`, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	res, err := db.SaveCareerAnalysis(context.Background(), types.NewCareerAnalysisResult{
		UserID: "u1",
		Skills: []string{"Figma"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", res.ID)
	assert.Equal(t, []string{"Figma"}, res.Skills)
	assert.Equal(t, fixedNow, res.AnalyzedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCareerAnalysis_InsertsFirst(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectOne(tableAnalyses)).WithArgs(`{"userId":"u1"}`).WillReturnRows(docRows())
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO career_analyses (doc) VALUES ($1::jsonb)`)).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	res, err := db.SaveCareerAnalysis(context.Background(), types.NewCareerAnalysisResult{UserID: "u1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCachedEvents_DeleteThenInsert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM event_cache`)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO event_cache (doc) VALUES ($1::jsonb)`)).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	cache, err := db.SetCachedEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, cache.Events)
	assert.Equal(t, fixedNow, cache.CachedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCachedEvents_RollbackOnInsertError(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM event_cache`)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO event_cache (doc) VALUES ($1::jsonb)`)).
		WithArgs(pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := db.SetCachedEvents(context.Background(), nil)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCachedEvents_Empty(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectQuery(selectOne(tableEvents)).WithArgs("{}").WillReturnRows(docRows())

	cache, err := db.GetCachedEvents(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cache)
}

func TestSeedCollection(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()
	mentors := []types.Mentor{{ID: "m1"}, {ID: "m2"}}

	mock.ExpectQuery(exists(tableMentors)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	res, err := seedCollection(ctx, db, tableMentors, mentors, false)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Zero(t, res.Inserted)

	mock.ExpectQuery(exists(tableMentors)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM mentors`)).WillReturnResult(pgxmock.NewResult("DELETE", 4))
	insert := regexp.QuoteMeta(`INSERT INTO mentors (doc) VALUES ($1::jsonb)`)
	mock.ExpectExec(insert).WithArgs(pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(insert).WithArgs(pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	res, err = seedCollection(ctx, db, tableMentors, mentors, true)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 2, res.Inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBackend(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	assert.Equal(t, "document", db.Backend())
}
