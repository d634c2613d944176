package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Collection tables. Every table has the shape (pk BIGSERIAL, doc JSONB).
const (
	tableUsers        = "users"
	tableProfiles     = "linkedin_profiles"
	tableResumes      = "resumes"
	tableRoadmaps     = "career_roadmaps"
	tableProgress     = "user_roadmap_progress"
	tableCategories   = "interview_categories"
	tableQuestions    = "interview_questions"
	tableTips         = "interview_tips"
	tableMentors      = "mentors"
	tableSalaries     = "salary_insights"
	tableNegotiation  = "negotiation_tips"
	tableApplications = "job_applications"
	tableAnalyses     = "career_analyses"
	tableBookmarks    = "book_bookmarks"
	tableEvents       = "event_cache"
)

// filter is a JSONB containment document: a row matches when its doc contains every pair.
type filter map[string]any

func byID(id string) filter { return filter{"id": id} }

func (f filter) encode() (string, error) {
	if len(f) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(map[string]any(f))
	if err != nil {
		return "", fmt.Errorf("failed to encode filter: %w", err)
	}
	return string(raw), nil
}

// findAll returns every document in table matching f, in insertion order.
func findAll[T any](ctx context.Context, db *DB, table string, f filter) ([]T, error) {
	where, err := f.encode()
	if err != nil {
		return nil, err
	}

	rows, err := db.pool.Query(ctx,
		`SELECT doc FROM `+table+` WHERE doc @> $1::jsonb ORDER BY pk`,
		where,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return out, nil
}

// findOne returns the first document matching f, or nil.
func findOne[T any](ctx context.Context, db *DB, table string, f filter) (*T, error) {
	where, err := f.encode()
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = db.pool.QueryRow(ctx,
		`SELECT doc FROM `+table+` WHERE doc @> $1::jsonb ORDER BY pk LIMIT 1`,
		where,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s document: %w", table, err)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", table, err)
	}
	return &v, nil
}

func insertDoc(ctx context.Context, db *DB, table string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", table, err)
	}
	if _, err := db.pool.Exec(ctx, `INSERT INTO `+table+` (doc) VALUES ($1::jsonb)`, string(doc)); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// replaceDoc overwrites documents matching f with v. It reports whether any row changed.
func replaceDoc(ctx context.Context, db *DB, table string, f filter, v any) (bool, error) {
	where, err := f.encode()
	if err != nil {
		return false, err
	}
	doc, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s document: %w", table, err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE `+table+` SET doc = $2::jsonb WHERE doc @> $1::jsonb`,
		where, string(doc),
	)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

func deleteDocs(ctx context.Context, db *DB, table string, f filter) (bool, error) {
	where, err := f.encode()
	if err != nil {
		return false, err
	}
	tag, err := db.pool.Exec(ctx, `DELETE FROM `+table+` WHERE doc @> $1::jsonb`, where)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// patchDoc reads the document with id, applies fn and writes it back. It returns nil for unknown ids.
func patchDoc[T any](ctx context.Context, db *DB, table, id string, fn func(*T)) (*T, error) {
	v, err := findOne[T](ctx, db, table, byID(id))
	if err != nil || v == nil {
		return nil, err
	}
	fn(v)

	ok, err := replaceDoc(ctx, db, table, byID(id), v)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Deleted between the read and the write.
		return nil, nil
	}
	return v, nil
}

func isEmpty(ctx context.Context, db *DB, table string) (bool, error) {
	var exists bool
	if err := db.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+`)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return !exists, nil
}

// catalogList reads a catalog collection. narrow, when set, refines the remote rows in process.
// The built-in defaults, narrowed the same way, answer only when the remote collection holds
// no documents at all; a provisioned collection is never mixed with them.
func catalogList[T any](ctx context.Context, db *DB, table string, f filter, narrow func([]T) []T, defaults func() []T) ([]T, error) {
	docs, err := findAll[T](ctx, db, table, f)
	if err != nil {
		return nil, err
	}
	fetched := len(docs)
	if narrow != nil {
		docs = narrow(docs)
	}
	if len(docs) > 0 {
		return docs, nil
	}

	empty := fetched == 0
	if empty && len(f) > 0 {
		if empty, err = isEmpty(ctx, db, table); err != nil {
			return nil, err
		}
	}
	if !empty {
		return make([]T, 0), nil
	}

	fallback := defaults()
	if narrow != nil {
		fallback = narrow(fallback)
	}
	return fallback, nil
}

// catalogOne looks up one catalog document by id. It consults the defaults only when the
// remote collection holds no documents at all.
func catalogOne[T any](ctx context.Context, db *DB, table, id string, fallback func() *T) (*T, error) {
	v, err := findOne[T](ctx, db, table, byID(id))
	if err != nil || v != nil {
		return v, err
	}

	empty, err := isEmpty(ctx, db, table)
	if err != nil {
		return nil, err
	}
	if !empty {
		return nil, nil
	}
	return fallback(), nil
}
