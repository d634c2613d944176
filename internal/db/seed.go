package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/careerpath/internal/catalog"
	"golang.org/x/sync/errgroup"
)

// SeedResult reports what Seed did with one catalog collection.
type SeedResult struct {
	Collection string
	Inserted   int
	Skipped    bool
}

// Seed writes data into the remote catalog collections, one concurrent task per collection.
// Collections that already hold documents are skipped unless force is set, in which case
// their contents are replaced.
func (db *DB) Seed(ctx context.Context, data catalog.Data, force bool) ([]SeedResult, error) {
	results := make([]SeedResult, 7)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		results[0], err = seedCollection(gctx, db, tableRoadmaps, data.Roadmaps, force)
		return err
	})
	g.Go(func() (err error) {
		results[1], err = seedCollection(gctx, db, tableCategories, data.InterviewCategories, force)
		return err
	})
	g.Go(func() (err error) {
		results[2], err = seedCollection(gctx, db, tableQuestions, data.InterviewQuestions, force)
		return err
	})
	g.Go(func() (err error) {
		results[3], err = seedCollection(gctx, db, tableTips, data.InterviewTips, force)
		return err
	})
	g.Go(func() (err error) {
		results[4], err = seedCollection(gctx, db, tableMentors, data.Mentors, force)
		return err
	})
	g.Go(func() (err error) {
		results[5], err = seedCollection(gctx, db, tableSalaries, data.SalaryInsights, force)
		return err
	})
	g.Go(func() (err error) {
		results[6], err = seedCollection(gctx, db, tableNegotiation, data.NegotiationTips, force)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func seedCollection[T any](ctx context.Context, db *DB, table string, docs []T, force bool) (res SeedResult, err error) {
	res.Collection = table

	empty, err := isEmpty(ctx, db, table)
	if err != nil {
		return res, err
	}
	if !empty && !force {
		res.Skipped = true
		return res, nil
	}

	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return res, fmt.Errorf("failed to begin seeding %s: %w", table, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = fmt.Errorf("failed to commit seeding %s: %w", table, e)
		}
	}()

	if !empty {
		if _, err = tx.Exec(ctx, `DELETE FROM `+table); err != nil {
			return res, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	for _, d := range docs {
		raw, mErr := json.Marshal(d)
		if mErr != nil {
			return res, fmt.Errorf("failed to encode %s document: %w", table, mErr)
		}
		if _, err = tx.Exec(ctx, `INSERT INTO `+table+` (doc) VALUES ($1::jsonb)`, string(raw)); err != nil {
			return res, fmt.Errorf("failed to seed %s: %w", table, err)
		}
		res.Inserted++
	}
	return res, nil
}
