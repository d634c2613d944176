package db

import (
	"context"

	"github.com/jonathan/careerpath/internal/catalog"
	"github.com/jonathan/careerpath/internal/types"
)

// Catalog collections. Reads against a collection with no documents are answered from the
// built-in catalog.

func (db *DB) GetRoadmaps(ctx context.Context) ([]types.CareerRoadmap, error) {
	return catalogList(ctx, db, tableRoadmaps, nil, nil, catalog.Roadmaps)
}

func (db *DB) GetRoadmap(ctx context.Context, id string) (*types.CareerRoadmap, error) {
	return catalogOne(ctx, db, tableRoadmaps, id, func() *types.CareerRoadmap {
		return catalog.FindRoadmap(catalog.Roadmaps(), id)
	})
}

// GetRoadmapsByCategory matches category ignoring case, so filtering happens in process.
func (db *DB) GetRoadmapsByCategory(ctx context.Context, category string) ([]types.CareerRoadmap, error) {
	return catalogList(ctx, db, tableRoadmaps, nil, func(r []types.CareerRoadmap) []types.CareerRoadmap {
		return catalog.RoadmapsByCategory(r, category)
	}, catalog.Roadmaps)
}

func (db *DB) GetInterviewCategories(ctx context.Context) ([]types.InterviewCategory, error) {
	return catalogList(ctx, db, tableCategories, nil, nil, catalog.InterviewCategories)
}

func (db *DB) GetInterviewQuestions(ctx context.Context, categoryID string) ([]types.InterviewQuestion, error) {
	var f filter
	if categoryID != "" {
		f = filter{"categoryId": categoryID}
	}
	return catalogList(ctx, db, tableQuestions, f, func(q []types.InterviewQuestion) []types.InterviewQuestion {
		return catalog.QuestionsByCategory(q, categoryID)
	}, catalog.InterviewQuestions)
}

func (db *DB) GetInterviewQuestion(ctx context.Context, id string) (*types.InterviewQuestion, error) {
	return catalogOne(ctx, db, tableQuestions, id, func() *types.InterviewQuestion {
		return catalog.FindQuestion(catalog.InterviewQuestions(), id)
	})
}

func (db *DB) GetInterviewTips(ctx context.Context, category string) ([]types.InterviewTip, error) {
	return catalogList(ctx, db, tableTips, nil, func(t []types.InterviewTip) []types.InterviewTip {
		return catalog.TipsByCategory(t, category)
	}, catalog.InterviewTips)
}

func (db *DB) GetMentors(ctx context.Context) ([]types.Mentor, error) {
	return catalogList(ctx, db, tableMentors, nil, nil, catalog.Mentors)
}

func (db *DB) GetMentor(ctx context.Context, id string) (*types.Mentor, error) {
	return catalogOne(ctx, db, tableMentors, id, func() *types.Mentor {
		return catalog.FindMentor(catalog.Mentors(), id)
	})
}

// GetSalaryInsights matches role and location by substring, so filtering happens in process.
func (db *DB) GetSalaryInsights(ctx context.Context, f types.SalaryFilter) ([]types.SalaryInsight, error) {
	return catalogList(ctx, db, tableSalaries, nil, func(s []types.SalaryInsight) []types.SalaryInsight {
		return catalog.FilterSalaries(s, f)
	}, catalog.SalaryInsights)
}

func (db *DB) GetNegotiationTips(ctx context.Context) ([]types.NegotiationTip, error) {
	return catalogList(ctx, db, tableNegotiation, nil, nil, catalog.NegotiationTips)
}
