// Package catalog holds the built-in read-only seed data: roadmaps, interview content,
// mentors, salary insights and negotiation tips.
//
// Every accessor builds fresh values, so callers may modify what they receive.
package catalog

import (
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

// Collections names each catalog collection with its record count.
func Collections() map[string]int {
	return Default().Counts()
}

// FindRoadmap returns the roadmap with id, or nil.
func FindRoadmap(roadmaps []types.CareerRoadmap, id string) *types.CareerRoadmap {
	for i := range roadmaps {
		if roadmaps[i].ID == id {
			r := roadmaps[i]
			return &r
		}
	}
	return nil
}

// RoadmapsByCategory keeps roadmaps whose category equals category, ignoring case.
func RoadmapsByCategory(roadmaps []types.CareerRoadmap, category string) []types.CareerRoadmap {
	out := make([]types.CareerRoadmap, 0)
	for _, r := range roadmaps {
		if strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out
}

// QuestionsByCategory keeps questions in categoryID. An empty id keeps all.
func QuestionsByCategory(questions []types.InterviewQuestion, categoryID string) []types.InterviewQuestion {
	if categoryID == "" {
		return questions
	}
	out := make([]types.InterviewQuestion, 0)
	for _, q := range questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out
}

// FindQuestion returns the question with id, or nil.
func FindQuestion(questions []types.InterviewQuestion, id string) *types.InterviewQuestion {
	for i := range questions {
		if questions[i].ID == id {
			q := questions[i]
			return &q
		}
	}
	return nil
}

// TipsByCategory keeps tips in category. An empty category keeps all.
func TipsByCategory(tips []types.InterviewTip, category string) []types.InterviewTip {
	if category == "" {
		return tips
	}
	out := make([]types.InterviewTip, 0)
	for _, t := range tips {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// FindMentor returns the mentor with id, or nil.
func FindMentor(mentors []types.Mentor, id string) *types.Mentor {
	for i := range mentors {
		if mentors[i].ID == id {
			m := mentors[i]
			return &m
		}
	}
	return nil
}

// FilterSalaries keeps insights whose role and location contain the filter values, ignoring case.
func FilterSalaries(insights []types.SalaryInsight, f types.SalaryFilter) []types.SalaryInsight {
	role := strings.ToLower(strings.TrimSpace(f.Role))
	location := strings.ToLower(strings.TrimSpace(f.Location))
	if role == "" && location == "" {
		return insights
	}

	out := make([]types.SalaryInsight, 0)
	for _, s := range insights {
		if role != "" && !strings.Contains(strings.ToLower(s.Role), role) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(s.Location), location) {
			continue
		}
		out = append(out, s)
	}
	return out
}
