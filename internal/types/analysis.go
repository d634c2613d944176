//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// CareerRecommendation is one suggested career path produced by an analysis.
type CareerRecommendation struct {
	RoadmapID      string      `json:"roadmapId"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	MatchScore     int         `json:"matchScore"`
	MatchedSkills  []string    `json:"matchedSkills"`
	MissingSkills  []string    `json:"missingSkills"`
	SalaryRange    SalaryRange `json:"salaryRange"`
	JobDemand      string      `json:"jobDemand"`
	EstimatedTime  string      `json:"estimatedTime"`
	Recommendation string      `json:"recommendation"`
}

// CareerAnalysisResult is the stored outcome of a profile survey. At most one per user.
type CareerAnalysisResult struct {
	ID                string                 `json:"id"`
	UserID            string                 `json:"userId"`
	Skills            []string               `json:"skills"`
	Interests         []string               `json:"interests"`
	Education         string                 `json:"education"`
	CareerGoals       []string               `json:"careerGoals"`
	WorkStyle         string                 `json:"workStyle"`
	Location          string                 `json:"location"`
	SalaryExpectation string                 `json:"salaryExpectation"`
	Recommendations   []CareerRecommendation `json:"recommendations"`
	AnalyzedAt        time.Time              `json:"analyzedAt"`
}

// CareerSurvey is the body of the analyze route.
type CareerSurvey struct {
	UserID            string   `json:"userId" validate:"required"`
	Skills            []string `json:"skills" validate:"required,min=1"`
	Interests         []string `json:"interests"`
	Education         string   `json:"education"`
	CareerGoals       []string `json:"careerGoals"`
	WorkStyle         string   `json:"workStyle"`
	Location          string   `json:"location"`
	SalaryExpectation string   `json:"salaryExpectation"`
}

// NewCareerAnalysisResult is the insert shape passed to SaveCareerAnalysis.
type NewCareerAnalysisResult struct {
	UserID            string                 `json:"userId"`
	Skills            []string               `json:"skills"`
	Interests         []string               `json:"interests"`
	Education         string                 `json:"education"`
	CareerGoals       []string               `json:"careerGoals"`
	WorkStyle         string                 `json:"workStyle"`
	Location          string                 `json:"location"`
	SalaryExpectation string                 `json:"salaryExpectation"`
	Recommendations   []CareerRecommendation `json:"recommendations"`
}

// Build materializes the insert shape with the given id, stamped AnalyzedAt = now.
func (n NewCareerAnalysisResult) Build(id string, now time.Time) *CareerAnalysisResult {
	return &CareerAnalysisResult{
		ID:                id,
		UserID:            n.UserID,
		Skills:            nonNil(n.Skills),
		Interests:         nonNil(n.Interests),
		Education:         n.Education,
		CareerGoals:       nonNil(n.CareerGoals),
		WorkStyle:         n.WorkStyle,
		Location:          n.Location,
		SalaryExpectation: n.SalaryExpectation,
		Recommendations:   nonNil(n.Recommendations),
		AnalyzedAt:        now,
	}
}
