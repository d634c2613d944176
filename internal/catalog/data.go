package catalog

import "github.com/jonathan/careerpath/internal/types"

// Data is a complete catalog, the shape of `careerpath catalog export` and of seed files.
type Data struct {
	Roadmaps            []types.CareerRoadmap     `json:"roadmaps"`
	InterviewCategories []types.InterviewCategory `json:"interview_categories"`
	InterviewQuestions  []types.InterviewQuestion `json:"interview_questions"`
	InterviewTips       []types.InterviewTip      `json:"interview_tips"`
	Mentors             []types.Mentor            `json:"mentors"`
	SalaryInsights      []types.SalaryInsight     `json:"salary_insights"`
	NegotiationTips     []types.NegotiationTip    `json:"negotiation_tips"`
}

// Default returns the built-in catalog.
func Default() Data {
	return Data{
		Roadmaps:            Roadmaps(),
		InterviewCategories: InterviewCategories(),
		InterviewQuestions:  InterviewQuestions(),
		InterviewTips:       InterviewTips(),
		Mentors:             Mentors(),
		SalaryInsights:      SalaryInsights(),
		NegotiationTips:     NegotiationTips(),
	}
}

// Counts names each collection of d with its record count.
func (d Data) Counts() map[string]int {
	return map[string]int{
		"roadmaps":             len(d.Roadmaps),
		"interview_categories": len(d.InterviewCategories),
		"interview_questions":  len(d.InterviewQuestions),
		"interview_tips":       len(d.InterviewTips),
		"mentors":              len(d.Mentors),
		"salary_insights":      len(d.SalaryInsights),
		"negotiation_tips":     len(d.NegotiationTips),
	}
}
