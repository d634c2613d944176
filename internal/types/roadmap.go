//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SalaryRange is an annual pay band.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// LearningResource is a course, book or tutorial attached to a milestone.
type LearningResource struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Provider string `json:"provider,omitempty"`
	IsFree   bool   `json:"isFree"`
}

// Milestone is one ordered step of a roadmap. IsCompleted is always false on catalog
// data; per-user completion lives in UserRoadmapProgress.
type Milestone struct {
	ID           string             `json:"id"`
	Order        int                `json:"order"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Duration     int                `json:"duration"`
	DurationUnit string             `json:"durationUnit"`
	Skills       []string           `json:"skills"`
	Tasks        []string           `json:"tasks"`
	Resources    []LearningResource `json:"resources"`
	IsCompleted  bool               `json:"isCompleted"`
}

// CareerRoadmap is read-only catalog data.
type CareerRoadmap struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Category          string      `json:"category"`
	Difficulty        string      `json:"difficulty"`
	EstimatedDuration int         `json:"estimatedDuration"`
	DurationUnit      string      `json:"durationUnit"`
	RequiredSkills    []string    `json:"requiredSkills"`
	SalaryRange       SalaryRange `json:"salaryRange"`
	JobDemand         string      `json:"jobDemand"`
	Milestones        []Milestone `json:"milestones"`
}

// UserRoadmapProgress is the per-user completion state of one roadmap.
// CompletedMilestones is a set of milestone ids; order is irrelevant.
type UserRoadmapProgress struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	RoadmapID           string    `json:"roadmapId"`
	StartedAt           time.Time `json:"startedAt"`
	CompletedMilestones []string  `json:"completedMilestones"`
	CurrentMilestone    string    `json:"currentMilestone,omitempty"`
	OverallProgress     float64   `json:"overallProgress"`
}

// NewUserRoadmapProgress is the insert shape for a progress record.
type NewUserRoadmapProgress struct {
	UserID              string    `json:"userId"`
	RoadmapID           string    `json:"roadmapId"`
	StartedAt           time.Time `json:"startedAt"`
	CompletedMilestones []string  `json:"completedMilestones"`
	CurrentMilestone    string    `json:"currentMilestone,omitempty"`
	OverallProgress     float64   `json:"overallProgress"`
}

// Build materializes the insert shape with the given id. A zero StartedAt becomes now.
func (n NewUserRoadmapProgress) Build(id string, now time.Time) *UserRoadmapProgress {
	started := n.StartedAt
	if started.IsZero() {
		started = now
	}
	return &UserRoadmapProgress{
		ID:                  id,
		UserID:              n.UserID,
		RoadmapID:           n.RoadmapID,
		StartedAt:           started,
		CompletedMilestones: nonNil(n.CompletedMilestones),
		CurrentMilestone:    n.CurrentMilestone,
		OverallProgress:     n.OverallProgress,
	}
}

// UserRoadmapProgressPatch is a partial update; nil fields are preserved.
// A CurrentMilestone pointing at "" clears it.
type UserRoadmapProgressPatch struct {
	CompletedMilestones *[]string `json:"completedMilestones,omitempty"`
	CurrentMilestone    *string   `json:"currentMilestone,omitempty"`
	OverallProgress     *float64  `json:"overallProgress,omitempty"`
}

// Apply merges the patch into p.
func (pt *UserRoadmapProgressPatch) Apply(p *UserRoadmapProgress, _ time.Time) {
	set(&p.CompletedMilestones, pt.CompletedMilestones)
	set(&p.CurrentMilestone, pt.CurrentMilestone)
	set(&p.OverallProgress, pt.OverallProgress)
}

// StartRoadmapRequest is the body of the start and complete-milestone routes.
type StartRoadmapRequest struct {
	UserID string `json:"userId" validate:"required"`
}
