//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Application statuses accepted by the job application routes.
const (
	ApplicationApplied      = "applied"
	ApplicationScreening    = "screening"
	ApplicationInterviewing = "interviewing"
	ApplicationOffer        = "offer"
	ApplicationRejected     = "rejected"
	ApplicationAccepted     = "accepted"
	ApplicationWithdrawn    = "withdrawn"
)

// ApplicationContact is a person at the hiring company.
type ApplicationContact struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ApplicationInterview is a scheduled or completed interview round.
type ApplicationInterview struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Interviewer string `json:"interviewer,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
}

// JobApplication tracks one application a user has sent.
type JobApplication struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	Company         string                 `json:"company"`
	Position        string                 `json:"position"`
	Location        string                 `json:"location"`
	ApplicationDate string                 `json:"applicationDate"`
	Status          string                 `json:"status"`
	JobURL          string                 `json:"jobUrl,omitempty"`
	Salary          string                 `json:"salary,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Contacts        []ApplicationContact   `json:"contacts"`
	Interviews      []ApplicationInterview `json:"interviews"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// NewJobApplication is the insert shape for a JobApplication.
type NewJobApplication struct {
	UserID          string                 `json:"userId" validate:"required"`
	Company         string                 `json:"company" validate:"required"`
	Position        string                 `json:"position" validate:"required"`
	Location        string                 `json:"location"`
	ApplicationDate string                 `json:"applicationDate"`
	Status          string                 `json:"status" validate:"omitempty,oneof=applied screening interviewing offer rejected accepted withdrawn"`
	JobURL          string                 `json:"jobUrl,omitempty" validate:"omitempty,url"`
	Salary          string                 `json:"salary,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Contacts        []ApplicationContact   `json:"contacts"`
	Interviews      []ApplicationInterview `json:"interviews"`
}

// Build materializes the insert shape. An empty status defaults to applied.
func (n NewJobApplication) Build(id string, now time.Time) *JobApplication {
	status := n.Status
	if status == "" {
		status = ApplicationApplied
	}
	return &JobApplication{
		ID:              id,
		UserID:          n.UserID,
		Company:         n.Company,
		Position:        n.Position,
		Location:        n.Location,
		ApplicationDate: n.ApplicationDate,
		Status:          status,
		JobURL:          n.JobURL,
		Salary:          n.Salary,
		Notes:           n.Notes,
		Contacts:        nonNil(n.Contacts),
		Interviews:      nonNil(n.Interviews),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// JobApplicationPatch is a partial update; nil fields are preserved.
type JobApplicationPatch struct {
	Company         *string                 `json:"company,omitempty"`
	Position        *string                 `json:"position,omitempty"`
	Location        *string                 `json:"location,omitempty"`
	ApplicationDate *string                 `json:"applicationDate,omitempty"`
	Status          *string                 `json:"status,omitempty" validate:"omitempty,oneof=applied screening interviewing offer rejected accepted withdrawn"`
	JobURL          *string                 `json:"jobUrl,omitempty"`
	Salary          *string                 `json:"salary,omitempty"`
	Notes           *string                 `json:"notes,omitempty"`
	Contacts        *[]ApplicationContact   `json:"contacts,omitempty"`
	Interviews      *[]ApplicationInterview `json:"interviews,omitempty"`
}

// Apply merges the patch into a and refreshes UpdatedAt.
func (pt *JobApplicationPatch) Apply(a *JobApplication, now time.Time) {
	set(&a.Company, pt.Company)
	set(&a.Position, pt.Position)
	set(&a.Location, pt.Location)
	set(&a.ApplicationDate, pt.ApplicationDate)
	set(&a.Status, pt.Status)
	set(&a.JobURL, pt.JobURL)
	set(&a.Salary, pt.Salary)
	set(&a.Notes, pt.Notes)
	set(&a.Contacts, pt.Contacts)
	set(&a.Interviews, pt.Interviews)
	a.UpdatedAt = now
}
