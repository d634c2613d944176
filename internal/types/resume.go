//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// PersonalInfo is the contact header of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ResumeExperience is one position on a resume.
type ResumeExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is one degree or program.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Certification is a credential with issuer.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Resume is a user-built resume. A user may own several.
type Resume struct {
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	TemplateID     string             `json:"templateId"`
	PersonalInfo   PersonalInfo       `json:"personalInfo"`
	Summary        string             `json:"summary"`
	Experience     []ResumeExperience `json:"experience"`
	Education      []Education        `json:"education"`
	Skills         []string           `json:"skills"`
	Projects       []Project          `json:"projects"`
	Certifications []Certification    `json:"certifications"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// NewResume is the insert shape for a Resume.
type NewResume struct {
	UserID         string             `json:"userId" validate:"required"`
	TemplateID     string             `json:"templateId" validate:"required"`
	PersonalInfo   PersonalInfo       `json:"personalInfo"`
	Summary        string             `json:"summary"`
	Experience     []ResumeExperience `json:"experience"`
	Education      []Education        `json:"education"`
	Skills         []string           `json:"skills"`
	Projects       []Project          `json:"projects"`
	Certifications []Certification    `json:"certifications"`
}

// Build materializes the insert shape with the given id and creation time.
func (n NewResume) Build(id string, now time.Time) *Resume {
	return &Resume{
		ID:             id,
		UserID:         n.UserID,
		TemplateID:     n.TemplateID,
		PersonalInfo:   n.PersonalInfo,
		Summary:        n.Summary,
		Experience:     nonNil(n.Experience),
		Education:      nonNil(n.Education),
		Skills:         nonNil(n.Skills),
		Projects:       nonNil(n.Projects),
		Certifications: nonNil(n.Certifications),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ResumePatch is a partial update; nil fields are preserved.
type ResumePatch struct {
	UserID         *string             `json:"userId,omitempty"`
	TemplateID     *string             `json:"templateId,omitempty"`
	PersonalInfo   *PersonalInfo       `json:"personalInfo,omitempty"`
	Summary        *string             `json:"summary,omitempty"`
	Experience     *[]ResumeExperience `json:"experience,omitempty"`
	Education      *[]Education        `json:"education,omitempty"`
	Skills         *[]string           `json:"skills,omitempty"`
	Projects       *[]Project          `json:"projects,omitempty"`
	Certifications *[]Certification    `json:"certifications,omitempty"`
}

// Apply merges the patch into r and refreshes UpdatedAt.
func (pt *ResumePatch) Apply(r *Resume, now time.Time) {
	set(&r.UserID, pt.UserID)
	set(&r.TemplateID, pt.TemplateID)
	set(&r.PersonalInfo, pt.PersonalInfo)
	set(&r.Summary, pt.Summary)
	set(&r.Experience, pt.Experience)
	set(&r.Education, pt.Education)
	set(&r.Skills, pt.Skills)
	set(&r.Projects, pt.Projects)
	set(&r.Certifications, pt.Certifications)
	r.UpdatedAt = now
}
