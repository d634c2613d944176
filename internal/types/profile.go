//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ProfileExperience is one position on a LinkedIn-style profile.
type ProfileExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProfileRecommendation is a written endorsement on a profile.
type ProfileRecommendation struct {
	Author       string `json:"author"`
	Relationship string `json:"relationship,omitempty"`
	Text         string `json:"text"`
}

// LinkedInProfile is the user's professional profile. Looked up by UserID; one per user by convention.
type LinkedInProfile struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"userId"`
	Headline        string                  `json:"headline"`
	Summary         string                  `json:"summary"`
	Experience      []ProfileExperience     `json:"experience"`
	Skills          []string                `json:"skills"`
	Recommendations []ProfileRecommendation `json:"recommendations"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// NewLinkedInProfile is the insert shape for a LinkedInProfile.
type NewLinkedInProfile struct {
	UserID          string                  `json:"userId" validate:"required"`
	Headline        string                  `json:"headline"`
	Summary         string                  `json:"summary"`
	Experience      []ProfileExperience     `json:"experience"`
	Skills          []string                `json:"skills"`
	Recommendations []ProfileRecommendation `json:"recommendations"`
}

// Build materializes the insert shape with the given id and creation time.
func (n NewLinkedInProfile) Build(id string, now time.Time) *LinkedInProfile {
	return &LinkedInProfile{
		ID:              id,
		UserID:          n.UserID,
		Headline:        n.Headline,
		Summary:         n.Summary,
		Experience:      nonNil(n.Experience),
		Skills:          nonNil(n.Skills),
		Recommendations: nonNil(n.Recommendations),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// LinkedInProfilePatch is a partial update; nil fields are preserved.
type LinkedInProfilePatch struct {
	UserID          *string                  `json:"userId,omitempty"`
	Headline        *string                  `json:"headline,omitempty"`
	Summary         *string                  `json:"summary,omitempty"`
	Experience      *[]ProfileExperience     `json:"experience,omitempty"`
	Skills          *[]string                `json:"skills,omitempty"`
	Recommendations *[]ProfileRecommendation `json:"recommendations,omitempty"`
}

// Apply merges the patch into p and refreshes UpdatedAt.
func (pt *LinkedInProfilePatch) Apply(p *LinkedInProfile, now time.Time) {
	set(&p.UserID, pt.UserID)
	set(&p.Headline, pt.Headline)
	set(&p.Summary, pt.Summary)
	set(&p.Experience, pt.Experience)
	set(&p.Skills, pt.Skills)
	set(&p.Recommendations, pt.Recommendations)
	p.UpdatedAt = now
}

// set overwrites dst when the patch field is present.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// nonNil keeps empty collections serialized as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
