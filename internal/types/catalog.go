//nolint:revive // types is a standard Go package name pattern
package types

// InterviewCategory groups interview questions.
type InterviewCategory struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	QuestionCount int    `json:"questionCount"`
}

// InterviewQuestion is a practice question with a model answer.
type InterviewQuestion struct {
	ID           string   `json:"id"`
	CategoryID   string   `json:"categoryId"`
	Question     string   `json:"question"`
	Difficulty   string   `json:"difficulty"`
	SampleAnswer string   `json:"sampleAnswer"`
	Tips         []string `json:"tips"`
	FollowUps    []string `json:"followUps"`
}

// InterviewTip is general interview advice.
type InterviewTip struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

// Mentor is a bookable career mentor.
type Mentor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Expertise       []string `json:"expertise"`
	YearsExperience int      `json:"yearsExperience"`
	Bio             string   `json:"bio"`
	Availability    string   `json:"availability"`
	Rating          float64  `json:"rating"`
	SessionRate     int      `json:"sessionRate"`
	ImageURL        string   `json:"imageUrl"`
	LinkedInURL     string   `json:"linkedinUrl"`
}

// SalaryInsight is compensation data for a role in a location.
type SalaryInsight struct {
	ID              string  `json:"id"`
	Role            string  `json:"role"`
	Location        string  `json:"location"`
	ExperienceLevel string  `json:"experienceLevel"`
	MinSalary       int     `json:"minSalary"`
	MaxSalary       int     `json:"maxSalary"`
	MedianSalary    int     `json:"medianSalary"`
	Currency        string  `json:"currency"`
	Industry        string  `json:"industry"`
	GrowthRate      float64 `json:"growthRate"`
	LastUpdated     string  `json:"lastUpdated"`
}

// NegotiationTip is salary negotiation advice.
type NegotiationTip struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Example  string `json:"example,omitempty"`
}

// SalaryFilter narrows salary insights by case-insensitive substring; empty fields match anything.
type SalaryFilter struct {
	Role     string
	Location string
}
