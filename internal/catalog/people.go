package catalog

import "github.com/jonathan/careerpath/internal/types"

// Mentors returns the four built-in mentors.
func Mentors() []types.Mentor {
	return []types.Mentor{
		{
			ID:              "mentor-1",
			Name:            "Sarah Chen",
			Title:           "Senior Software Engineer",
			Company:         "Google",
			Expertise:       []string{"Web Development", "System Design", "Career Growth"},
			YearsExperience: 10,
			Bio:             "Full-stack engineer who has mentored over 50 developers into their first engineering roles.",
			Availability:    "Weekends",
			Rating:          4.9,
			SessionRate:     120,
			ImageURL:        "https://images.example.com/mentors/sarah-chen.jpg",
			LinkedInURL:     "https://www.linkedin.com/in/sarah-chen",
		},
		{
			ID:              "mentor-2",
			Name:            "Marcus Johnson",
			Title:           "Data Science Manager",
			Company:         "Netflix",
			Expertise:       []string{"Data Science", "Machine Learning", "Leadership"},
			YearsExperience: 12,
			Bio:             "Leads a recommendation science team and helps analysts transition into data science.",
			Availability:    "Weekday evenings",
			Rating:          4.8,
			SessionRate:     150,
			ImageURL:        "https://images.example.com/mentors/marcus-johnson.jpg",
			LinkedInURL:     "https://www.linkedin.com/in/marcus-johnson",
		},
		{
			ID:              "mentor-3",
			Name:            "Priya Patel",
			Title:           "Principal Product Designer",
			Company:         "Airbnb",
			Expertise:       []string{"UI/UX Design", "User Research", "Portfolio Reviews"},
			YearsExperience: 9,
			Bio:             "Designer focused on research-driven product design and portfolio coaching.",
			Availability:    "Flexible",
			Rating:          4.9,
			SessionRate:     100,
			ImageURL:        "https://images.example.com/mentors/priya-patel.jpg",
			LinkedInURL:     "https://www.linkedin.com/in/priya-patel",
		},
		{
			ID:              "mentor-4",
			Name:            "David Kim",
			Title:           "Cloud Security Architect",
			Company:         "Microsoft",
			Expertise:       []string{"Cloud Architecture", "Cybersecurity", "DevOps"},
			YearsExperience: 15,
			Bio:             "Architect who has designed secure cloud platforms for enterprises and startups.",
			Availability:    "Weekday mornings",
			Rating:          4.7,
			SessionRate:     175,
			ImageURL:        "https://images.example.com/mentors/david-kim.jpg",
			LinkedInURL:     "https://www.linkedin.com/in/david-kim",
		},
	}
}

// SalaryInsights returns compensation data by role and location.
func SalaryInsights() []types.SalaryInsight {
	return []types.SalaryInsight{
		{ID: "salary-1", Role: "Software Engineer", Location: "San Francisco, CA", ExperienceLevel: "Mid", MinSalary: 130000, MaxSalary: 190000, MedianSalary: 160000, Currency: "USD", Industry: "Technology", GrowthRate: 5.2, LastUpdated: "2024-01-15"},
		{ID: "salary-2", Role: "Software Engineer", Location: "Austin, TX", ExperienceLevel: "Mid", MinSalary: 100000, MaxSalary: 150000, MedianSalary: 125000, Currency: "USD", Industry: "Technology", GrowthRate: 6.1, LastUpdated: "2024-01-15"},
		{ID: "salary-3", Role: "Data Scientist", Location: "New York, NY", ExperienceLevel: "Mid", MinSalary: 115000, MaxSalary: 170000, MedianSalary: 140000, Currency: "USD", Industry: "Finance", GrowthRate: 7.4, LastUpdated: "2024-01-15"},
		{ID: "salary-4", Role: "UX Designer", Location: "Seattle, WA", ExperienceLevel: "Mid", MinSalary: 95000, MaxSalary: 140000, MedianSalary: 118000, Currency: "USD", Industry: "Technology", GrowthRate: 4.3, LastUpdated: "2024-01-15"},
		{ID: "salary-5", Role: "DevOps Engineer", Location: "Remote", ExperienceLevel: "Senior", MinSalary: 130000, MaxSalary: 185000, MedianSalary: 155000, Currency: "USD", Industry: "Technology", GrowthRate: 6.8, LastUpdated: "2024-01-15"},
		{ID: "salary-6", Role: "Product Manager", Location: "San Francisco, CA", ExperienceLevel: "Senior", MinSalary: 150000, MaxSalary: 220000, MedianSalary: 185000, Currency: "USD", Industry: "Technology", GrowthRate: 5.0, LastUpdated: "2024-01-15"},
	}
}

// NegotiationTips returns salary negotiation advice.
func NegotiationTips() []types.NegotiationTip {
	return []types.NegotiationTip{
		{ID: "neg-1", Category: "research", Title: "Know your market value", Content: "Collect salary data for your role, level and location from multiple sources before any conversation.", Example: "Based on my research, similar roles in Austin range from $110k to $140k."},
		{ID: "neg-2", Category: "strategy", Title: "Let them make the first offer", Content: "Deflect early salary questions until you understand the full scope of the role.", Example: "I'd like to learn more about the responsibilities before discussing numbers."},
		{ID: "neg-3", Category: "strategy", Title: "Negotiate the whole package", Content: "Consider equity, bonus, vacation, remote work and learning budget, not only base salary."},
		{ID: "neg-4", Category: "communication", Title: "Express enthusiasm", Content: "Make clear you want the job while asking for more; negotiation is collaborative.", Example: "I'm excited about this role. Is there flexibility on the base salary?"},
	}
}
