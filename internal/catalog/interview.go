package catalog

import "github.com/jonathan/careerpath/internal/types"

// InterviewCategories returns the interview question categories.
func InterviewCategories() []types.InterviewCategory {
	return []types.InterviewCategory{
		{ID: "behavioral", Name: "Behavioral", Description: "Questions about past experience, teamwork and conflict.", Icon: "users", QuestionCount: 2},
		{ID: "technical", Name: "Technical", Description: "Coding, architecture and problem-solving questions.", Icon: "code", QuestionCount: 2},
		{ID: "system-design", Name: "System Design", Description: "Designing scalable, reliable systems.", Icon: "server", QuestionCount: 1},
		{ID: "leadership", Name: "Leadership", Description: "Ownership, influence and decision making.", Icon: "flag", QuestionCount: 1},
	}
}

// InterviewQuestions returns every practice question.
func InterviewQuestions() []types.InterviewQuestion {
	return []types.InterviewQuestion{
		{
			ID:           "q-behavioral-1",
			CategoryID:   "behavioral",
			Question:     "Tell me about a time you disagreed with a teammate.",
			Difficulty:   "Medium",
			SampleAnswer: "On a migration project a teammate wanted a big-bang cutover. I proposed a phased rollout, we compared risks with data, and agreed on a pilot that shipped without downtime.",
			Tips:         []string{"Use the STAR method", "Focus on the resolution, not the conflict"},
			FollowUps:    []string{"What would you do differently?", "How did the relationship evolve?"},
		},
		{
			ID:           "q-behavioral-2",
			CategoryID:   "behavioral",
			Question:     "Describe a project that failed and what you learned.",
			Difficulty:   "Medium",
			SampleAnswer: "A feature I led missed adoption targets because we skipped user interviews. I now validate problems with at least five users before committing to a build.",
			Tips:         []string{"Own the failure", "Show a concrete change in behavior"},
			FollowUps:    []string{"How did you communicate the failure?"},
		},
		{
			ID:           "q-technical-1",
			CategoryID:   "technical",
			Question:     "How would you find duplicates in a very large list of records?",
			Difficulty:   "Medium",
			SampleAnswer: "Hash each record and track seen hashes in a set; if memory is constrained, partition by hash prefix to disk and deduplicate each partition independently.",
			Tips:         []string{"State time and space complexity", "Discuss trade-offs at scale"},
			FollowUps:    []string{"What if the list does not fit in memory?"},
		},
		{
			ID:           "q-technical-2",
			CategoryID:   "technical",
			Question:     "Explain the difference between a process and a thread.",
			Difficulty:   "Easy",
			SampleAnswer: "A process has its own address space; threads share the address space of their process, which makes communication cheap but requires synchronization.",
			Tips:         []string{"Give a concrete example", "Mention context switching costs"},
			FollowUps:    []string{"When would you prefer processes over threads?"},
		},
		{
			ID:           "q-system-design-1",
			CategoryID:   "system-design",
			Question:     "Design a URL shortener.",
			Difficulty:   "Hard",
			SampleAnswer: "Generate base62 ids from a counter or hash, store mappings in a key-value store, cache hot keys, and redirect with 301s. Discuss analytics, expiry and abuse prevention.",
			Tips:         []string{"Clarify requirements first", "Estimate traffic and storage"},
			FollowUps:    []string{"How do you handle custom aliases?", "How would you scale writes?"},
		},
		{
			ID:           "q-leadership-1",
			CategoryID:   "leadership",
			Question:     "How do you make decisions with incomplete information?",
			Difficulty:   "Medium",
			SampleAnswer: "I separate reversible from irreversible decisions, move fast on the former, and for the latter gather the minimum data needed, set a deadline and document assumptions.",
			Tips:         []string{"Show a framework", "Use a real example"},
			FollowUps:    []string{"Tell me about a decision you reversed."},
		},
	}
}

// InterviewTips returns general interview advice.
func InterviewTips() []types.InterviewTip {
	return []types.InterviewTip{
		{ID: "tip-1", Category: "preparation", Title: "Research the company", Content: "Read the company's product pages, recent news and engineering blog before the interview.", Priority: "high"},
		{ID: "tip-2", Category: "preparation", Title: "Prepare your stories", Content: "Have five STAR stories ready that cover leadership, conflict, failure, success and learning.", Priority: "high"},
		{ID: "tip-3", Category: "during", Title: "Think out loud", Content: "Narrate your reasoning during technical questions so the interviewer can follow and help.", Priority: "medium"},
		{ID: "tip-4", Category: "during", Title: "Ask clarifying questions", Content: "Confirm requirements and constraints before answering open-ended questions.", Priority: "medium"},
		{ID: "tip-5", Category: "follow-up", Title: "Send a thank-you note", Content: "Email a short thank-you within 24 hours that references something specific from the conversation.", Priority: "low"},
	}
}
