package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

// Scoring weights. A full skill match and strong interest overlap together reach 100.
const (
	skillWeight    = 70.0
	interestWeight = 30.0
	// interestSaturation is the number of interest hits that earns the full interest weight.
	interestSaturation = 2.0
	// MaxRecommendations caps how many roadmaps an analysis returns.
	MaxRecommendations = 5
)

// Recommend scores every roadmap against the survey and returns the best matches,
// highest score first with ties broken by title.
func Recommend(survey types.CareerSurvey, roadmaps []types.CareerRoadmap) []types.CareerRecommendation {
	skills := make([]string, 0, len(survey.Skills))
	for _, s := range survey.Skills {
		if n := normalizeSkill(s); n != "" {
			skills = append(skills, n)
		}
	}
	skillTokens := tokenSet(skills...)
	interestTokens := tokenSet(append(append([]string{}, survey.Interests...), survey.CareerGoals...)...)

	recs := make([]types.CareerRecommendation, 0, len(roadmaps))
	for i := range roadmaps {
		recs = append(recs, score(&roadmaps[i], skills, skillTokens, interestTokens))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		return recs[i].Title < recs[j].Title
	})

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

func score(r *types.CareerRoadmap, skills []string, skillTokens, interestTokens map[string]bool) types.CareerRecommendation {
	matched, missing := splitSkills(r.RequiredSkills, skills, skillTokens)

	skillScore := 0.0
	if len(r.RequiredSkills) > 0 {
		skillScore = float64(len(matched)) / float64(len(r.RequiredSkills))
	}

	roadmapText := []string{r.Title, r.Category, r.Description}
	roadmapText = append(roadmapText, r.RequiredSkills...)
	for _, m := range r.Milestones {
		roadmapText = append(roadmapText, m.Skills...)
	}
	hits := 0
	for tok := range tokenSet(roadmapText...) {
		if interestTokens[tok] {
			hits++
		}
	}
	interestScore := math.Min(1, float64(hits)/interestSaturation)

	total := int(math.Round(skillWeight*skillScore + interestWeight*interestScore))
	total = max(0, min(100, total))

	return types.CareerRecommendation{
		RoadmapID:      r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		MatchScore:     total,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		SalaryRange:    r.SalaryRange,
		JobDemand:      r.JobDemand,
		EstimatedTime:  fmt.Sprintf("%d %s", r.EstimatedDuration, r.DurationUnit),
		Recommendation: explain(r, matched, missing),
	}
}

// splitSkills partitions required into skills the user has and skills they lack.
// A required skill matches on its canonical name or when every one of its words appears
// among the user's skill words.
func splitSkills(required, skills []string, skillTokens map[string]bool) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	for _, req := range required {
		canonical := normalizeSkill(req)
		if hasSkill(canonical, skills, skillTokens) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}

func hasSkill(canonical string, skills []string, skillTokens map[string]bool) bool {
	for _, s := range skills {
		if s == canonical {
			return true
		}
	}
	words := tokens(canonical)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !skillTokens[w] {
			return false
		}
	}
	return true
}

func explain(r *types.CareerRoadmap, matched, missing []string) string {
	switch {
	case len(missing) == 0:
		return fmt.Sprintf("You already have every core skill for %s. Start with the advanced milestones.", r.Title)
	case len(matched) == 0:
		return fmt.Sprintf("%s is a fresh start. Begin with %s.", r.Title, strings.Join(firstN(missing, 2), " and "))
	default:
		return fmt.Sprintf("Your %s experience transfers to %s. Focus next on %s.",
			strings.Join(firstN(matched, 2), " and "), r.Title, strings.Join(firstN(missing, 2), " and "))
	}
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
