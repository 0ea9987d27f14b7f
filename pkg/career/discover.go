package career

import (
	"math"
	"sort"

	"github.com/rahul370139/train-backend/pkg/nlp"
	"github.com/rahul370139/train-backend/pkg/taxonomy"
)

// Scoring weights. Skill evidence outweighs interest evidence; they sum to 1.
const (
	WeightSkill    = 0.6
	WeightInterest = 0.4
)

// Discover scores every taxonomy career against the selection and returns the
// top candidates sorted by non-increasing score. Equal scores fall back to the
// higher skill match, then to taxonomy order. Empty selections return the
// most in-demand careers instead of an error.
func (s *Service) Discover(selectedInterests, selectedSkills []string, profile *Profile) DiscoverResult {
	skills := nlp.CanonicalSet(selectedSkills)
	interests := make(map[string]struct{}, len(selectedInterests))
	for _, it := range selectedInterests {
		if n := nlp.Normalize(it); n != "" {
			interests[n] = struct{}{}
		}
	}

	var candidates []Candidate
	if len(skills) == 0 && len(interests) == 0 {
		candidates = popularCandidates()
	} else {
		candidates = scoreCandidates(skills, interests)
	}
	if len(candidates) > maxCandidateCareers {
		candidates = candidates[:maxCandidateCareers]
	}

	return DiscoverResult{
		RecommendedCareers: candidates,
		Insights:           buildInsights(selectedInterests, skills),
		SkillAnalysis:      analyzeSkills(skills, profile),
	}
}

// MatchScore scores a single career against a selection with the discovery
// weights. It returns the combined score and the skill fraction (0..1).
func MatchScore(c taxonomy.Career, selectedInterests, selectedSkills []string) (score, skillFrac float64) {
	skills := nlp.CanonicalSet(selectedSkills)
	interests := make(map[string]struct{}, len(selectedInterests))
	for _, it := range selectedInterests {
		if n := nlp.Normalize(it); n != "" {
			interests[n] = struct{}{}
		}
	}
	skillFrac = overlapFraction(c.Skills, skills)
	interestFrac := overlapFraction(c.Interests, interests)
	return round3(WeightSkill*skillFrac + WeightInterest*interestFrac), skillFrac
}

func scoreCandidates(skills, interests map[string]struct{}) []Candidate {
	type scored struct {
		Candidate
		skillFrac float64
	}
	all := taxonomy.Careers()
	out := make([]scored, 0, len(all))
	for _, c := range all {
		skillFrac := overlapFraction(c.Skills, skills)
		interestFrac := overlapFraction(c.Interests, interests)
		score := WeightSkill*skillFrac + WeightInterest*interestFrac
		out = append(out, scored{
			Candidate: Candidate{
				Title:          c.Title,
				Score:          round3(score),
				SkillMatch:     round1(skillFrac * 100),
				SalaryRange:    SalaryRange{Min: c.SalaryLow, Max: c.SalaryHigh},
				GrowthPct:      c.GrowthPct,
				RequiredSkills: c.Skills,
				DayInLife:      c.Blurb,
			},
			skillFrac: skillFrac,
		})
	}
	// Stable sort preserves taxonomy order for exact ties.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].skillFrac > out[j].skillFrac
	})
	candidates := make([]Candidate, len(out))
	for i, s := range out {
		candidates[i] = s.Candidate
	}
	return candidates
}

func popularCandidates() []Candidate {
	popular := popularCareers()
	out := make([]Candidate, len(popular))
	for i, c := range popular {
		out[i] = Candidate{
			Title:          c.Title,
			Score:          round3(c.Demand),
			SkillMatch:     0,
			SalaryRange:    SalaryRange{Min: c.SalaryLow, Max: c.SalaryHigh},
			GrowthPct:      c.GrowthPct,
			RequiredSkills: c.Skills,
			DayInLife:      c.Blurb,
		}
	}
	return out
}

func popularCareers() []taxonomy.Career {
	all := taxonomy.Careers()
	out := make([]taxonomy.Career, len(all))
	copy(out, all)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Demand > out[j].Demand })
	return out
}

func overlapFraction(required []string, have map[string]struct{}) float64 {
	if len(required) == 0 {
		return 0
	}
	matched := 0
	for _, r := range required {
		if _, ok := have[r]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func buildInsights(selectedInterests []string, skills map[string]struct{}) Insights {
	counts := map[string]int{}
	for sk := range skills {
		if info, ok := taxonomy.Skill(sk); ok {
			counts[info.Category]++
		}
	}
	primary := "General"
	best := 0
	for _, cat := range sortedKeys(counts) {
		if counts[cat] > best {
			best = counts[cat]
			primary = cat
		}
	}

	recs := []string{"Focus on building depth in your strongest areas."}
	if primary != "General" {
		recs = append([]string{"Your skills align well with " + primary + " roles."}, recs...)
	}
	if len(selectedInterests) > 0 {
		recs = append(recs, "Explore careers centered on your selected interests.")
	}

	return Insights{
		PrimaryFocus:    primary,
		StrengthAreas:   sortedKeys(counts),
		Recommendations: recs,
		NextSteps: []string{
			"Research the recommended career paths.",
			"Identify skill gaps for your target roles.",
			"Build portfolio projects in your focus area.",
		},
	}
}

func analyzeSkills(skills map[string]struct{}, profile *Profile) SkillAnalysis {
	categories := map[string]int{}
	advanced := 0
	for sk := range skills {
		if info, ok := taxonomy.Skill(sk); ok {
			categories[info.Category]++
			if info.Difficulty == "advanced" {
				advanced++
			}
		}
	}

	level := "entry"
	switch {
	case profile != nil && profile.ExperienceLevel != "":
		level = profile.ExperienceLevel
	case advanced >= 3:
		level = "senior"
	case advanced >= 1:
		level = "mid"
	}

	return SkillAnalysis{
		TotalSkills:     len(skills),
		SkillCategories: sortedKeys(categories),
		ExperienceLevel: level,
	}
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
