package career

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rahul370139/train-backend/pkg/nlp"
	"github.com/rahul370139/train-backend/pkg/taxonomy"
)

// Service answers interest/skill suggestion and career discovery requests.
// It is a pure function of its inputs and the static taxonomy, so the same
// request always produces the same response.
type Service struct{}

func NewService() *Service { return &Service{} }

const (
	// pathOverlapThreshold is the minimum fraction of a career's required
	// skills that selected+suggested skills must cover before the career is
	// offered as a candidate path.
	pathOverlapThreshold = 1.0 / 3.0

	maxSuggestedSkills  = 10
	maxPerCategory      = 3
	maxCareerPaths      = 5
	maxCandidateCareers = 5
)

// InitialSuggestions proposes interests to start the discovery flow with.
// A declared role narrows the list; otherwise every known interest is offered.
func (s *Service) InitialSuggestions(profile *Profile) InitialSuggestions {
	var suggested []string
	if profile != nil && profile.CurrentRole != "" {
		suggested = taxonomy.RoleInterests(profile.CurrentRole)
	}
	if len(suggested) == 0 {
		if profile != nil {
			suggested = []string{"technology", "design", "data science"}
		} else {
			suggested = taxonomy.InterestNames()
		}
	}

	options := make(map[string]InterestOption, len(suggested))
	for _, name := range suggested {
		info, ok := taxonomy.Interest(name)
		if !ok {
			continue
		}
		options[name] = InterestOption{
			Skills:      info.Skills,
			CareerPaths: info.Careers,
			Description: info.Description,
		}
	}
	return InitialSuggestions{
		SuggestedInterests: suggested,
		InitialSkills:      options,
		Message:            "Select an interest to get started, or choose from our suggestions below.",
	}
}

// SuggestSkills returns skills adjacent to the current selection, grouped by
// category, plus the career paths the combined skill set already points at.
// Skills the user has selected are never suggested back.
func (s *Service) SuggestSkills(selectedInterests, selectedSkills []string, profile *Profile) Suggestions {
	selected := nlp.CanonicalSet(selectedSkills)

	if len(selectedInterests) == 0 && len(selectedSkills) == 0 {
		return s.defaultSuggestions()
	}

	// Collect related skills in input order so the response is stable.
	var suggested []string
	seen := map[string]struct{}{}
	categories := map[string][]string{}
	add := func(skill, category string) {
		if _, already := selected[skill]; already {
			return
		}
		if _, dup := seen[skill]; dup {
			return
		}
		seen[skill] = struct{}{}
		suggested = append(suggested, skill)
		if category != "" {
			categories[category] = append(categories[category], skill)
		}
	}

	for _, raw := range selectedSkills {
		info, ok := taxonomy.Skill(nlp.CanonicalSkill(raw))
		if !ok {
			continue
		}
		for _, rel := range info.Related {
			add(rel, info.Category)
		}
	}
	for _, raw := range selectedInterests {
		info, ok := taxonomy.Interest(nlp.Normalize(raw))
		if !ok {
			continue
		}
		for _, sk := range info.Skills {
			category := ""
			if si, known := taxonomy.Skill(sk); known {
				category = si.Category
			}
			add(sk, category)
		}
	}

	if profile != nil && profile.ExperienceLevel == "entry" {
		suggested = beginnerFirst(suggested)
	}

	combined := make(map[string]struct{}, len(selected)+len(seen))
	for sk := range selected {
		combined[sk] = struct{}{}
	}
	for sk := range seen {
		combined[sk] = struct{}{}
	}

	msg := "Here are skills that would complement your profile."
	if len(selectedSkills) > 0 {
		msg = fmt.Sprintf("Based on your selections (%s), here are skills that would complement your profile.",
			strings.Join(selectedSkills, ", "))
	}

	return Suggestions{
		SuggestedSkills: capped(suggested, maxSuggestedSkills),
		Categorized:     cappedCategories(categories),
		CareerPaths:     careerPathsFor(combined),
		Message:         msg,
	}
}

// defaultSuggestions covers the empty-selection case: starter skills from
// every interest plus the highest-demand career paths.
func (s *Service) defaultSuggestions() Suggestions {
	var suggested []string
	seen := map[string]struct{}{}
	categories := map[string][]string{}
	for _, name := range taxonomy.InterestNames() {
		info, _ := taxonomy.Interest(name)
		for _, sk := range info.Skills {
			if _, dup := seen[sk]; dup {
				continue
			}
			seen[sk] = struct{}{}
			suggested = append(suggested, sk)
			if si, known := taxonomy.Skill(sk); known {
				categories[si.Category] = append(categories[si.Category], sk)
			}
		}
	}

	popular := popularCareers()
	paths := make([]string, 0, maxCareerPaths)
	for i := 0; i < len(popular) && i < maxCareerPaths; i++ {
		paths = append(paths, popular[i].Title)
	}

	return Suggestions{
		SuggestedSkills: capped(suggested, maxSuggestedSkills),
		Categorized:     cappedCategories(categories),
		CareerPaths:     paths,
		Message:         "Pick a few interests or skills and we will tailor suggestions to you.",
	}
}

// careerPathsFor lists careers whose required skills overlap the given set by
// at least the threshold, best overlap first, taxonomy order on ties.
func careerPathsFor(skills map[string]struct{}) []string {
	type scored struct {
		title   string
		overlap float64
	}
	var hits []scored
	for _, c := range taxonomy.Careers() {
		if len(c.Skills) == 0 {
			continue
		}
		matched := 0
		for _, req := range c.Skills {
			if _, ok := skills[req]; ok {
				matched++
			}
		}
		overlap := float64(matched) / float64(len(c.Skills))
		if overlap >= pathOverlapThreshold {
			hits = append(hits, scored{title: c.Title, overlap: overlap})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].overlap > hits[j].overlap })
	out := make([]string, 0, maxCareerPaths)
	for i := 0; i < len(hits) && i < maxCareerPaths; i++ {
		out = append(out, hits[i].title)
	}
	return out
}

func beginnerFirst(skills []string) []string {
	var easy, rest []string
	for _, sk := range skills {
		if info, ok := taxonomy.Skill(sk); ok && info.Difficulty == "beginner" {
			easy = append(easy, sk)
		} else {
			rest = append(rest, sk)
		}
	}
	return append(easy, rest...)
}

func capped(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		items = items[:n]
	}
	return items
}

func cappedCategories(categories map[string][]string) map[string][]string {
	out := make(map[string][]string, len(categories))
	for cat, skills := range categories {
		out[cat] = capped(skills, maxPerCategory)
	}
	return out
}
