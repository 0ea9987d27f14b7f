package career

import (
	"github.com/rahul370139/train-backend/pkg/nlp"
	"github.com/rahul370139/train-backend/pkg/taxonomy"
)

// resolveThreshold is the minimum discovery score a career needs before a
// free-text role the taxonomy does not name resolves to it.
const resolveThreshold = 0.15

// ResolveRole maps a free-text target role onto a taxonomy career. Exact and
// whole-word title matches win; failing those, the user's skills and interests
// are scored against every career and the best match above the threshold is
// taken. The boolean reports whether any career could be resolved.
func (s *Service) ResolveRole(target string, selectedInterests, selectedSkills []string) (taxonomy.Career, bool) {
	if norm := nlp.Normalize(target); norm != "" {
		if c, ok := taxonomy.CareerByTitle(target); ok {
			return c, true
		}
		for _, c := range taxonomy.Careers() {
			title := nlp.Normalize(c.Title)
			if nlp.ContainsPhrase(title, norm) || nlp.ContainsPhrase(norm, title) {
				return c, true
			}
		}
	}
	if len(selectedInterests) == 0 && len(selectedSkills) == 0 {
		return taxonomy.Career{}, false
	}
	res := s.Discover(selectedInterests, selectedSkills, nil)
	if len(res.RecommendedCareers) == 0 {
		return taxonomy.Career{}, false
	}
	top := res.RecommendedCareers[0]
	if top.Score < resolveThreshold {
		return taxonomy.Career{}, false
	}
	c, ok := taxonomy.CareerByTitle(top.Title)
	return c, ok
}
