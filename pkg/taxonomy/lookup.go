package taxonomy

import (
	"strings"

	"github.com/rahul370139/train-backend/pkg/nlp"
)

func normalizeTitle(title string) string { return nlp.Normalize(title) }

// ContainsFold reports whether substr occurs in s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
