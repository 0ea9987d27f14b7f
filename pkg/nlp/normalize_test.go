package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "machine learning", Normalize("  Machine-Learning! "))
	assert.Equal(t, "c", Normalize("C++"))
	assert.Equal(t, "", Normalize("  !!! "))
}

func TestCanonicalSkill(t *testing.T) {
	assert.Equal(t, "javascript", CanonicalSkill("JS"))
	assert.Equal(t, "javascript", CanonicalSkill("javascript"))
	assert.Equal(t, "kubernetes", CanonicalSkill("k8s"))
	assert.Equal(t, "ml", CanonicalSkill("Machine Learning"))
	assert.Equal(t, "rust", CanonicalSkill("Rust"))
}

func TestCanonicalSet(t *testing.T) {
	set := CanonicalSet([]string{"JS", "javascript", "K8S", ""})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "javascript")
	assert.Contains(t, set, "kubernetes")
}

func TestContainsPhrase(t *testing.T) {
	assert.True(t, ContainsPhrase("senior backend developer", "backend developer"))
	assert.False(t, ContainsPhrase("javascripter", "javascript"))
}
