package embed

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strings"
)

// Embedder turns texts into dense vectors for similarity search.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Dim is the vector size all embedders in this service produce.
const Dim = 384

// Fallback builds a deterministic local vector for a text. It is what the
// pipeline stores when the embedding provider is down: identical texts still
// collide, it is just a much worse similarity signal.
func Fallback(text string) []float32 {
	vec := make([]float32, Dim)
	words := strings.Fields(strings.ToLower(text))
	wordCount := len(words)
	if wordCount == 0 {
		wordCount = 1
	}

	technical := termDensity(words, []string{"api", "database", "algorithm", "function", "class", "method", "variable", "loop", "error"})
	framework := termDensity(words, []string{"react", "python", "javascript", "docker", "kubernetes", "aws", "node", "fastapi"})
	learning := termDensity(words, []string{"learn", "understand", "practice", "example", "tutorial", "guide", "step"})

	vec[0] = clamp01(technical)
	vec[1] = clamp01(framework)
	vec[2] = clamp01(learning)
	vec[3] = clamp01(float32(len(text)) / 1000)
	vec[4] = clamp01(float32(wordCount) / 100)

	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	for i := 5; i < Dim; i++ {
		vec[i] = float32(rng.Float64()*0.2 - 0.1)
	}
	return vec
}

func termDensity(words, terms []string) float32 {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	hits := 0
	for _, w := range words {
		if _, ok := set[w]; ok {
			hits++
		}
	}
	return float32(hits) / float32(max(len(words), 1))
}

func clamp01(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

