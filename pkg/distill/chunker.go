package distill

import "strings"

// Chunking window in words. Each chunk overlaps the previous one so that a
// sentence split across a boundary still appears whole in one of them.
const (
	ChunkWords   = 400
	ChunkOverlap = 50
)

// ChunkText splits text into overlapping word windows. A trailing remainder
// that carries nothing beyond the overlap of the previous chunk is dropped.
func ChunkText(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	cur := make([]string, 0, ChunkWords)
	for _, w := range words {
		cur = append(cur, w)
		if len(cur) >= ChunkWords {
			chunks = append(chunks, strings.Join(cur, " "))
			cur = append(cur[:0:0], cur[len(cur)-ChunkOverlap:]...)
		}
	}
	if len(chunks) == 0 || len(cur) > ChunkOverlap {
		chunks = append(chunks, strings.Join(cur, " "))
	}
	return chunks
}
