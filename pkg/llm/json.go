package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON parses a model reply into v. Models regularly wrap JSON in
// markdown fences or prose, so after a direct parse fails it retries on the
// outermost braced or bracketed region.
func DecodeJSON(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		i := strings.Index(raw, pair[0])
		j := strings.LastIndex(raw, pair[1])
		if i >= 0 && j > i {
			if err := json.Unmarshal([]byte(raw[i:j+1]), v); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("model reply is not valid JSON")
}
