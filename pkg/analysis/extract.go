package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON strips markdown code fences from a model reply and returns
// the JSON document inside. Models sometimes wrap output in ```json fences
// even when asked for a raw object, so every fence marker is removed
// before trimming. The result must be valid JSON.
func ExtractJSON(content string) ([]byte, error) {
	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: no content after stripping fences", ErrFormat)
	}
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrFormat)
	}
	return []byte(cleaned), nil
}
