// internal/solver/history.go
//
// Hint-string parsing shared by the CLI and the HTTP API.
// Syntax: comma-separated "word:pattern" entries applied left to
// right, where pattern uses one letter per position: G=green (exact),
// Y=yellow (present elsewhere), R=gray (absent).
// Example: "bacon:RRRRY,grues:RGRRR".

package solver

import (
	"fmt"
	"strings"

	"wordlesolver/internal/feedback"
)

// ParseHistory decodes a hint string into a History of length-letter
// entries. Malformed input fails fast; nothing partial is returned.
func ParseHistory(s string, length int) (History, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var h History
	for _, chunk := range strings.Split(s, ",") {
		chunk = strings.TrimSpace(chunk)
		word, code, ok := strings.Cut(chunk, ":")
		if !ok {
			return nil, fmt.Errorf("solver: hint %q is not word:pattern", chunk)
		}
		word = strings.ToLower(strings.TrimSpace(word))
		code = strings.TrimSpace(code)
		if len(word) != length {
			return nil, fmt.Errorf("solver: hint word %q is not %d letters", word, length)
		}
		if len(code) != length {
			return nil, fmt.Errorf("solver: hint pattern %q is not %d symbols", code, length)
		}
		p, err := feedback.Parse(code)
		if err != nil {
			return nil, err
		}
		h = append(h, Entry{Guess: word, Pattern: p})
	}
	return h, nil
}
