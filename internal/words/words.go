// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Load a line-oriented word list from a file, the WORDS_FILE
//     environment variable, or the embedded default list.
//   - Normalize to lowercase and drop blanks, comments, duplicates and
//     words of the wrong length or with non a–z letters.
//   - Provide fast membership lookups for guess validation.
//
// A Dictionary is built once at startup and read-only afterwards.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"wordlesolver/internal/feedback"
)

//go:embed default_words.txt
var embeddedWords string

// Dictionary is an ordered, duplicate-free set of equal-length words.
type Dictionary struct {
	words  []string
	set    map[string]struct{}
	length int
}

// Load reads a dictionary of length-letter words. An empty path falls
// back to the WORDS_FILE environment variable, then to the embedded
// default list.
func Load(path string, length int) (*Dictionary, error) {
	if path == "" {
		path = os.Getenv("WORDS_FILE")
	}
	if path == "" {
		return New(strings.Split(embeddedWords, "\n"), length)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open dictionary: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}

	d, err := New(lines, length)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return d, nil
}

// New builds a Dictionary from raw lines, keeping only valid
// length-letter words in first-seen order. length is capped at
// feedback.MaxLength: longer words cannot be scored without pattern
// collisions.
func New(lines []string, length int) (*Dictionary, error) {
	if length < 1 || length > feedback.MaxLength {
		return nil, fmt.Errorf("word length %d out of range 1..%d", length, feedback.MaxLength)
	}
	d := &Dictionary{
		set:    make(map[string]struct{}, len(lines)),
		length: length,
	}
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, fmt.Errorf("no %d-letter words found", length)
	}
	return d, nil
}

// Words returns the dictionary contents. Callers must not mutate it.
func (d *Dictionary) Words() []string { return d.words }

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Len is the number of words loaded.
func (d *Dictionary) Len() int { return len(d.words) }

// Length is the per-word letter count.
func (d *Dictionary) Length() int { return d.length }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
