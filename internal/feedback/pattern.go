// internal/feedback/pattern.go
//
// Pattern is an immutable, comparable encoding of one row of feedback.
// Patterns are packed base-3 (gray=0, yellow=1, green=2, first letter
// most significant) so they can key maps and memo entries cheaply.
// The word length is not stored; callers that decode a pattern pass it
// explicitly. Supports lengths up to MaxLength letters.
package feedback

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
)

// Pattern is a packed base-3 feedback row. Two patterns of the same
// word length are equal iff every positional mark matches.
type Pattern uint32

// MaxLength is the longest word a Pattern can encode: 3^20 still fits
// in uint32, 3^21 does not.
const MaxLength = 20

// Hint-code characters, one per Mark: G=green, Y=yellow, R=gray.
const codeChars = "RYG"

// Make packs a slice of marks into a Pattern.
func Make(marks []Mark) Pattern {
	var p Pattern
	for _, m := range marks {
		p = p*3 + Pattern(m)
	}
	return p
}

// AllGreen returns the pattern a correct guess receives for n letters.
func AllGreen(n int) Pattern {
	var p Pattern
	for i := 0; i < n; i++ {
		p = p*3 + Pattern(Green)
	}
	return p
}

// Marks unpacks p into per-position marks for an n-letter word.
func (p Pattern) Marks(n int) []Mark {
	marks := make([]Mark, n)
	for i := n - 1; i >= 0; i-- {
		marks[i] = Mark(p % 3)
		p /= 3
	}
	return marks
}

// Code renders p as hint-code characters, e.g. "RGRRY".
func (p Pattern) Code(n int) string {
	marks := p.Marks(n)
	b := make([]byte, n)
	for i, m := range marks {
		b[i] = codeChars[m]
	}
	return string(b)
}

// Parse decodes a hint-code string ("G"=green, "Y"=yellow, "R"=gray,
// case-insensitive) into a Pattern.
func Parse(s string) (Pattern, error) {
	var p Pattern
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 'G', 'g':
			p = p*3 + Pattern(Green)
		case 'Y', 'y':
			p = p*3 + Pattern(Yellow)
		case 'R', 'r':
			p = p*3 + Pattern(Gray)
		default:
			return 0, fmt.Errorf("feedback: invalid pattern symbol %q in %q", c, s)
		}
	}
	return p, nil
}

// Colored renders word as terminal tiles colored by p.
func (p Pattern) Colored(word string) string {
	marks := p.Marks(len(word))
	var b strings.Builder
	for i, m := range marks {
		switch m {
		case Green:
			b.WriteString("[_green_][black]")
		case Yellow:
			b.WriteString("[_yellow_][black]")
		default:
			b.WriteString("[_dark_gray_][white]")
		}
		b.WriteByte(' ')
		b.WriteByte(word[i])
		b.WriteString(" [reset]")
	}
	return colorstring.Color(b.String())
}
