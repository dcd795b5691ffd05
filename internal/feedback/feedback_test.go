package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTable(t *testing.T) {
	cases := []struct {
		guess, answer, want string
	}{
		{"abcd", "abcd", "GGGG"},
		{"dcba", "abcd", "YYYY"},
		{"edcba", "abcde", "YYGYY"},
		{"bacon", "xxxxx", "RRRRR"},
		{"xxaaa", "xaaax", "GYGGY"},
		{"bbxxa", "aabbc", "YYRRY"},
		{"aabbc", "bbxxa", "YRYYR"},
		{"bacon", "abaci", "YYYRR"},
		{"abaci", "bacon", "YYRYR"},
		// One 's' in the answer: the green consumes nothing, and only
		// one non-positional 's' may turn yellow. Here none do, because
		// position 0 is already green.
		{"sassy", "silly", "GRRRG"},
	}
	for _, tc := range cases {
		p, err := Compute(tc.guess, tc.answer)
		require.NoError(t, err, "%s vs %s", tc.guess, tc.answer)
		assert.Equal(t, tc.want, p.Code(len(tc.guess)), "%s vs %s", tc.guess, tc.answer)
	}
}

func TestComputeSelfMatch(t *testing.T) {
	for _, w := range []string{"sassy", "silly", "drink", "abcde", "aaaaa"} {
		p, err := Compute(w, w)
		require.NoError(t, err)
		assert.Equal(t, AllGreen(len(w)), p, w)
	}
}

func TestComputeLengthMismatch(t *testing.T) {
	_, err := Compute("abc", "abcd")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

// For every letter, the number of green+yellow marks never exceeds the
// letter's occurrence count in the answer.
func TestComputeDuplicateAccounting(t *testing.T) {
	wordsList := []string{
		"sassy", "silly", "aabbc", "bbxxa", "loopy", "llama",
		"sheep", "geese", "added", "radar", "drink", "melee",
	}
	for _, guess := range wordsList {
		for _, answer := range wordsList {
			p, err := Compute(guess, answer)
			require.NoError(t, err)
			marks := p.Marks(len(guess))
			var hinted [26]int
			for i, m := range marks {
				if m != Gray {
					hinted[guess[i]-'a']++
				}
			}
			for c := byte('a'); c <= 'z'; c++ {
				have := strings.Count(answer, string(c))
				assert.LessOrEqual(t, hinted[c-'a'], have,
					"letter %c overcounted for %s vs %s", c, guess, answer)
			}
		}
	}
}
