// internal/feedback/feedback.go
//
// Feedback engine: scores a guess against a hypothetical answer.
// Responsibilities:
//   - Compute the per-letter feedback pattern using the classic
//     two-pass Wordle algorithm.
//   - Handle repeated letters correctly: a letter is marked yellow at
//     most as many times as it occurs in the answer beyond the greens.
//
// Notes:
//   - Pure functions only; the per-letter count table is local to a
//     single Compute call.
//   - Words are expected to be lowercase a–z; the caller validates at
//     the boundary. Letters outside a–z simply never match.
package feedback

import (
	"errors"
	"fmt"
)

// Mark is the evaluation result for a single letter in a guess.
type Mark uint8

const (
	// Gray: the letter does not occur in the answer (beyond occurrences
	// already consumed by green and yellow marks).
	Gray Mark = iota
	// Yellow: the letter occurs in the answer but not at this position.
	Yellow
	// Green: right letter, right position.
	Green
)

// ErrLengthMismatch is returned when a guess/answer pair have different
// lengths. This is a contract violation: the driver enforces a fixed
// word length before anything reaches this package.
var ErrLengthMismatch = errors.New("feedback: guess and answer lengths differ")

// Compute scores guess against answer and returns the packed pattern.
//
// Pass 1 marks exact matches green and counts the remaining answer
// letters. Pass 2 resolves the rest: yellow while the count table still
// has occurrences of the guessed letter, gray otherwise. The pass order
// guarantees greens consume answer letters before any yellow can, so
// e.g. Compute("sassy", "silly") yellows only one 's'.
func Compute(guess, answer string) (Pattern, error) {
	n := len(guess)
	if n != len(answer) {
		return 0, fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, guess, answer)
	}

	var counts [26]int
	marks := make([]Mark, n)

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			marks[i] = Green
		} else if j := letterIndex(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == Green {
			continue
		}
		if j := letterIndex(guess[i]); j >= 0 && counts[j] > 0 {
			marks[i] = Yellow
			counts[j]--
		}
	}

	return Make(marks), nil
}

// letterIndex maps a lowercase ASCII letter to 0..25, or -1.
func letterIndex(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}
