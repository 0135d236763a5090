// Package suggest proposes the closest known name for a mistyped one.
package suggest

import "strings"

// maxRelativeDistance bounds how different a suggestion may be from the input,
// as a fraction of the longer string.
const maxRelativeDistance = 0.5

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 for equal strings down to 0 for completely different ones.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// Closest returns the candidate nearest to name, compared case-insensitively.
// It reports false when no candidate is similar enough to be a plausible typo.
func Closest(name string, candidates []string) (string, bool) {
	name = strings.ToLower(name)

	best, bestScore := "", 0.0
	for _, c := range candidates {
		score := Similarity(name, strings.ToLower(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if best == "" || bestScore < 1-maxRelativeDistance {
		return "", false
	}

	return best, true
}
