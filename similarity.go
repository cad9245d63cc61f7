// similarity.go computes normalized edit-distance similarity between two
// strings. Pure functions, no state; callers normalize case beforehand.
package main

// similarity returns a score in [0,1]: 1.0 for identical strings (including
// both empty), scaled down by the Levenshtein distance relative to the
// longer string's length.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longer, shorter := ra, rb
	if len(rb) > len(ra) {
		longer, shorter = rb, ra
	}
	if len(longer) == 0 {
		return 1.0
	}
	d := levenshtein(longer, shorter)
	return float64(len(longer)-d) / float64(len(longer))
}

// levenshtein is the classic edit distance with unit-cost insert, delete
// and substitute, computed over a two-row DP table. Operates on runes so
// accented characters count as one edit, not two.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1], curr[j-1], prev[j]) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
