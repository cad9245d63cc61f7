// duplicates.go decides whether a proposed task is a near-duplicate of one
// already in the registry.
package main

import (
	"strings"
	"unicode/utf8"
)

// duplicateTitleThreshold is the minimum title similarity that blocks
// creation on its own.
const duplicateTitleThreshold = 0.8

// findSimilarTask returns the first existing task (in store order) the
// candidate duplicates, or nil. A candidate duplicates an existing task
// when either:
//   - the normalized titles are more than 80% similar, or
//   - the titles share at least two significant words (longer than three
//     characters), where "share" means one contains the other.
func findSimilarTask(title, description string, existing []*Task) *Task {
	newTitle := normalizeText(title)

	for _, t := range existing {
		existingTitle := normalizeText(t.Title)

		if similarity(newTitle, existingTitle) > duplicateTitleThreshold {
			return t
		}
		if sharedSignificantWords(newTitle, existingTitle) >= 2 {
			return t
		}
	}
	return nil
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// sharedSignificantWords counts words of the first title that match a word
// of the second, where words shorter than four characters are ignored and
// matching is substring containment in either direction.
func sharedSignificantWords(a, b string) int {
	aWords := significantWords(a)
	bWords := significantWords(b)

	count := 0
	for _, w := range aWords {
		for _, ew := range bWords {
			if strings.Contains(ew, w) || strings.Contains(w, ew) {
				count++
				break
			}
		}
	}
	return count
}

func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Split(s, " ") {
		if utf8.RuneCountInString(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}
