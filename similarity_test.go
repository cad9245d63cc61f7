package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinKittenSitting(t *testing.T) {
	assert.Equal(t, 3, levenshtein([]rune("kitten"), []rune("sitting")))
}

func TestLevenshteinEdges(t *testing.T) {
	assert.Equal(t, 0, levenshtein([]rune(""), []rune("")))
	assert.Equal(t, 4, levenshtein([]rune("abcd"), []rune("")))
	assert.Equal(t, 1, levenshtein([]rune("código"), []rune("codigo")))
}

func TestSimilarityIdentical(t *testing.T) {
	for _, s := range []string{"", "a", "implementar backend api", "configuración"} {
		assert.Equal(t, 1.0, similarity(s, s), "similarity(%q, %q)", s, s)
	}
}

func TestSimilarityBothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"crear archivo", "crear carpeta"},
		{"", "abc"},
		{"implementar backend api", "implementar backend API v2"},
	}
	for _, p := range pairs {
		assert.InDelta(t, similarity(p[0], p[1]), similarity(p[1], p[0]), 1e-12,
			"similarity(%q, %q) should be symmetric", p[0], p[1])
	}
}

func TestSimilarityScaling(t *testing.T) {
	// one substitution over three characters
	assert.InDelta(t, 2.0/3.0, similarity("abc", "abd"), 1e-12)
	// entirely different strings of equal length
	assert.InDelta(t, 0.0, similarity("abc", "xyz"), 1e-12)
}
