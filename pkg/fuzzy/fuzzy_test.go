package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"groceries", "grocereis", 2},
		{"Report", "report", 0}, // normalization is case-insensitive
		{"a-b-c", "abc", 0},     // punctuation is stripped
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Distance(c.s1, c.s2), "%q vs %q", c.s1, c.s2)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"report", "repost"},
		{"milk", ""},
	}

	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]))
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		query, text string
		threshold   int
		want        bool
	}{
		{"milk", "Buy milk", 2, true},        // substring
		{"rep", "Write report", 2, true},     // word prefix
		{"reprot", "Write report", 2, true},  // typo within distance
		{"grocereis", "Buy groceries", 2, true},
		{"xyz", "Buy milk", 1, false},
		{"work", "Work", 1, true},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Match(c.query, c.text, c.threshold), "%q in %q", c.query, c.text)
	}
}
