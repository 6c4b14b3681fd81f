package movies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTitles(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "array", raw: `["Heat", "Collateral"]`, want: []string{"Heat", "Collateral"}},
		{name: "surrounding whitespace", raw: "\n  [\"Heat\"]  \n", want: []string{"Heat"}},
		{name: "empty array", raw: `[]`, want: []string{}},
		{name: "prose falls back to one candidate", raw: "I think it is Heat.", want: []string{"I think it is Heat."}},
		{name: "object falls back", raw: `{"title":"Heat"}`, want: []string{`{"title":"Heat"}`}},
		{name: "json string falls back", raw: `"Heat"`, want: []string{`"Heat"`}},
		{name: "null falls back", raw: `null`, want: []string{"null"}},
		{name: "non-string elements keep their slot", raw: `["Heat", null, 3, "Ronin"]`, want: []string{"Heat", "", "", "Ronin"}},
		{name: "blank input", raw: "   ", want: []string{}},
		{name: "elements trimmed", raw: `["  Heat "]`, want: []string{"Heat"}},
		{name: "decomposed accents composed", raw: "[\"Ame\u0301lie\"]", want: []string{"Am\u00e9lie"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTitles(tc.raw))
		})
	}
}

func TestNonEmptyDropsBlankTitles(t *testing.T) {
	assert.Equal(t, []string{"Heat", "Ronin"}, nonEmpty([]string{"", "Heat", "", "Ronin"}))
	assert.Empty(t, nonEmpty(nil))
}

func TestReleaseYear(t *testing.T) {
	assert.Equal(t, "1995", releaseYear("1995-12-15"))
	assert.Equal(t, "1995", releaseYear("1995"))
	assert.Equal(t, "N/A", releaseYear(""))
	assert.Equal(t, "N/A", releaseYear("  "))
}
