package movies

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const titlePrompt = `You are a movie expert. Based on the user's description, identify up to 10 possible movie titles. Respond with only a valid JSON array of strings, ordered from most likely to least likely. For example: ["Movie Title 1", "Movie Title 2"]`

// ParseTitles reads the model reply as a JSON array of titles.
// Anything that is not a JSON array is treated as one title. Elements that
// are not strings come back empty so callers can skip them without losing
// positions.
func ParseTitles(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &elems); err != nil || elems == nil {
		return []string{norm.NFC.String(trimmed)}
	}

	titles := make([]string, 0, len(elems))
	for _, elem := range elems {
		var title string
		if err := json.Unmarshal(elem, &title); err != nil {
			titles = append(titles, "")
			continue
		}
		titles = append(titles, norm.NFC.String(strings.TrimSpace(title)))
	}
	return titles
}

func nonEmpty(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		if title != "" {
			out = append(out, title)
		}
	}
	return out
}
