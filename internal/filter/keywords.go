package filter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// contextRadius is how many characters of surrounding text are captured on
// each side of a keyword hit.
const contextRadius = 50

// scanKeyword counts word-boundary occurrences of keyword in text and
// captures the surrounding context of each hit. Newlines inside a context
// snippet are collapsed to spaces.
func scanKeyword(text, keyword string) (int, []string) {
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return 0, nil
	}

	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return 0, nil
	}

	contexts := make([]string, 0, len(matches))
	for _, m := range matches {
		start := runeStart(text, m[0]-contextRadius)
		end := runeStart(text, m[1]+contextRadius)
		snippet := strings.TrimSpace(strings.ReplaceAll(text[start:end], "\n", " "))
		contexts = append(contexts, snippet)
	}
	return len(matches), contexts
}

// runeStart clamps i to [0, len(s)] and backs it off to the nearest rune
// boundary so context slicing never splits a multi-byte character.
func runeStart(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
