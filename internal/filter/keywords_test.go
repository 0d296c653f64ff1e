package filter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanKeyword_WordBoundaries(t *testing.T) {
	count, _ := scanKeyword("python and pythonic code in python scripts", "python")
	assert.Equal(t, 2, count, "pythonic must not count as python")
}

func TestScanKeyword_MultiWordKeyword(t *testing.T) {
	count, contexts := scanKeyword("built machine learning models for ranking", "machine learning")
	assert.Equal(t, 1, count)
	require.Len(t, contexts, 1)
	assert.Contains(t, contexts[0], "machine learning")
}

func TestScanKeyword_NoMatch(t *testing.T) {
	count, contexts := scanKeyword("a java resume", "python")
	assert.Equal(t, 0, count)
	assert.Nil(t, contexts)
}

func TestScanKeyword_ContextCapture(t *testing.T) {
	prefix := strings.Repeat("a", 80)
	suffix := strings.Repeat("b", 80)
	text := prefix + " python " + suffix

	count, contexts := scanKeyword(text, "python")
	require.Equal(t, 1, count)
	require.Len(t, contexts, 1)

	// 50 chars either side of the hit, plus the keyword itself.
	assert.Contains(t, contexts[0], "python")
	assert.LessOrEqual(t, len(contexts[0]), len("python")+2+2*contextRadius)
	assert.True(t, strings.HasPrefix(contexts[0], "aaa"))
	assert.True(t, strings.HasSuffix(contexts[0], "bbb"))
}

func TestScanKeyword_ContextAtTextBoundaries(t *testing.T) {
	count, contexts := scanKeyword("python developer", "python")
	require.Equal(t, 1, count)
	require.Len(t, contexts, 1)
	assert.Equal(t, "python developer", contexts[0])
}

func TestScanKeyword_ContextOnRuneBoundaries(t *testing.T) {
	// Three-byte runes put the ±50 byte offsets mid-character; the snippet
	// must back off to rune starts instead of emitting invalid UTF-8.
	text := strings.Repeat("€", 40) + "python" + strings.Repeat("€", 40)

	count, contexts := scanKeyword(text, "python")
	require.Equal(t, 1, count)
	require.Len(t, contexts, 1)

	assert.True(t, utf8.ValidString(contexts[0]))
	assert.Equal(t, strings.Repeat("€", 17)+"python"+strings.Repeat("€", 16), contexts[0])
}

func TestScanKeyword_CollapsesNewlines(t *testing.T) {
	_, contexts := scanKeyword("worked with\npython on\nseveral teams", "python")
	require.Len(t, contexts, 1)
	assert.NotContains(t, contexts[0], "\n")
	assert.Contains(t, contexts[0], "worked with python on several teams")
}
