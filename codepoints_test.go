package linkify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodePointsASCII(t *testing.T) {
	points := codePoints("abc")
	require.Len(t, points, 3)
	assert.Equal(t, codePoint{r: 'a', start: 0, end: 1}, points[0])
	assert.Equal(t, codePoint{r: 'b', start: 1, end: 2}, points[1])
	assert.Equal(t, codePoint{r: 'c', start: 2, end: 3}, points[2])
}

func TestCodePointsMultiByteSingleCluster(t *testing.T) {
	// "é" as a single precomposed code point (U+00E9), 2 UTF-8 bytes.
	points := codePoints("é")
	require.Len(t, points, 1)
	assert.Equal(t, 'é', points[0].r)
	assert.Equal(t, 0, points[0].start)
	assert.Equal(t, 2, points[0].end)
}

func TestCodePointsCombiningClusterFlattensToCodePoints(t *testing.T) {
	// "e" + combining acute accent (U+0301) is one grapheme cluster but
	// two code points; codePoints must recover both with correct offsets.
	s := "é"
	points := codePoints(s)
	require.Len(t, points, 2)
	assert.Equal(t, 'e', points[0].r)
	assert.Equal(t, 0, points[0].start)
	assert.Equal(t, 1, points[0].end)
	assert.Equal(t, rune(0x0301), points[1].r)
	assert.Equal(t, 1, points[1].start)
	assert.Equal(t, 3, points[1].end)
}

func TestCodePointsZWJSequence(t *testing.T) {
	// Family emoji built from three people joined by ZWJ: every code
	// point, including each ZWJ, must survive as its own entry.
	s := "\U0001F468‍\U0001F469‍\U0001F467"
	points := codePoints(s)
	var got []rune
	for _, p := range points {
		got = append(got, p.r)
	}
	assert.Equal(t, []rune{0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467}, got)
}

func TestCodePointsEmpty(t *testing.T) {
	assert.Empty(t, codePoints(""))
}
