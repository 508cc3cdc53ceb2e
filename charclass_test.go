package linkify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDigit(t *testing.T) {
	assert.True(t, isDigit('0'))
	assert.True(t, isDigit('9'))
	assert.False(t, isDigit('a'))
	assert.False(t, isDigit('٣')) // Arabic-indic digit: not ASCII digit
}

func TestIsASCIILetter(t *testing.T) {
	assert.True(t, isASCIILetter('a'))
	assert.True(t, isASCIILetter('Z'))
	assert.False(t, isASCIILetter('é'))
	assert.False(t, isASCIILetter('1'))
}

func TestIsLetterUnicode(t *testing.T) {
	assert.True(t, isLetter('é'))
	assert.True(t, isLetter('日'))
	assert.True(t, isLetter('a'))
	assert.False(t, isLetter('1'))
}

func TestIsSpaceExcludesNewlines(t *testing.T) {
	assert.True(t, isSpace(' '))
	assert.True(t, isSpace('\t'))
	assert.False(t, isSpace('\n'))
	assert.False(t, isSpace('\r'))
	assert.True(t, isSpace(objectReplacementChar))
}

func TestIsEmoji(t *testing.T) {
	assert.True(t, isEmoji('😀'))
	assert.True(t, isEmoji('🚀'))
	assert.False(t, isEmoji('a'))
}

func TestFullwidthBracketsRegistered(t *testing.T) {
	for _, p := range openBracketPairs {
		assert.True(t, isFullwidthVariant(p.fullwidth), "expected %q to be fullwidth", p.fullwidth)
	}
	for _, p := range closeBracketPairs {
		assert.True(t, isFullwidthVariant(p.fullwidth), "expected %q to be fullwidth", p.fullwidth)
	}
}

func TestFullwidthOfDerivesKnownMappings(t *testing.T) {
	assert.Equal(t, '（', fullwidthOf('('))
	assert.Equal(t, '）', fullwidthOf(')'))
	assert.Equal(t, '［', fullwidthOf('['))
	assert.Equal(t, '］', fullwidthOf(']'))
	assert.Equal(t, '｛', fullwidthOf('{'))
	assert.Equal(t, '｝', fullwidthOf('}'))
	assert.Equal(t, '＜', fullwidthOf('<'))
	assert.Equal(t, '＞', fullwidthOf('>'))
}
