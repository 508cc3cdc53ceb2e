package linkify

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/width"
)

// Character classes (§2 item 1): precompiled predicates over code points.
// ASCII cases are checked with plain range comparisons before falling
// back to the stdlib unicode tables, per §9 "inline fast paths for ASCII
// before falling back to Unicode property tables" — none of these ever
// invoke a regexp engine per code point.

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isLetter reports whether r is any Unicode letter (§2 LETTER class).
func isLetter(r rune) bool {
	if isASCIILetter(r) {
		return true
	}
	return unicode.IsLetter(r)
}

// objectReplacementChar is U+FFFC, folded into the whitespace class to
// accommodate rich-text editor artifacts (§9 "Object replacement").
const objectReplacementChar rune = '￼'

// isSpace reports non-newline whitespace (§2 SPACE class); CR/LF are
// handled as their own scanner states, not as members of this class.
func isSpace(r rune) bool {
	switch r {
	case '\n', '\r':
		return false
	case ' ', '\t':
		return true
	case objectReplacementChar:
		return true
	}
	return unicode.IsSpace(r)
}

// rangeTable32 builds a *unicode.RangeTable from 32-bit rune ranges —
// the same shape the stdlib unicode package itself uses for tables like
// unicode.Greek, just assembled locally instead of generated.
func rangeTable32(ranges ...unicode.Range32) *unicode.RangeTable {
	return &unicode.RangeTable{R32: ranges}
}

// emojiTable is a representative, hand-maintained merge of the Unicode
// emoji blocks (not the full, exhaustive Unicode Emoji data file — see
// DESIGN.md). It intentionally excludes U+FE0F (VARIATION SELECTOR-16)
// and U+200D (ZERO WIDTH JOINER): those continue an emoji run as their
// own scanner edges (§4.2, §9) rather than being members of the EMOJI
// class predicate itself.
var emojiTable = rangetable.Merge(
	rangeTable32(unicode.Range32{Lo: 0x2600, Hi: 0x26FF, Stride: 1}),   // Misc Symbols
	rangeTable32(unicode.Range32{Lo: 0x2700, Hi: 0x27BF, Stride: 1}),   // Dingbats
	rangeTable32(unicode.Range32{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}), // Misc Symbols and Pictographs
	rangeTable32(unicode.Range32{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}), // Emoticons
	rangeTable32(unicode.Range32{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}), // Transport and Map
	rangeTable32(unicode.Range32{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}), // Regional Indicators (flags)
	rangeTable32(unicode.Range32{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}), // Supplemental Symbols and Pictographs
	rangeTable32(unicode.Range32{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}), // Symbols and Pictographs Extended-A
)

// isEmoji reports whether r starts (or continues, as a bare repeated
// member) an emoji run (§2 EMOJI class).
func isEmoji(r rune) bool {
	return unicode.Is(emojiTable, r)
}

const (
	variationSelector16 rune = '️'
	zeroWidthJoiner     rune = '‍'
)

// bracketPair is one of the bracket families registered in the scanner's
// punctuation table (§4.2). fullwidth is not transcribed by hand: it is
// derived at package init from golang.org/x/text/width's East Asian width
// mapping of ascii, so the scanner's fullwidth literals can never drift
// from Unicode's own idea of what "the fullwidth form of '('" is.
type bracketPair struct {
	ascii, fullwidth rune
	family           bracketFamily
	kind             tokenKind
}

// fullwidthOf returns the fullwidth/wide form of an ASCII bracket rune, as
// computed by golang.org/x/text/width, panicking if ascii turns out not to
// have one (a table-definition error, not a runtime-data error).
func fullwidthOf(ascii rune) rune {
	wide := width.LookupRune(ascii).Wide()
	if len(wide) == 0 {
		panic(fmt.Sprintf("linkify: %U has no wide variant", ascii))
	}
	r, size := utf8.DecodeRune(wide)
	if size != len(wide) {
		panic(fmt.Sprintf("linkify: %U wide variant is not a single rune", ascii))
	}
	return r
}

func newBracketPair(ascii rune, family bracketFamily, kind tokenKind) bracketPair {
	return bracketPair{ascii: ascii, fullwidth: fullwidthOf(ascii), family: family, kind: kind}
}

var openBracketPairs = []bracketPair{
	newBracketPair('(', familyParen, tokenOpenParen),
	newBracketPair('[', familyBracket, tokenOpenBracket),
	newBracketPair('{', familyBrace, tokenOpenBrace),
	newBracketPair('<', familyAngle, tokenOpenAngle),
}

var closeBracketPairs = []bracketPair{
	newBracketPair(')', familyParen, tokenCloseParen),
	newBracketPair(']', familyBracket, tokenCloseBracket),
	newBracketPair('}', familyBrace, tokenCloseBrace),
	newBracketPair('>', familyAngle, tokenCloseAngle),
}

// isFullwidthVariant reports whether r is classified as a fullwidth or
// wide East Asian presentation form.
func isFullwidthVariant(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return true
	default:
		return false
	}
}
