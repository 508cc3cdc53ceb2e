package linkify

import "unicode/utf8"

// codePoint is one Unicode code point from the input, annotated with its
// byte offsets in the original string (§3 "Code point array": "Byte/char
// offsets refer to the original input string").
type codePoint struct {
	r          rune
	start, end int
}

// codePoints expands s into its code point array. A Go rune already
// represents one full Unicode code point (Go strings are UTF-8, not
// UTF-16), so unlike the JS original this never has to special-case
// surrogate pairs directly: decoding one rune at a time off the byte
// string is exactly what §4.2 needs, since the scanner FSM steps one code
// point at a time and models variation-selector and ZWJ continuations as
// explicit edges (other combining marks get no special edge) rather than
// consuming a whole grapheme cluster in one step. Grapheme segmentation is deliberately not
// used here — it solves a different problem (where a human reader would
// break a string) than the one the scanner has (where the FSM's alphabet
// steps).
func codePoints(s string) []codePoint {
	points := make([]codePoint, 0, len(s))
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		points = append(points, codePoint{r: r, start: i, end: i + w})
		i += w
	}
	return points
}
