package linkify

// tokenKind enumerates the fixed part of the scanner's token alphabet
// (§3 "Scanner token"). Custom schemes registered at runtime extend the
// alphabet with tokenCustomScheme values carrying their own name (and
// character plugins do the same with tokenPlugin), so the alphabet stays
// an open set without tokenTag losing comparability.
type tokenKind uint8

const (
	tokenNone tokenKind = iota
	tokenSym            // catch-all single-character symbol (start's default edge)
	tokenNum
	tokenWord
	tokenUWord
	tokenASCIINumeric
	tokenAlphaNumeric
	tokenWS
	tokenNL
	tokenEmoji
	tokenTLD
	tokenUTLD
	tokenScheme
	tokenSlashScheme
	tokenMailtoScheme // "mailto" specifically: distinct from tokenScheme so the parser can give it its own EMAIL grammar (§4.3 EMAIL "Leading mailto:")
	tokenLocalhost
	tokenCustomScheme
	tokenPlugin // registered by a CharPlugin; name holds the plugin-chosen tag name

	// Punctuation tokens: one accepting tag per literal in §4.2's table,
	// each distinguishable from generic SYM because the parser's grammar
	// (§4.3) keys transitions on exactly which punctuation character was
	// seen (DOT vs COLON vs SLASH, bracket family membership, …).
	tokenDot
	tokenColon
	tokenSlash
	tokenAt
	tokenHyphen
	tokenQuestion
	tokenHash
	tokenComma
	tokenExclamation
	tokenSemicolon
	tokenQuote
	tokenApostrophe
	tokenBacktick
	tokenAmpersand
	tokenAsterisk
	tokenCaret
	tokenDollar
	tokenEquals
	tokenPercent
	tokenPipe
	tokenPlus
	tokenUnderscore
	tokenBackslash
	tokenTilde
	tokenMiddleDot
	tokenOpenParen
	tokenCloseParen
	tokenOpenBracket
	tokenCloseBracket
	tokenOpenBrace
	tokenCloseBrace
	tokenOpenAngle
	tokenCloseAngle
)

// tokenTag is the character FSM's accepting-tag type: a fixed tokenKind,
// plus (only for tokenCustomScheme and tokenPlugin) the registered scheme
// or plugin tag name. It is comparable, so it doubles as a map key and an
// fsm[S, T] type argument.
type tokenTag struct {
	kind tokenKind
	name string // set only when kind == tokenCustomScheme or tokenPlugin
}

func simpleTag(k tokenKind) tokenTag { return tokenTag{kind: k} }

func customSchemeTag(name string) tokenTag {
	return tokenTag{kind: tokenCustomScheme, name: name}
}

// Token is one lexical unit produced by the scanner (§3 "Scanner token").
// Value is sliced from the original (cased) input string; the scan itself
// runs over a lowercased working copy (§4.2 "Case policy").
type Token struct {
	tag        tokenTag
	Groups     groupSet // the accepting character-FSM node's groups, carried through for the parser's class edges
	Value      string
	Start, End int // byte offsets into the original input
}

// bracketFamily identifies which of the four bracket pairs (and their
// fullwidth counterparts) a bracket token belongs to, for §4.3's
// per-family balance counters.
type bracketFamily uint8

const (
	familyParen bracketFamily = iota
	familyBracket
	familyBrace
	familyAngle
)

// openBracketFamily reports the family and true if k is an opening
// bracket token kind.
func openBracketFamily(k tokenKind) (bracketFamily, bool) {
	switch k {
	case tokenOpenParen:
		return familyParen, true
	case tokenOpenBracket:
		return familyBracket, true
	case tokenOpenBrace:
		return familyBrace, true
	case tokenOpenAngle:
		return familyAngle, true
	}
	return 0, false
}

// closeBracketFamily reports the family and true if k is a closing
// bracket token kind.
func closeBracketFamily(k tokenKind) (bracketFamily, bool) {
	switch k {
	case tokenCloseParen:
		return familyParen, true
	case tokenCloseBracket:
		return familyBracket, true
	case tokenCloseBrace:
		return familyBrace, true
	case tokenCloseAngle:
		return familyAngle, true
	}
	return 0, false
}

// trimmable reports whether k is in the trailing-punctuation trim set
// (§4.3 "Trailing-punctuation trim"). Closing brackets are handled
// separately, since whether they trim depends on the running bracket
// balance rather than being unconditional.
func trimmable(k tokenKind) bool {
	switch k {
	case tokenDot, tokenComma, tokenExclamation, tokenQuestion, tokenSemicolon,
		tokenColon, tokenQuote, tokenApostrophe:
		return true
	}
	return false
}
