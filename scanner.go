package linkify

/*
Scanner (§2 item 3, §4.2): builds the character-level FSM once per
snapshot and runs it with greedy longest-match to partition input text
into a contiguous, non-overlapping stream of Tokens.
*/

type charFSM = fsm[rune, tokenTag]

// customScheme is one scheme registered via RegisterCustomProtocol (§4.5).
type customScheme struct {
	name       string
	slashSlash bool
}

// punctLiteral is one single-character punctuation registration from
// §4.2's table.
type punctLiteral struct {
	ch   rune
	kind tokenKind
}

// singleCharPunctuation lists every literal in §4.2's punctuation table
// that is not part of a bracket pair (those are handled separately via
// openBracketPairs/closeBracketPairs so their fullwidth counterparts are
// registered alongside them).
var singleCharPunctuation = []punctLiteral{
	{'\'', tokenApostrophe},
	{'`', tokenBacktick},
	{'&', tokenAmpersand},
	{'*', tokenAsterisk},
	{'@', tokenAt},
	{'^', tokenCaret},
	{':', tokenColon},
	{',', tokenComma},
	{'$', tokenDollar},
	{'.', tokenDot},
	{'=', tokenEquals},
	{'!', tokenExclamation},
	{'-', tokenHyphen},
	{'%', tokenPercent},
	{'|', tokenPipe},
	{'+', tokenPlus},
	{'#', tokenHash},
	{'?', tokenQuestion},
	{'"', tokenQuote},
	{'/', tokenSlash},
	{';', tokenSemicolon},
	{'~', tokenTilde},
	{'_', tokenUnderscore},
	{'\\', tokenBackslash},
	{'・', tokenMiddleDot},
}

var fixedSchemes = []struct {
	name       string
	slashSlash bool
	kind       tokenKind
}{
	{"file", false, tokenScheme},
	{"mailto", false, tokenMailtoScheme},
	{"http", true, tokenSlashScheme},
	{"https", true, tokenSlashScheme},
	{"ftp", true, tokenSlashScheme},
	{"ftps", true, tokenSlashScheme},
}

// buildCharFSM assembles the character FSM described by §4.2's
// registration table, plus any custom schemes passed in (§4.5; sorted
// lexicographically first so shared prefixes collapse deterministically
// regardless of registration order).
func buildCharFSM(customSchemes []customScheme) *charFSM {
	f := newFSM[rune, tokenTag]()
	start := f.start

	wordNode := f.addClass(start, isASCIILetter, noNode)
	f.setAccepting(wordNode, simpleTag(tokenWord), groupASCII)
	f.addClass(wordNode, isASCIILetter, wordNode)

	// UWORD needs its dead edge on ASCII_LETTER registered *before* its
	// LETTER self-loop: LETTER's predicate also matches ASCII letters,
	// and class edges are tried in insertion order, so without this
	// ordering an ASCII run following a unicode letter would wrongly
	// keep extending the UWORD token instead of breaking off into its
	// own WORD token (§4.2's table pins this down explicitly).
	uwordNode := f.addClass(start, isLetter, noNode)
	f.setAccepting(uwordNode, simpleTag(tokenUWord), groupAlpha)
	f.addClass(uwordNode, isASCIILetter, noNode) // dead edge, see above
	f.addClass(uwordNode, isLetter, uwordNode)

	numNode := f.addClass(start, isDigit, noNode)
	f.setAccepting(numNode, simpleTag(tokenNum), groupNumeric)
	f.addClass(numNode, isDigit, numNode)

	wsNode := f.addClass(start, isSpace, noNode)
	f.setAccepting(wsNode, simpleTag(tokenWS), groupWhitespace)
	f.addClass(wsNode, isSpace, wsNode)

	emojiNode := f.addClass(start, isEmoji, noNode)
	f.setAccepting(emojiNode, simpleTag(tokenEmoji), groupEmoji)
	f.addClass(emojiNode, isEmoji, emojiNode)
	f.addLiteral(emojiNode, variationSelector16, emojiNode)
	f.addLiteral(emojiNode, zeroWidthJoiner, emojiNode)

	asciiNumericNode := f.addClass(wordNode, isDigit, noNode)
	f.setAccepting(asciiNumericNode, simpleTag(tokenASCIINumeric), groupASCIINumeric)
	f.addClass(asciiNumericNode, isASCIILetter, asciiNumericNode)
	f.addClass(asciiNumericNode, isDigit, asciiNumericNode)
	f.addClass(numNode, isASCIILetter, asciiNumericNode)

	alphaNumericNode := f.addClass(uwordNode, isDigit, noNode)
	f.setAccepting(alphaNumericNode, simpleTag(tokenAlphaNumeric), groupAlphaNumeric)
	f.addClass(alphaNumericNode, isLetter, alphaNumericNode)
	f.addClass(alphaNumericNode, isDigit, alphaNumericNode)
	f.addClass(numNode, isLetter, alphaNumericNode)

	// CR / LF / CRLF (§4.2).
	nlNode := f.addLiteral(start, '\n', noNode)
	f.setAccepting(nlNode, simpleTag(tokenNL), 0)
	crNode := f.addLiteral(start, '\r', noNode)
	f.setAccepting(crNode, simpleTag(tokenWS), groupWhitespace)
	f.addLiteral(crNode, '\n', nlNode)

	sideAttached := make(map[nodeID]bool)
	attachWordSide := func(ff *charFSM, n nodeID) {
		if sideAttached[n] {
			return
		}
		sideAttached[n] = true
		ff.addClass(n, isASCIILetter, wordNode)
		ff.addClass(n, isDigit, asciiNumericNode)
	}
	attachUWordSide := func(ff *charFSM, n nodeID) {
		if sideAttached[n] {
			return
		}
		sideAttached[n] = true
		ff.addClass(n, isLetter, uwordNode)
		ff.addClass(n, isDigit, alphaNumericNode)
	}

	for _, p := range singleCharPunctuation {
		n := f.addLiteral(start, p.ch, noNode)
		f.setAccepting(n, simpleTag(p.kind), 0)
	}
	for _, p := range openBracketPairs {
		n := f.addLiteral(start, p.ascii, noNode)
		f.setAccepting(n, simpleTag(p.kind), 0)
		nf := f.addLiteral(start, p.fullwidth, noNode)
		f.setAccepting(nf, simpleTag(p.kind), 0)
	}
	for _, p := range closeBracketPairs {
		n := f.addLiteral(start, p.ascii, noNode)
		f.setAccepting(n, simpleTag(p.kind), 0)
		nf := f.addLiteral(start, p.fullwidth, noNode)
		f.setAccepting(nf, simpleTag(p.kind), 0)
	}

	// addChain only gives intermediate nodes their side edges; each chain's
	// final node gets them here as well, so a word that merely starts with
	// a scheme, TLD or "localhost" ("alice" past the "al" TLD) keeps
	// extending into WORD/UWORD instead of splitting after the chain.
	for _, s := range fixedSchemes {
		finalTag := simpleTag(s.kind)
		finalGroups := groupScheme
		if s.slashSlash {
			finalGroups = groupSlashScheme
		}
		attachWordSide(f, f.addChain(start, []rune(s.name), finalTag, finalGroups|groupASCII,
			simpleTag(tokenWord), groupASCII, attachWordSide))
	}
	attachWordSide(f, f.addChain(start, []rune("localhost"), simpleTag(tokenLocalhost), groupASCII|groupDomain,
		simpleTag(tokenWord), groupASCII, attachWordSide))

	for _, tld := range asciiTLDs {
		attachWordSide(f, f.addChain(start, []rune(tld), simpleTag(tokenTLD), groupTLD|groupASCII,
			simpleTag(tokenWord), groupASCII, attachWordSide))
	}
	for _, utld := range utlds {
		attachUWordSide(f, f.addChain(start, []rune(utld), simpleTag(tokenUTLD), groupUTLD|groupAlpha,
			simpleTag(tokenUWord), groupAlpha, attachUWordSide))
	}

	schemes := append([]customScheme(nil), customSchemes...)
	sortCustomSchemes(schemes)
	for _, cs := range schemes {
		groups := customSchemeGroups(cs.name)
		if cs.slashSlash {
			groups |= groupSlashScheme
		} else {
			groups |= groupScheme
		}
		attachWordSide(f, f.addChain(start, []rune(cs.name), customSchemeTag(cs.name), groups,
			simpleTag(tokenWord), groupASCII, attachWordSide))
	}

	symNode := f.newNode()
	f.setAccepting(symNode, simpleTag(tokenSym), 0)
	f.setDefault(start, symNode)

	return f
}

func sortCustomSchemes(schemes []customScheme) {
	for i := 1; i < len(schemes); i++ {
		for j := i; j > 0 && schemes[j].name < schemes[j-1].name; j-- {
			schemes[j], schemes[j-1] = schemes[j-1], schemes[j]
		}
	}
}

// scan runs the character FSM over s with greedy-longest-match rollback
// (§4.2 "Scan loop") and returns the resulting complete partition of s
// into Tokens. The FSM is case-insensitive: a lowercased working copy of
// the code points drives the stepping, but every Token.Value is sliced
// from the original, cased string.
func scan(f *charFSM, s string) []Token {
	points := codePoints(s)
	if len(points) == 0 {
		return nil
	}
	lowered := make([]rune, len(points))
	for i, p := range points {
		r := p.r
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		lowered[i] = r
	}

	var tokens []Token
	f.run(lowered, func(tag tokenTag, groups groupSet, start, end int) {
		byteStart := points[start].start
		byteEnd := points[end-1].end
		tokens = append(tokens, Token{
			tag:    tag,
			Groups: groups,
			Value:  s[byteStart:byteEnd],
			Start:  byteStart,
			End:    byteEnd,
		})
	})
	return tokens
}
