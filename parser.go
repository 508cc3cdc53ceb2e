package linkify

import "strings"

/*
Parser (§2 item 4, §4.3): builds a token-level FSM whose alphabet is the
scanner's token tags (exact tag, or a group flag carried on that tag) and
drives it with the same greedy-longest-match-with-rollback discipline as
the scanner, plus the auxiliary bookkeeping — bracket-family balance
counters, trailing-punctuation trim — that §4.3 itself describes as
sitting alongside the FSM rather than as pure state transitions.
*/

// tokenSym is the token FSM's alphabet element: a scanner token's tag
// together with the groups that tag carries. Groups are a fixed function
// of tag (two tokens with the same tag always carry the same groups), so
// using the pair as a map key for literal edges behaves exactly like
// keying on tag alone, while letting class edges test group membership
// (§3 "Transitions may key on a specific tag OR on a group flag — literal
// keys win ties" — guaranteed here because fsm.step always tries the
// literal map before the class list).
type tokenSym struct {
	tag    tokenTag
	groups groupSet
}

type tokenFSM = fsm[tokenSym, EntityTag]

func isDomainSegmentKind(k tokenKind) bool {
	switch k {
	case tokenWord, tokenUWord, tokenASCIINumeric, tokenAlphaNumeric, tokenNum,
		tokenTLD, tokenUTLD, tokenLocalhost, tokenEmoji:
		return true
	}
	return false
}

func isTerminalSegmentKind(k tokenKind) bool {
	switch k {
	case tokenTLD, tokenUTLD, tokenLocalhost:
		return true
	}
	return false
}

func isTerminalSegSym(s tokenSym) bool { return isTerminalSegmentKind(s.tag.kind) }
func isNonTerminalDomainSegSym(s tokenSym) bool {
	return isDomainSegmentKind(s.tag.kind) && !isTerminalSegmentKind(s.tag.kind)
}
func isAnyDomainSegSym(s tokenSym) bool { return isDomainSegmentKind(s.tag.kind) }
func isLocalhostSym(s tokenSym) bool    { return s.tag.kind == tokenLocalhost }
func isTLDSegSym(s tokenSym) bool {
	return s.tag.kind == tokenTLD || s.tag.kind == tokenUTLD
}
func isDotSym(s tokenSym) bool    { return s.tag.kind == tokenDot }
func isHyphenSym(s tokenSym) bool { return s.tag.kind == tokenHyphen }
func isAtSym(s tokenSym) bool     { return s.tag.kind == tokenAt }
func isColonSym(s tokenSym) bool  { return s.tag.kind == tokenColon }
func isSlashSym(s tokenSym) bool  { return s.tag.kind == tokenSlash }
func isQuestionSym(s tokenSym) bool { return s.tag.kind == tokenQuestion }
func isHashSym(s tokenSym) bool   { return s.tag.kind == tokenHash }
func isMailtoSym(s tokenSym) bool { return s.tag.kind == tokenMailtoScheme }
func isGenericSchemeSym(s tokenSym) bool {
	return s.tag.kind == tokenScheme
}
func isSlashSchemeSym(s tokenSym) bool { return s.groups.has(groupSlashScheme) && s.tag.kind == tokenSlashScheme }

// isURLPathSym is §4.3's "url-path tokens": any token except whitespace
// or newline. Query ('?'...) and fragment ('#'...) spans are not modeled
// as distinct sub-states from path: nothing in §4.3 requires telling them
// apart operationally, since none of bracket-balance, trim, or href
// construction depend on which of the three a given trailing token came
// from — they are merged into one continuous freeform tail (flagged per
// §9's allowance to note divergence in the exact url-path token set).
func isURLPathSym(s tokenSym) bool {
	return s.tag.kind != tokenWS && s.tag.kind != tokenNL
}

// attachDomainAutomaton wires §4.3's DOMAIN grammar from node `from`: one
// or more domain-ish segments joined by DOT or HYPHEN, with no
// leading/trailing separator. A real domain needs an actual dot-separated
// label before a TLD/UTLD can close it — a lone word that happens to
// lexically equal a TLD ("email", "at", "world", ...) is not a domain by
// itself, and neither is a hyphen-joined run that merely ends in one
// ("not-an-email": hyphens stay inside one label, per §8 scenario 5,
// rather than introducing a new label the way a dot does). LOCALHOST is
// the one exception: it is a complete domain on its own with nothing
// before it (§8 scenario 4).
//
// terminalNode is accepting with terminalTag once a DOT-introduced label
// closes on a TLD/UTLD/LOCALHOST segment, or when the very first segment
// is LOCALHOST; nonTerminalNode is reached for every other case (including
// a TLD/UTLD/LOCALHOST segment reached via a HYPHEN, or a TLD/UTLD as the
// very first segment) and never accepts on its own, but both keep
// extending via further separators.
func attachDomainAutomaton(f *tokenFSM, from nodeID, terminalTag EntityTag) (terminalNode, nonTerminalNode nodeID) {
	dotMid := f.newNode()
	hyphenMid := f.newNode()
	terminalNode = f.newNode()
	f.setAccepting(terminalNode, terminalTag, 0)
	nonTerminalNode = f.newNode()

	f.addClass(from, isLocalhostSym, terminalNode)
	f.addClass(from, isTLDSegSym, nonTerminalNode)
	f.addClass(from, isNonTerminalDomainSegSym, nonTerminalNode)

	f.addClass(terminalNode, isDotSym, dotMid)
	f.addClass(terminalNode, isHyphenSym, hyphenMid)
	f.addClass(nonTerminalNode, isDotSym, dotMid)
	f.addClass(nonTerminalNode, isHyphenSym, hyphenMid)

	// A DOT starts a new label: a TLD/UTLD/LOCALHOST segment here is a
	// legitimate "label.tld" closing and may accept.
	f.addClass(dotMid, isTerminalSegSym, terminalNode)
	f.addClass(dotMid, isNonTerminalDomainSegSym, nonTerminalNode)

	// A HYPHEN stays inside the current label, so nothing reached this
	// way may close the domain, even a lexically TLD-like word.
	f.addClass(hyphenMid, isAnyDomainSegSym, nonTerminalNode)

	return terminalNode, nonTerminalNode
}

// attachPortAndPath wires the optional ":port", "/path", "?query" and
// "#fragment" tails onto a URL's accepted domain-terminal node (§4.3).
func attachPortAndPath(f *tokenFSM, terminal nodeID) {
	portColon := f.addClass(terminal, isColonSym, noNode)
	portDigits := f.addClass(portColon, func(s tokenSym) bool { return s.tag.kind == tokenNum }, noNode)
	f.setAccepting(portDigits, EntityURL, 0)

	tail := f.newNode()
	f.setAccepting(tail, EntityURL, 0)
	f.addClass(tail, isURLPathSym, tail)

	f.addClass(terminal, isSlashSym, tail)
	f.addClass(terminal, isQuestionSym, tail)
	f.addClass(terminal, isHashSym, tail)
	f.addClass(portDigits, isSlashSym, tail)
	f.addClass(portDigits, isQuestionSym, tail)
	f.addClass(portDigits, isHashSym, tail)
}

// buildTokenFSM assembles the token-level FSM for URL, EMAIL, localhost
// and custom-scheme entities (§4.3), given the same custom scheme
// registrations the character FSM was built from.
func buildTokenFSM(customSchemes []customScheme) *tokenFSM {
	f := newFSM[tokenSym, EntityTag]()
	start := f.start

	// Bare domain (no scheme): also doubles as the left-hand side of a
	// schemeless email address and as a plain "http://"-less URL.
	bareTerminal, bareNonTerminal := attachDomainAutomaton(f, start, EntityURL)
	attachPortAndPath(f, bareTerminal)
	emailAt := f.newNode()
	f.addClass(bareTerminal, isAtSym, emailAt)
	f.addClass(bareNonTerminal, isAtSym, emailAt)
	attachDomainAutomaton(f, emailAt, EntityEmail)

	// "scheme://domain..." (http, https, ftp, ftps).
	slashSchemeNode := f.addClass(start, isSlashSchemeSym, noNode)
	ssColon := f.addClass(slashSchemeNode, isColonSym, noNode)
	ssSlash1 := f.addClass(ssColon, isSlashSym, noNode)
	ssSlash2 := f.addClass(ssSlash1, isSlashSym, noNode)
	schemeTerminal, _ := attachDomainAutomaton(f, ssSlash2, EntityURL)
	attachPortAndPath(f, schemeTerminal)

	// "scheme:freeform" (file, and any other non-slash, non-mailto,
	// non-custom SCHEME registration).
	schemeNode := f.addClass(start, isGenericSchemeSym, noNode)
	genColon := f.addClass(schemeNode, isColonSym, noNode)
	f.setAccepting(genColon, EntityURL, 0)
	f.addClass(genColon, isURLPathSym, genColon)

	// "mailto:local@domain". A bare "mailto:local" with no "@" never
	// accepts: the local-part automaton below is the same DOMAIN grammar,
	// with its terminal node made non-accepting, so even a local-part that
	// ends in a dot-introduced TLD ("mailto:foo.com") only closes once an
	// "@" and a right-hand domain follow.
	mailtoNode := f.addClass(start, isMailtoSym, noNode)
	mailtoColon := f.addClass(mailtoNode, isColonSym, noNode)
	mtTerminal, mtNonTerminal := attachDomainAutomaton(f, mailtoColon, EntityEmail)
	f.node(mtTerminal).hasTag = false
	mtAt := f.newNode()
	f.addClass(mtTerminal, isAtSym, mtAt)
	f.addClass(mtNonTerminal, isAtSym, mtAt)
	attachDomainAutomaton(f, mtAt, EntityEmail)

	// Custom schemes (§4.5), sorted so shared prefixes collapse the same
	// way the scanner's chains do.
	schemes := append([]customScheme(nil), customSchemes...)
	sortCustomSchemes(schemes)
	for _, cs := range schemes {
		groups := customSchemeGroups(cs.name)
		if cs.slashSlash {
			groups |= groupSlashScheme
		} else {
			groups |= groupScheme
		}
		sym := tokenSym{tag: customSchemeTag(cs.name), groups: groups}
		csNode := f.addLiteral(start, sym, noNode)
		colonSym := tokenSym{tag: simpleTag(tokenColon)}
		csColon := f.addLiteral(csNode, colonSym, noNode)
		tag := EntityTag(cs.name)
		if cs.slashSlash {
			slashSym := tokenSym{tag: simpleTag(tokenSlash)}
			csSlash1 := f.addLiteral(csColon, slashSym, noNode)
			csSlash2 := f.addLiteral(csSlash1, slashSym, noNode)
			f.setAccepting(csSlash2, tag, groups)
			f.addClass(csSlash2, isURLPathSym, csSlash2)
		} else {
			f.setAccepting(csColon, tag, groups)
			f.addClass(csColon, isURLPathSym, csColon)
		}
	}

	return f
}

// balanceVec tracks the running per-bracket-family count used by both
// matchEntity (gating whether a closing bracket may be consumed) and
// trimTrailing (deciding whether a trailing closer is "extra" and should
// be trimmed), §4.3 "Bracket balance".
type balanceVec [4]int

func (b *balanceVec) apply(k tokenKind) {
	if fam, isOpen := openBracketFamily(k); isOpen {
		b[fam]++
	} else if fam, isClose := closeBracketFamily(k); isClose {
		b[fam]--
	}
}

// matchEntity greedily walks f from tokens[start], stopping at a closing
// bracket whose family balance is not currently positive (§4.3 "A closing
// bracket is included only if the running counter is > 0"), and returns
// the end index (exclusive) and tag of the longest accepted match, or
// ok=false if no accepting state was ever reached.
func matchEntity(f *tokenFSM, tokens []Token, start int) (end int, tag EntityTag, ok bool) {
	cur := f.start
	lastAcceptEnd := -1
	var lastAcceptTag EntityTag
	var bal balanceVec

	j := start
	for j < len(tokens) {
		tok := tokens[j]
		if fam, isClose := closeBracketFamily(tok.tag.kind); isClose && bal[fam] <= 0 {
			break
		}
		sym := tokenSym{tag: tok.tag, groups: tok.Groups}
		next := f.step(cur, sym)
		if next == noNode {
			break
		}
		bal.apply(tok.tag.kind)
		cur = next
		j++
		if f.accepts(cur) {
			lastAcceptEnd = j
			lastAcceptTag = f.node(cur).tag
		}
	}
	if lastAcceptEnd == -1 {
		return start, "", false
	}
	return lastAcceptEnd, lastAcceptTag, true
}

// trimTrailing strips a trailing run of trim-set punctuation and
// unmatched closing brackets from tokens[start:end] (§4.3
// "Trailing-punctuation trim"), returning the shrunk end index.
func trimTrailing(tokens []Token, start, end int) int {
	n := end - start
	if n == 0 {
		return end
	}
	prefixBal := make([]balanceVec, n+1)
	for idx := 0; idx < n; idx++ {
		prefixBal[idx+1] = prefixBal[idx]
		prefixBal[idx+1].apply(tokens[start+idx].tag.kind)
	}
	for end > start {
		idx := end - start - 1
		k := tokens[start+idx].tag.kind
		if trimmable(k) {
			end--
			continue
		}
		if fam, isClose := closeBracketFamily(k); isClose && prefixBal[idx][fam] <= 0 {
			end--
			continue
		}
		break
	}
	return end
}

func concatValue(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Value)
	}
	return sb.String()
}

func singleTokenEntity(t Token) Entity {
	tag := EntityText
	switch t.tag.kind {
	case tokenWS:
		tag = EntityWS
	case tokenNL:
		tag = EntityNL
	}
	return Entity{
		Tag:    tag,
		Value:  t.Value,
		Start:  t.Start,
		End:    t.End,
		Tokens: []Token{t},
	}
}

func buildEntity(options Options, tokens []Token, start, end int, tag EntityTag) Entity {
	sub := append([]Token(nil), tokens[start:end]...)
	value := concatValue(sub)
	e := Entity{
		Tag:    tag,
		Value:  value,
		Start:  sub[0].Start,
		End:    sub[len(sub)-1].End,
		IsLink: true,
		Href:   buildHref(options, tag, value),
		Tokens: sub,
	}
	if tag == EntityEmail && !options.DetectEmail {
		return demoteToText(e)
	}
	if !runValidate(options, e) {
		return demoteToText(e)
	}
	return e
}

func demoteToText(e Entity) Entity {
	e.Tag = EntityText
	e.IsLink = false
	e.Href = ""
	return e
}

// parseEntities drives the full greedy-match / trim / bracket-balance
// parse over tokens, producing the complete partition of entities §8
// requires (every byte of the input covered exactly once, in order).
func parseEntities(f *tokenFSM, tokens []Token, options Options) []Entity {
	var entities []Entity
	i := 0
	n := len(tokens)
	for i < n {
		end, tag, ok := matchEntity(f, tokens, i)
		if ok {
			end = trimTrailing(tokens, i, end)
		}
		if !ok || end <= i {
			entities = append(entities, singleTokenEntity(tokens[i]))
			i++
			continue
		}
		entities = append(entities, buildEntity(options, tokens, i, end, tag))
		i = end
	}
	return entities
}
