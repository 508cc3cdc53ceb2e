package linkify

import "strings"

// decodeTrie decodes a prefix-trie-encoded TLD table (§6 "TLD table") back
// into a sorted slice of words. Encoding alternates runs of literal
// characters, which push onto an implicit stack extending the current
// prefix, with runs of decimal digits, which first emit the current stack
// contents (joined) as one complete word and then pop that many trailing
// characters off the stack before the next literal run resumes. A decimal
// run of "0" is a pure flush with no backtrack: it emits a word that is a
// prefix of the next one ("ac" before "academy"), and before the very
// first word it emits nothing, since the stack is still empty. The table
// ends with a run that pops the whole stack.
func decodeTrie(encoded string) []string {
	var stack []rune
	var words []string
	runes := []rune(encoded)
	n := len(runes)
	i := 0
	for i < n {
		if runes[i] >= '0' && runes[i] <= '9' {
			j := i
			count := 0
			for j < n && runes[j] >= '0' && runes[j] <= '9' {
				count = count*10 + int(runes[j]-'0')
				j++
			}
			if len(stack) > 0 {
				words = append(words, string(stack))
			}
			if count > len(stack) {
				count = len(stack)
			}
			stack = stack[:len(stack)-count]
			i = j
			continue
		}
		stack = append(stack, runes[i])
		i++
	}
	return words
}

var asciiTLDs = decodeTrie(asciiTLDEncoded)
var utlds = decodeTrie(utldEncoded)

// customSchemeGroups computes the group flags a registered custom scheme
// carries on its accepting node (§4.2 "Custom-scheme flag assignment").
func customSchemeGroups(scheme string) groupSet {
	switch {
	case strings.ContainsRune(scheme, '-'):
		return groupDomain
	case !strings.ContainsFunc(scheme, isASCIILetter):
		return groupNumeric
	case strings.ContainsFunc(scheme, isDigit):
		return groupASCIINumeric
	default:
		return groupASCII
	}
}
