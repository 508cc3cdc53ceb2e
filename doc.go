/*
Package linkify finds and classifies hyperlink-like substrings — URLs,
email addresses, custom-scheme references, and localhost references —
inside arbitrary Unicode text.

The package does not walk or rewrite HTML; it only classifies spans of an
input string. Callers that want clickable markup take the Match or Entity
values returned here and do the rendering themselves.

Usage

The main entry points are Tokenize, which returns every entity (links and
inert text alike) covering the whole input, and Find, which filters that
down to the linked entities only. Test reports whether an entire string is
a single entity of a given kind.

	for _, m := range linkify.Find("visit https://example.com today", nil) {
		fmt.Println(m.Href)
	}

Both functions build on a cached, immutable pair of finite state machines:
a character-level scanner FSM that partitions text into tagged tokens, and
a token-level parser FSM that merges tokens into entities. The FSM pair is
built lazily on first use and rebuilt only when RegisterCustomProtocol,
RegisterPlugin, RegisterTokenPlugin, or Reset change the registrations that
feed it; see cache.go for the copy-on-write details.

Debugging

The Debug function prints a []Entity slice in a human-readable form, for
tests and ad hoc inspection. Its format is unspecified and should not be
parsed.
*/
package linkify
