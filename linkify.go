package linkify

// Tokenize runs the scanner and parser over text and returns the
// complete partition of text into entities, in order, covering every
// byte exactly once (§8 "Completeness"). A nil options is equivalent to
// &DefaultOptions.
func Tokenize(text string, options *Options) []Entity {
	opts, err := NewOptions(options)
	if err != nil {
		opts = DefaultOptions
	}
	snap := currentSnapshot()
	tokens := scan(snap.chars, text)
	return parseEntities(snap.tokens, tokens, opts)
}

// Find returns every link-like entity in text as a Match, optionally
// restricted to one or more entity kinds (e.g. Find(text, nil, "url") or
// Find(text, nil, "url", "email")). With no kinds, every IsLink entity is
// returned.
func Find(text string, options *Options, kinds ...string) []Match {
	entities := Tokenize(text, options)
	var matches []Match
	for _, e := range entities {
		if !e.IsLink {
			continue
		}
		if len(kinds) > 0 && !containsString(kinds, string(e.Tag)) {
			continue
		}
		matches = append(matches, e.toMatch())
	}
	return matches
}

// Test reports whether text, in its entirety, is a single link-like
// entity, optionally restricted to one or more entity kinds — e.g.
// Test("example.com") is true but Test("see example.com") is false.
func Test(text string, kinds ...string) bool {
	entities := Tokenize(text, nil)
	if len(entities) != 1 || !entities[0].IsLink {
		return false
	}
	if len(kinds) > 0 && !containsString(kinds, string(entities[0].Tag)) {
		return false
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
