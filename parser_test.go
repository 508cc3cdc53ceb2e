package linkify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseText(t *testing.T, s string, schemes ...customScheme) []Entity {
	t.Helper()
	cf := buildCharFSM(schemes)
	tf := buildTokenFSM(schemes)
	tokens := scan(cf, s)
	return parseEntities(tf, tokens, DefaultOptions)
}

func linkEntities(entities []Entity) []Entity {
	var links []Entity
	for _, e := range entities {
		if e.IsLink {
			links = append(links, e)
		}
	}
	return links
}

func TestParseBareDomainURL(t *testing.T) {
	entities := parseText(t, "example.com")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, EntityURL, links[0].Tag)
	assert.Equal(t, "example.com", links[0].Value)
	assert.Equal(t, "http://example.com", links[0].Href)
}

func TestParseNonTerminalDomainIsNotALink(t *testing.T) {
	// "xyz" is itself a registered TLD word; a hyphen-joined run ending in
	// it must still not close as a domain (hyphens stay inside one label,
	// they never introduce a new dot-separated one).
	entities := parseText(t, "my-thing-xyz")
	links := linkEntities(entities)
	assert.Empty(t, links)
}

func TestParseBareTLDWordIsNotALink(t *testing.T) {
	for _, word := range []string{"email", "at", "world", "wiki", "com"} {
		entities := parseText(t, word)
		links := linkEntities(entities)
		assert.Empty(t, links, "bare TLD-like word %q must not be a link", word)
	}
}

func TestParseHyphenJoinedWordEndingInTLDIsNotALink(t *testing.T) {
	entities := parseText(t, "not-an-email")
	links := linkEntities(entities)
	assert.Empty(t, links)
}

func TestParseScenario5EmailAtNotAnEmail(t *testing.T) {
	entities := parseText(t, "Email me at not-an-email@.")
	links := linkEntities(entities)
	assert.Empty(t, links)
}

func TestParseLocalhostIsALink(t *testing.T) {
	entities := parseText(t, "localhost:8080/path")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, "localhost:8080/path", links[0].Value)
	assert.Equal(t, "http://localhost:8080/path", links[0].Href)
}

func TestParseSchemeURLWithPath(t *testing.T) {
	entities := parseText(t, "https://example.com/a/b?x=1#frag")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, EntityURL, links[0].Tag)
	assert.Equal(t, "https://example.com/a/b?x=1#frag", links[0].Value)
}

func TestParseURLWithPort(t *testing.T) {
	entities := parseText(t, "example.com:8080/path")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, "example.com:8080/path", links[0].Value)
}

func TestParseEmailAddress(t *testing.T) {
	entities := parseText(t, "alice@example.com")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, EntityEmail, links[0].Tag)
	assert.Equal(t, "alice@example.com", links[0].Value)
	assert.Equal(t, "mailto:alice@example.com", links[0].Href)
}

func TestParseMailtoPrefixedEmail(t *testing.T) {
	entities := parseText(t, "mailto:alice@example.com")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, EntityEmail, links[0].Tag)
	assert.Equal(t, "mailto:alice@example.com", links[0].Value)
	assert.Equal(t, "mailto:alice@example.com", links[0].Href)
}

func TestParseTrailingPunctuationTrimmed(t *testing.T) {
	entities := parseText(t, "visit example.com.")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, "example.com", links[0].Value)
}

func TestParseUnbalancedClosingParenTrimmed(t *testing.T) {
	entities := parseText(t, "(see example.com)")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, "example.com", links[0].Value)
}

func TestParseBalancedParensKeptInPath(t *testing.T) {
	entities := parseText(t, "https://example.com/wiki/Foo_(bar)")
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/wiki/Foo_(bar)", links[0].Value)
}

func TestParseCustomSchemeURL(t *testing.T) {
	cs := customScheme{name: "steam", slashSlash: true}
	entities := parseText(t, "steam://store/123", cs)
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, EntityTag("steam"), links[0].Tag)
	assert.Equal(t, "steam://store/123", links[0].Value)
}

func TestParseCustomSchemeWithoutSlashSlash(t *testing.T) {
	cs := customScheme{name: "myapp", slashSlash: false}
	entities := parseText(t, "myapp:open", cs)
	links := linkEntities(entities)
	require.Len(t, links, 1)
	assert.Equal(t, EntityTag("myapp"), links[0].Tag)
	assert.Equal(t, "myapp:open", links[0].Value)
}

func TestParseCompleteness(t *testing.T) {
	s := "hello example.com, visit https://a.com/x and email a@b.com!"
	entities := parseText(t, s)
	var covered string
	for _, e := range entities {
		covered += e.Value
	}
	assert.Equal(t, s, covered)
}

func TestTrimTrailingEmptySpan(t *testing.T) {
	assert.Equal(t, 3, trimTrailing(nil, 3, 3))
}
