package linkify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTrieRoundTrip(t *testing.T) {
	words := []string{"com", "comcast", "co", "coop", "cool"}
	encoded := encodeTrieForTest(words)
	got := decodeTrie(encoded)
	assert.ElementsMatch(t, words, got)
}

func TestDecodeTrieASCIITable(t *testing.T) {
	require.NotEmpty(t, asciiTLDs)
	assert.Contains(t, asciiTLDs, "com")
	assert.Contains(t, asciiTLDs, "org")
	assert.Contains(t, asciiTLDs, "net")
}

func TestDecodeTrieUTLDTable(t *testing.T) {
	require.NotEmpty(t, utlds)
	assert.Contains(t, utlds, "中国")
	assert.Contains(t, utlds, "рф")
}

func TestCustomSchemeGroups(t *testing.T) {
	assert.Equal(t, groupDomain, customSchemeGroups("my-app"))
	assert.Equal(t, groupASCIINumeric, customSchemeGroups("app2"))
	assert.Equal(t, groupASCII, customSchemeGroups("steam"))
	assert.Equal(t, groupNumeric, customSchemeGroups("007"))
}

// encodeTrieForTest mirrors the encode half of the prefix-trie format
// decodeTrie expects (push-a-common-prefix / pop-and-flush-on-digit-run),
// kept local to the test so the table-generation tooling (a throwaway
// Python script, not part of this module) doesn't need a Go twin.
func encodeTrieForTest(words []string) string {
	sorted := append([]string(nil), words...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	var sb []rune
	var prev string
	for _, w := range sorted {
		common := 0
		for common < len(prev) && common < len(w) && prev[common] == w[common] {
			common++
		}
		pop := len(prev) - common
		sb = append(sb, []rune(itoaForTest(pop))...)
		sb = append(sb, []rune(w[common:])...)
		prev = w
	}
	sb = append(sb, []rune(itoaForTest(len(prev)))...)
	return string(sb)
}

func itoaForTest(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
