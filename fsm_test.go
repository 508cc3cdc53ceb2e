package linkify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSMLiteralChainSharesPrefix(t *testing.T) {
	f := newFSM[rune, string]()
	n1 := f.addChain(f.start, []rune("http"), "http", 0, "word", 0, nil)
	n2 := f.addChain(f.start, []rune("https"), "https", 0, "word", 0, nil)
	require.NotEqual(t, n1, n2)

	// "http" and "https" must share every node up to "http" itself.
	cur := f.start
	for _, r := range []rune("http") {
		cur = f.step(cur, r)
		require.NotEqual(t, noNode, cur)
	}
	assert.True(t, f.accepts(cur))
	assert.Equal(t, "http", f.node(cur).tag)

	next := f.step(cur, 's')
	require.NotEqual(t, noNode, next)
	assert.True(t, f.accepts(next))
	assert.Equal(t, "https", f.node(next).tag)
}

func TestFSMAddLiteralReusesExistingEdge(t *testing.T) {
	f := newFSM[rune, string]()
	a := f.addLiteral(f.start, 'x', noNode)
	b := f.addLiteral(f.start, 'x', noNode)
	assert.Equal(t, a, b)
}

func TestFSMClassEdgesTriedInOrder(t *testing.T) {
	f := newFSM[rune, string]()
	isVowel := func(r rune) bool { return r == 'a' || r == 'e' || r == 'i' || r == 'o' || r == 'u' }
	isLetter := func(r rune) bool { return r >= 'a' && r <= 'z' }

	vowelNode := f.addClass(f.start, isVowel, noNode)
	f.setAccepting(vowelNode, "vowel", 0)
	letterNode := f.addClass(f.start, isLetter, noNode)
	f.setAccepting(letterNode, "letter", 0)

	got := f.step(f.start, 'a')
	require.NotEqual(t, noNode, got)
	assert.Equal(t, "vowel", f.node(got).tag)

	got = f.step(f.start, 'b')
	require.NotEqual(t, noNode, got)
	assert.Equal(t, "letter", f.node(got).tag)
}

func TestFSMRunGreedyLongestMatchWithRollback(t *testing.T) {
	f := newFSM[rune, string]()
	isLetter := func(r rune) bool { return r >= 'a' && r <= 'z' }
	run := f.addClass(f.start, isLetter, noNode)
	f.setAccepting(run, "word", 0)
	f.addClass(run, isLetter, run)
	sym := f.newNode()
	f.setAccepting(sym, "sym", 0)
	f.setDefault(f.start, sym)

	var got []string
	f.run([]rune("ab1cd"), func(tag string, groups groupSet, start, end int) {
		got = append(got, tag)
	})
	assert.Equal(t, []string{"word", "sym", "word"}, got)
}

func TestFSMDefaultOnlyAppliesAtStart(t *testing.T) {
	f := newFSM[rune, string]()
	mid := f.addLiteral(f.start, 'a', noNode)
	f.setAccepting(mid, "a", 0)
	fallback := f.newNode()
	f.setAccepting(fallback, "fallback", 0)
	f.setDefault(f.start, fallback)

	// From start, an unmatched symbol takes the default edge.
	assert.Equal(t, fallback, f.step(f.start, 'z'))
	// From mid (not start), the same default is not honored.
	assert.Equal(t, noNode, f.step(mid, 'z'))
}
