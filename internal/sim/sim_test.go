package sim_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toasa/nfasim/internal/automaton"
	"github.com/toasa/nfasim/internal/sim"
	"github.com/toasa/nfasim/internal/symbol"
)

func word(s string) []symbol.Sym {
	w := make([]symbol.Sym, len(s))
	for i, r := range s {
		w[i] = symbol.Sym(r)
	}
	return w
}

// P4: letterNFA(a) accepts exactly the one-symbol word {a}.
func TestAcceptsLetter(t *testing.T) {
	n, err := automaton.LetterNFA('a')
	require.NoError(t, err)

	assert.True(t, sim.Accepts(n, sim.Word('a')))
	assert.False(t, sim.Accepts(n, word("")))
	assert.False(t, sim.Accepts(n, sim.Word('b')))
	assert.False(t, sim.Accepts(n, word("aa")))
}

// P5: union soundness.
func TestAcceptsUnion(t *testing.T) {
	a, _ := automaton.LetterNFA('a')
	b, _ := automaton.LetterNFA('b')
	u := automaton.Union(a, b)

	assert.True(t, sim.Accepts(u, word("a")))
	assert.True(t, sim.Accepts(u, word("b")))
	assert.False(t, sim.Accepts(u, word("ab")))
	assert.False(t, sim.Accepts(u, word("")))
}

// P6: concat soundness.
func TestAcceptsConcat(t *testing.T) {
	a, _ := automaton.LetterNFA('a')
	b, _ := automaton.LetterNFA('b')
	c := automaton.Concat(a, b)

	assert.True(t, sim.Accepts(c, word("ab")))
	assert.False(t, sim.Accepts(c, word("a")))
	assert.False(t, sim.Accepts(c, word("b")))
	assert.False(t, sim.Accepts(c, word("ba")))
}

// P7: star soundness, including the empty word.
func TestAcceptsStar(t *testing.T) {
	a, _ := automaton.LetterNFA('a')
	star := automaton.Iterate(a)

	assert.True(t, sim.Accepts(star, word("")))
	assert.True(t, sim.Accepts(star, word("a")))
	assert.True(t, sim.Accepts(star, word("aaa")))
	assert.False(t, sim.Accepts(star, word("b")))
	assert.False(t, sim.Accepts(star, word("ab")))
}

// P8: epsilon-closure fixpoint and inflationary properties.
func TestEpsClosureFixpoint(t *testing.T) {
	a, _ := automaton.LetterNFA('a')
	star := automaton.Iterate(a)

	seed := mapset.NewThreadUnsafeSet(star.Start())
	once := sim.EpsClosure(star, seed)
	twice := sim.EpsClosure(star, once)

	assert.True(t, seed.IsSubset(once), "S subset of epsClosure(S)")
	assert.True(t, once.Equal(twice), "epsClosure must be idempotent")
}
