package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toasa/nfasim/internal/automaton"
	"github.com/toasa/nfasim/internal/symbol"
)

func mustLetter(t *testing.T, s symbol.Sym) *automaton.NFA {
	t.Helper()
	n, err := automaton.LetterNFA(s)
	require.NoError(t, err)
	return n
}

// P1: q0 in Q, F subset of Q, every transition target in Q, epsilon
// never in Sigma.
func assertInvariants(t *testing.T, n *automaton.NFA) {
	t.Helper()
	assert.True(t, n.Q().Contains(n.Start()), "q0 must be in Q")
	assert.True(t, n.Final().IsSubset(n.Q()), "F must be a subset of Q")
	assert.False(t, n.Sigma().Contains(symbol.Epsilon), "epsilon must never be in Sigma")
	for _, e := range n.Delta().Entries() {
		assert.True(t, n.Q().Contains(e.From), "delta source must be in Q")
		assert.True(t, e.To.IsSubset(n.Q()), "delta target must be in Q")
	}
}

func TestLetterNFA(t *testing.T) {
	n := mustLetter(t, 'a')
	assertInvariants(t, n)
	assert.Equal(t, 2, n.Q().Cardinality())
	assert.Equal(t, 1, n.Final().Cardinality())
}

func TestLetterNFARejectsEpsilonAndMeta(t *testing.T) {
	_, err := automaton.LetterNFA(symbol.Epsilon)
	assert.Error(t, err)

	_, err = automaton.LetterNFA(symbol.Star)
	assert.Error(t, err)
}

// P2: concat/union/iterate each produce exactly one accepting state.
func TestCombinatorsProduceSingleAcceptState(t *testing.T) {
	a := mustLetter(t, 'a')
	b := mustLetter(t, 'b')

	assert.Equal(t, 1, automaton.Concat(a, b).Final().Cardinality())
	assert.Equal(t, 1, automaton.Union(a, b).Final().Cardinality())
	assert.Equal(t, 1, automaton.Iterate(a).Final().Cardinality())
}

func TestCombinatorInvariants(t *testing.T) {
	a := mustLetter(t, 'a')
	b := mustLetter(t, 'b')

	assertInvariants(t, automaton.Concat(a, b))
	assertInvariants(t, automaton.Union(a, b))
	assertInvariants(t, automaton.Iterate(a))
	assertInvariants(t, automaton.EmptyWord())
}

// P3: the tagged copies inside a combinator are disjoint from each
// other and from the two fresh states.
func TestConcatStateDisjointness(t *testing.T) {
	a := mustLetter(t, 'a')
	b := mustLetter(t, 'a') // same letter, independently built states

	c := automaton.Concat(a, b)
	assert.Equal(t, a.Q().Cardinality()+b.Q().Cardinality()+2, c.Q().Cardinality(),
		"concat's Q must be the disjoint union of renamed operands plus two fresh states")
}

func TestNullOperandPolicy(t *testing.T) {
	a := mustLetter(t, 'a')

	assert.Same(t, a, automaton.Concat(nil, a))
	assert.Same(t, a, automaton.Concat(a, nil))
	assert.Nil(t, automaton.Concat(nil, nil))

	assert.Same(t, a, automaton.Union(nil, a))
	assert.Same(t, a, automaton.Union(a, nil))
	assert.Nil(t, automaton.Union(nil, nil))

	assert.Nil(t, automaton.Iterate(nil))
}
