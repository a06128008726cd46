package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toasa/nfasim/internal/automaton"
	"github.com/toasa/nfasim/internal/render"
)

func TestTextContainsAllFields(t *testing.T) {
	n, err := automaton.LetterNFA('a')
	require.NoError(t, err)

	out := render.Text(n)
	for _, field := range []string{"Q = {", "Σ = {", "δ = {", "q0 = ", "F = {"} {
		assert.True(t, strings.Contains(out, field), "missing field %q in:\n%s", field, out)
	}
}

func TestDOTHasStartBoxAndAcceptCircle(t *testing.T) {
	n, err := automaton.LetterNFA('a')
	require.NoError(t, err)

	out := render.DOT(n)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, "shape = box")
	assert.Contains(t, out, "shape = doublecircle")
}
