// Package sim implements the ε-closure / subset simulation that
// decides NFA acceptance: it computes the closure with a visited-set
// worklist, so no state is expanded more than once, and represents a
// word uniformly as a []symbol.Sym regardless of length.
package sim

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/toasa/nfasim/internal/automaton"
	"github.com/toasa/nfasim/internal/symbol"
)

// Word wraps a single symbol into the one-element word convenience
// callers can pass to Accepts.
func Word(a symbol.Sym) []symbol.Sym {
	return []symbol.Sym{a}
}

// EpsClosure returns the least superset of states closed under
// ε-transitions of n. Computed by worklist so no state is expanded
// more than once.
func EpsClosure(n *automaton.NFA, states mapset.Set[symbol.Sid]) mapset.Set[symbol.Sid] {
	closure := states.Clone()
	worklist := states.ToSlice()
	for len(worklist) > 0 {
		q := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for next := range n.Delta().Image(q, symbol.Epsilon).Iter() {
			if !closure.Contains(next) {
				closure.Add(next)
				worklist = append(worklist, next)
			}
		}
	}
	return closure
}

// Step returns ⋃_{q ∈ states} δ(q, a) for a non-ε symbol a.
func Step(n *automaton.NFA, states mapset.Set[symbol.Sid], a symbol.Sym) mapset.Set[symbol.Sid] {
	result := mapset.NewThreadUnsafeSet[symbol.Sid]()
	for q := range states.Iter() {
		result = result.Union(n.Delta().Image(q, a))
	}
	return result
}

// Accepts decides whether n accepts the word w: it computes the
// ε-closure of {q₀}, then for each symbol performs one Step followed
// by another ε-closure, and finally tests intersection with F. An
// empty w yields acceptance iff q₀'s ε-closure already intersects F.
func Accepts(n *automaton.NFA, w []symbol.Sym) bool {
	states := EpsClosure(n, mapset.NewThreadUnsafeSet(n.Start()))
	for _, a := range w {
		states = EpsClosure(n, Step(n, states, a))
	}
	return states.Intersect(n.Final()).Cardinality() > 0
}
