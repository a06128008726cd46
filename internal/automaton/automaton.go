// Package automaton implements the immutable NFA value type and the
// Thompson-construction combinators: LetterNFA, Concat, Union and
// Iterate. Every combinator renames its operands' states by tag so
// that the result's state set is, by construction, a disjoint union
// of its inputs' states plus at most two fresh states.
package automaton

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/toasa/nfasim/internal/symbol"
)

// delta key identifies one (state, symbol) cell of the transition
// relation. The symbol is ε or a member of the owning NFA's Σ.
type deltaKey struct {
	state symbol.Sid
	on    symbol.Sym
}

// Delta is the transition relation δ : Q × (Σ ∪ {ε}) → 𝒫(Q). An absent
// key is equivalent to an empty image.
type Delta map[deltaKey]mapset.Set[symbol.Sid]

func newDelta() Delta {
	return make(Delta)
}

func (d Delta) add(from symbol.Sid, on symbol.Sym, to symbol.Sid) {
	key := deltaKey{from, on}
	set, ok := d[key]
	if !ok {
		set = mapset.NewThreadUnsafeSet[symbol.Sid]()
		d[key] = set
	}
	set.Add(to)
}

// Image returns δ(q, a), or an empty set if the pair has no entries.
func (d Delta) Image(q symbol.Sid, a symbol.Sym) mapset.Set[symbol.Sid] {
	if set, ok := d[deltaKey{q, a}]; ok {
		return set
	}
	return mapset.NewThreadUnsafeSet[symbol.Sid]()
}

// Entry is one (state, symbol) -> states cell of a transition
// relation, exposed for diagnostic rendering.
type Entry struct {
	From symbol.Sid
	On   symbol.Sym
	To   mapset.Set[symbol.Sid]
}

// Entries returns every cell of d with at least one target state.
// Iteration order is unspecified and varies between calls.
func (d Delta) Entries() []Entry {
	entries := make([]Entry, 0, len(d))
	for key, to := range d {
		entries = append(entries, Entry{From: key.state, On: key.on, To: to})
	}
	return entries
}

func (d Delta) merge(other Delta) {
	for key, set := range other {
		existing, ok := d[key]
		if !ok {
			d[key] = set.Clone()
			continue
		}
		existing.Append(set.ToSlice()...)
	}
}

// NFA is the immutable 5-tuple (Q, Σ, δ, q₀, F). Values are built only
// by the combinators in this package (or mkNFA, for internal use), and
// are never mutated once constructed: every combinator that needs to
// extend an operand's transition relation first clones it.
type NFA struct {
	q     mapset.Set[symbol.Sid]
	sigma mapset.Set[symbol.Sym]
	delta Delta
	start symbol.Sid
	final mapset.Set[symbol.Sid]
}

// Q returns the automaton's state set.
func (n *NFA) Q() mapset.Set[symbol.Sid] { return n.q.Clone() }

// Sigma returns the automaton's alphabet (never containing ε).
func (n *NFA) Sigma() mapset.Set[symbol.Sym] { return n.sigma.Clone() }

// Delta returns a snapshot of the automaton's transition relation: the
// map itself and every image set in it are copies, so a caller cannot
// reach back into n and mutate its stored transitions through the
// returned value.
func (n *NFA) Delta() Delta {
	out := make(Delta, len(n.delta))
	for key, to := range n.delta {
		out[key] = to.Clone()
	}
	return out
}

// Start returns q₀.
func (n *NFA) Start() symbol.Sid { return n.start }

// Final returns F.
func (n *NFA) Final() mapset.Set[symbol.Sid] { return n.final.Clone() }

// mkNFA builds an NFA, enforcing the structural invariants every
// well-formed automaton must satisfy (q0 in Q, F a subset of Q, every
// transition endpoint in Q, epsilon never a member of Sigma). A
// violation is a programmer error in a combinator and panics rather
// than returning an error: no caller of the public combinators can
// trigger it with well-formed inputs.
func mkNFA(q mapset.Set[symbol.Sid], sigma mapset.Set[symbol.Sym], delta Delta, start symbol.Sid, final mapset.Set[symbol.Sid]) *NFA {
	if !q.Contains(start) {
		panic("automaton: invariant violated: q0 not in Q")
	}
	if !final.IsSubset(q) {
		panic("automaton: invariant violated: F not a subset of Q")
	}
	if sigma.Contains(symbol.Epsilon) {
		panic("automaton: invariant violated: epsilon in Sigma")
	}
	for key, to := range delta {
		if !q.Contains(key.state) {
			panic("automaton: invariant violated: delta source not in Q")
		}
		if key.on != symbol.Epsilon && !sigma.Contains(key.on) {
			panic("automaton: invariant violated: delta label not in Sigma+epsilon")
		}
		if !to.IsSubset(q) {
			panic("automaton: invariant violated: delta target not in Q")
		}
	}
	return &NFA{q: q, sigma: sigma, delta: delta, start: start, final: final}
}

// InvalidSymbolError reports that a caller tried to build a letter NFA
// over ε or a reserved metacharacter.
type InvalidSymbolError struct {
	Sym symbol.Sym
}

func (e *InvalidSymbolError) Error() string {
	return "automaton: invalid letter symbol: " + e.Sym.String()
}

// EmptyWord builds the one-state automaton accepting exactly the
// empty word: its single state is both start and final, with no
// transitions at all. The compiler uses this to resolve a completed
// alternative that accumulated zero atoms (e.g. the middle branch of
// "a||b", or an entirely empty "()" group) to a real automaton rather
// than the ∅ fold sentinel.
func EmptyWord() *NFA {
	s := symbol.Fresh()
	states := mapset.NewThreadUnsafeSet(s)
	return mkNFA(states, mapset.NewThreadUnsafeSet[symbol.Sym](), newDelta(), s, states.Clone())
}

// LetterNFA builds the two-state automaton accepting exactly the
// one-symbol word {a}. It fails for ε and for the reserved
// metacharacters, neither of which is a valid ordinary alphabet
// letter.
func LetterNFA(a symbol.Sym) (*NFA, error) {
	if !symbol.IsLetter(a) {
		return nil, &InvalidSymbolError{Sym: a}
	}
	p := symbol.Fresh()
	q := symbol.Fresh()

	states := mapset.NewThreadUnsafeSet(p, q)
	sigma := mapset.NewThreadUnsafeSet(a)
	delta := newDelta()
	delta.add(p, a, q)
	final := mapset.NewThreadUnsafeSet(q)

	return mkNFA(states, sigma, delta, p, final), nil
}

// renamed is a tag-renamed, structurally identical copy of an NFA: its
// states, alphabet and transitions are carried over unchanged except
// every Sid is rewritten through symbol.Pair(_, tag). This is the
// mechanism that lets combined automata share no state with either
// operand without a global id allocator.
type renamed struct {
	q     mapset.Set[symbol.Sid]
	sigma mapset.Set[symbol.Sym]
	delta Delta
	start symbol.Sid
	final mapset.Set[symbol.Sid]
}

func rename(n *NFA, tag symbol.Tag) renamed {
	q := mapset.NewThreadUnsafeSet[symbol.Sid]()
	for id := range n.q.Iter() {
		q.Add(symbol.Pair(id, tag))
	}
	final := mapset.NewThreadUnsafeSet[symbol.Sid]()
	for id := range n.final.Iter() {
		final.Add(symbol.Pair(id, tag))
	}
	delta := newDelta()
	for key, to := range n.delta {
		renamedFrom := symbol.Pair(key.state, tag)
		for id := range to.Iter() {
			delta.add(renamedFrom, key.on, symbol.Pair(id, tag))
		}
	}
	return renamed{
		q:     q,
		sigma: n.sigma.Clone(),
		delta: delta,
		start: symbol.Pair(n.start, tag),
		final: final,
	}
}

// Concat builds the automaton for the concatenation AB: every A-accept
// state gains an ε-transition to B's (renamed) start, and a single
// fresh start/final pair bracket the whole thing. nil stands for ∅,
// the compiler's "no automaton yet" sentinel: Concat(nil, x) = x,
// Concat(x, nil) = x, Concat(nil, nil) = nil.
func Concat(a, b *NFA) *NFA {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	left := rename(a, symbol.TagL)
	right := rename(b, symbol.TagR)

	s := symbol.Fresh()
	f := symbol.Fresh()

	states := mapset.NewThreadUnsafeSet[symbol.Sid](s, f)
	states = states.Union(left.q).Union(right.q)

	sigma := left.sigma.Union(right.sigma)

	delta := newDelta()
	delta.merge(left.delta)
	delta.merge(right.delta)
	delta.add(s, symbol.Epsilon, left.start)
	for id := range left.final.Iter() {
		delta.add(id, symbol.Epsilon, right.start)
	}
	for id := range right.final.Iter() {
		delta.add(id, symbol.Epsilon, f)
	}

	final := mapset.NewThreadUnsafeSet(f)
	return mkNFA(states, sigma, delta, s, final)
}

// Union builds the automaton for A|B: a fresh start ε-branches to both
// renamed starts, and every renamed accept state of either operand
// ε-transitions to a single fresh final state. nil (∅) propagates the
// same way Concat's does.
func Union(a, b *NFA) *NFA {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	left := rename(a, symbol.TagL)
	right := rename(b, symbol.TagR)

	s := symbol.Fresh()
	f := symbol.Fresh()

	states := mapset.NewThreadUnsafeSet[symbol.Sid](s, f)
	states = states.Union(left.q).Union(right.q)

	sigma := left.sigma.Union(right.sigma)

	delta := newDelta()
	delta.merge(left.delta)
	delta.merge(right.delta)
	delta.add(s, symbol.Epsilon, left.start)
	delta.add(s, symbol.Epsilon, right.start)
	for id := range left.final.Union(right.final).Iter() {
		delta.add(id, symbol.Epsilon, f)
	}

	final := mapset.NewThreadUnsafeSet(f)
	return mkNFA(states, sigma, delta, s, final)
}

// Iterate builds the Kleene-star automaton for A*: a fresh start
// ε-branches to A's renamed start and to a fresh final (so the empty
// word is accepted), and every renamed accept state loops back to A's
// start as well as ε-transitioning to the fresh final. nil (∅) maps to
// nil: there is nothing to iterate.
func Iterate(a *NFA) *NFA {
	if a == nil {
		return nil
	}

	child := rename(a, symbol.TagI)

	s := symbol.Fresh()
	f := symbol.Fresh()

	states := mapset.NewThreadUnsafeSet[symbol.Sid](s, f)
	states = states.Union(child.q)

	delta := newDelta()
	delta.merge(child.delta)
	delta.add(s, symbol.Epsilon, child.start)
	delta.add(s, symbol.Epsilon, f)
	for id := range child.final.Iter() {
		delta.add(id, symbol.Epsilon, child.start)
		delta.add(id, symbol.Epsilon, f)
	}

	final := mapset.NewThreadUnsafeSet(f)
	return mkNFA(states, child.sigma.Clone(), delta, s, final)
}
