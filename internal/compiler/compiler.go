// Package compiler implements a recursive-descent regex-to-NFA
// compiler: a single left-to-right pass threading three fold slots
// (cur, cat, alt) through the Thompson-construction combinators in
// package automaton, building NFAs directly during the scan rather
// than through an intermediate parse tree.
//
// A parenthesized group is compiled by recursing and having the
// recursive call report how many runes it consumed as an ordinary
// return value, rather than stashing that count in a shared or static
// variable for the caller to add in — that scheme over-advances the
// outer cursor as soon as groups nest.
package compiler

import (
	"fmt"

	"github.com/toasa/nfasim/internal/automaton"
	"github.com/toasa/nfasim/internal/symbol"
	"github.com/toasa/nfasim/internal/token"
)

// MalformedRegexError reports unbalanced parentheses or a `*` applied
// to nothing, at the rune position where the defect was detected.
type MalformedRegexError struct {
	Pos int
	Msg string
}

func (e *MalformedRegexError) Error() string {
	return fmt.Sprintf("compiler: malformed regex at position %d: %s", e.Pos, e.Msg)
}

// Compile parses regex and returns the NFA the classical Thompson
// construction assigns to it, or a *MalformedRegexError /
// *token.InvalidSymbolError describing the defect.
func Compile(regex string) (*automaton.NFA, error) {
	syms, err := token.Symbolize(regex)
	if err != nil {
		return nil, err
	}
	nfa, consumed, closed, err := compile(syms, 0)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, &MalformedRegexError{Pos: consumed - 1, Msg: "unmatched ')'"}
	}
	return nfa, nil
}

// compile runs the three-slot fold over syms starting at index start,
// stopping either at end of input or at a ')'. It
// returns:
//   - the NFA built from the consumed prefix,
//   - how many symbols (from start) were consumed,
//   - closed: whether a ')' terminated the scan (vs. running off the
//     end of syms), which the caller uses to detect unmatched
//     parentheses without any shared mutable cursor state.
func compile(syms []symbol.Sym, start int) (nfa *automaton.NFA, consumed int, closed bool, err error) {
	var cur, cat, alt *automaton.NFA

	i := start
	for i < len(syms) {
		c := syms[i]
		switch c {
		case symbol.ParenClose:
			alt = flush(alt, cat, cur)
			return alt, i + 1 - start, true, nil

		case symbol.ParenOpen:
			cat = automaton.Concat(cat, cur)
			sub, subConsumed, subClosed, subErr := compile(syms, i+1)
			if subErr != nil {
				return nil, 0, false, subErr
			}
			if !subClosed {
				return nil, 0, false, &MalformedRegexError{Pos: i, Msg: "unmatched '('"}
			}
			cur = sub
			i += 1 + subConsumed
			continue

		case symbol.Star:
			if cur == nil {
				return nil, 0, false, &MalformedRegexError{Pos: i, Msg: "'*' with no preceding atom"}
			}
			cur = automaton.Iterate(cur)

		case symbol.Union:
			cat = automaton.Concat(cat, cur)
			alt = automaton.Union(alt, resolveBranch(cat))
			cur = nil
			cat = nil

		default:
			cat = automaton.Concat(cat, cur)
			letter, letErr := automaton.LetterNFA(c)
			if letErr != nil {
				return nil, 0, false, letErr
			}
			cur = letter
		}
		i++
	}

	alt = flush(alt, cat, cur)
	return alt, i - start, false, nil
}

// flush performs the terminating fold step shared by end-of-input and
// end-of-group: cat absorbs cur, then alt absorbs the completed
// alternative (resolved to the empty-word automaton if the
// alternative accumulated zero atoms).
func flush(alt, cat, cur *automaton.NFA) *automaton.NFA {
	cat = automaton.Concat(cat, cur)
	return automaton.Union(alt, resolveBranch(cat))
}

// resolveBranch turns a completed-but-empty concatenation (the ∅ fold
// sentinel) into the automaton accepting exactly the empty word. A
// completed alternative that accumulated at least one atom is
// returned unchanged. This is what lets "a||b" match ε on its empty
// middle branch, rather than the branch silently vanishing under
// concat/union's null-operand identity rules.
func resolveBranch(cat *automaton.NFA) *automaton.NFA {
	if cat == nil {
		return automaton.EmptyWord()
	}
	return cat
}
