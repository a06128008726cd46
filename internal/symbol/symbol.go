// Package symbol defines the alphabet and state identity types shared
// by the automaton, compiler and simulator packages.
package symbol

import "fmt"

// Sym is a single alphabet symbol, including the reserved
// metacharacters and the distinguished epsilon value.
type Sym rune

// Reserved symbols. These never appear as ordinary alphabet letters.
const (
	Epsilon    Sym = 'ε'
	ParenOpen  Sym = '('
	ParenClose Sym = ')'
	Union      Sym = '|'
	Star       Sym = '*'
)

// IsMeta reports whether s is one of the four regex metacharacters.
func IsMeta(s Sym) bool {
	switch s {
	case ParenOpen, ParenClose, Union, Star:
		return true
	default:
		return false
	}
}

// IsLetter reports whether s is usable as an ordinary alphabet letter,
// i.e. neither epsilon nor a metacharacter.
func IsLetter(s Sym) bool {
	return s != Epsilon && !IsMeta(s)
}

func (s Sym) String() string {
	return string(rune(s))
}

// Tag marks which side of a combinator a renamed state came from.
type Tag int

const (
	// TagNone marks a state minted fresh by a combinator, not renamed
	// from any input automaton.
	TagNone Tag = iota
	TagL        // left operand of concat/union
	TagR        // right operand of concat/union
	TagI        // child operand of iterate
)

func (t Tag) String() string {
	switch t {
	case TagL:
		return "L"
	case TagR:
		return "R"
	case TagI:
		return "I"
	default:
		return ""
	}
}

// Sid is an opaque state identifier. Two Sids are equal iff they were
// built from the same sequence of Fresh/Pair calls with equal
// arguments. The underlying representation is a string so that Sid
// stays a plain comparable value (usable directly as a map key or
// mapset element) without resorting to pointer identity, which would
// make equality depend on allocation rather than on the id's history.
type Sid string

// counter mints globally unique base identifiers for fresh states. A
// single counter (rather than one per NFA) is sufficient because every
// Sid derived from it is paired with the tag chain of the combinator
// that produced it, so values minted for unrelated sub-automata never
// collide even before tagging.
var counter int

// Fresh mints a new, previously unused state identifier.
func Fresh() Sid {
	counter++
	return Sid(fmt.Sprintf("q%d", counter))
}

// Pair renames id under tag, producing a new Sid equal only to other
// Sids built by Pair(id, tag) for the same id/tag pair. This guarantees
// disjoint copies of an input automaton's states can coexist in a
// composed automaton without colliding with the other operand's states
// or with any freshly minted state.
func Pair(id Sid, tag Tag) Sid {
	return Sid(string(id) + "." + tag.String())
}

func (s Sid) String() string {
	return string(s)
}
