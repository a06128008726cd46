// Package token turns a raw regex string into a validated sequence of
// symbol.Sym values with a single rune-by-rune scan. There is no
// implicit-concatenation token: the compiler detects juxtaposition
// itself. Invalid input is reported as an error rather than exiting
// the process.
package token

import (
	"fmt"

	"github.com/toasa/nfasim/internal/symbol"
)

// InvalidSymbolError reports a rune in the regex word that is neither
// an ordinary alphabet letter nor one of the four metacharacters.
type InvalidSymbolError struct {
	Pos int
	Sym symbol.Sym
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("token: invalid symbol %q at position %d", rune(e.Sym), e.Pos)
}

// Symbolize walks regex rune by rune and classifies every rune as
// either a metacharacter or an ordinary alphabet letter. ε can never
// occur in a regex word literally (it has no surface syntax), so any
// occurrence of the ε rune itself is rejected the same as any other
// invalid input.
func Symbolize(regex string) ([]symbol.Sym, error) {
	syms := make([]symbol.Sym, 0, len(regex))
	for i, r := range regex {
		s := symbol.Sym(r)
		if s == symbol.Epsilon {
			return nil, &InvalidSymbolError{Pos: i, Sym: s}
		}
		if !symbol.IsMeta(s) && !symbol.IsLetter(s) {
			return nil, &InvalidSymbolError{Pos: i, Sym: s}
		}
		syms = append(syms, s)
	}
	return syms, nil
}
