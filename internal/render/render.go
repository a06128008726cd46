// Package render formats an NFA for diagnostics. These are
// non-normative, human-readable dumps; neither format makes any
// promise about element ordering.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toasa/nfasim/internal/automaton"
	"github.com/toasa/nfasim/internal/symbol"
)

func sortedSids(ids []symbol.Sid) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	sort.Strings(out)
	return out
}

// Text renders n as "Q = {...}", "Σ = {...}", "δ = {...}", "q0 = ...",
// "F = {...}".
func Text(n *automaton.NFA) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Q = {%s}\n", strings.Join(sortedSids(n.Q().ToSlice()), ", "))

	alphabet := make([]string, 0)
	for a := range n.Sigma().Iter() {
		alphabet = append(alphabet, a.String())
	}
	sort.Strings(alphabet)
	fmt.Fprintf(&b, "Σ = {%s}\n", strings.Join(alphabet, ", "))

	b.WriteString("δ = {\n")
	type row struct {
		from, on, to string
	}
	entries := n.Delta().Entries()
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		on := "ε"
		if e.On != symbol.Epsilon {
			on = e.On.String()
		}
		rows = append(rows, row{
			from: e.From.String(),
			on:   on,
			to:   strings.Join(sortedSids(e.To.ToSlice()), ", "),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].from != rows[j].from {
			return rows[i].from < rows[j].from
		}
		return rows[i].on < rows[j].on
	})
	for i, r := range rows {
		fmt.Fprintf(&b, "    ({%s, %s}, {%s})", r.from, r.on, r.to)
		if i < len(rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	fmt.Fprintf(&b, "q0 = %s\n", n.Start().String())
	fmt.Fprintf(&b, "F = {%s}\n", strings.Join(sortedSids(n.Final().ToSlice()), ", "))

	return b.String()
}

// DOT renders n as a Graphviz digraph: the start state is boxed and
// accept states are double circles.
func DOT(n *automaton.NFA) string {
	var b strings.Builder

	b.WriteString("digraph G {\n")
	fmt.Fprintf(&b, "    %q [shape = box];\n", n.Start().String())
	for _, id := range sortedSids(n.Final().ToSlice()) {
		fmt.Fprintf(&b, "    %q [shape = doublecircle];\n", id)
	}

	for _, e := range n.Delta().Entries() {
		label := "ε"
		if e.On != symbol.Epsilon {
			label = e.On.String()
		}
		for _, dst := range sortedSids(e.To.ToSlice()) {
			fmt.Fprintf(&b, "    %q -> %q [label=%q];\n", e.From.String(), dst, label)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
