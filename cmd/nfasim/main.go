// Command nfasim is a small driver over the compiler/simulator
// packages: it parses a regex into an NFA via Thompson construction and
// either dumps that NFA or tests candidate words against it, as cobra
// subcommands with colorized accept/reject verdicts.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/toasa/nfasim/internal/compiler"
	"github.com/toasa/nfasim/internal/render"
	"github.com/toasa/nfasim/internal/sim"
	"github.com/toasa/nfasim/internal/symbol"
)

var useDOT bool

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nfasim",
		Short:         "Compile a regex into a Thompson-construction NFA and run it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(compileCmd(), acceptsCmd())
	return root
}

func compileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <regex>",
		Short: "Compile a regex and print its NFA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := compiler.Compile(args[0])
			if err != nil {
				return reportCompileError(err)
			}
			if useDOT {
				fmt.Fprint(cmd.OutOrStdout(), render.DOT(nfa))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), render.Text(nfa))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useDOT, "dot", false, "print a Graphviz DOT diagram instead of the textual dump")
	return cmd
}

func acceptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accepts <regex> <word>...",
		Short: "Test one or more words against a compiled regex",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := compiler.Compile(args[0])
			if err != nil {
				return reportCompileError(err)
			}
			for _, word := range args[1:] {
				w := toWord(word)
				if sim.Accepts(nfa, w) {
					color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "accept")
				} else {
					color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "reject")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\t%q\n", word)
			}
			return nil
		},
	}
}

func toWord(s string) []symbol.Sym {
	runes := []rune(s)
	w := make([]symbol.Sym, len(runes))
	for i, r := range runes {
		w[i] = symbol.Sym(r)
	}
	return w
}

func reportCompileError(err error) error {
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
	return err
}
