package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/straja-ai/doubt/internal/doubt"
)

const demoStatement = "AI consciousness does not exist because AI is just pattern matching."

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [text]",
		Short: "Walk through f(x) and f(f(x)) on a statement",
		Long: `Doubts a statement, then doubts the first question that came out of
it one level deeper, printing both passes side by side.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := demoStatement
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}

			// Each level is run by hand, so the engine itself does not recurse.
			e, err := a.newEngine(0)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			rule := strings.Repeat("=", 60)

			fmt.Fprintln(w, rule)
			fmt.Fprintln(w, cyan("DOUBT ENGINE"))
			fmt.Fprintln(w, rule)
			fmt.Fprintf(w, "\nInput: %s\n\n", text)

			first, err := e.Doubt(text, 0)
			if err != nil {
				return err
			}
			writeLevel(w, "Level 1 (f(x))", first)

			if first.Score > 0 && len(first.Doubts) > 0 {
				q := first.Doubts[0].Question
				second, err := e.Doubt(q, 1)
				if err != nil {
					return err
				}
				writeLevel(w, fmt.Sprintf("Level 2 (f(f(x))) on %q", q), second)
			}

			fmt.Fprintln(w, rule)
			fmt.Fprintln(w, "Doubting a doubt is recursive doubt-validation: f(f(x)).")
			fmt.Fprintln(w, rule)
			return nil
		},
	}
}

func writeLevel(w io.Writer, title string, res *doubt.Result) {
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "%s\n", yellow(title+":"))
	fmt.Fprintf(w, "  Doubt score: %s\n", scoreColor(res.Score)(fmt.Sprintf("%.2f", res.Score)))
	fmt.Fprintf(w, "  Doubts found: %d\n", len(res.Doubts))
	fmt.Fprintf(w, "  Categories: %s\n", categoryList(res.CategoriesSeen()))
	writeDoubts(w, res.Doubts, 5, "    ")
	fmt.Fprintf(w, "\n  Insight: %s\n\n", res.Insight)
}
