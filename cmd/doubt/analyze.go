package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		depth    int
		maxDepth int
		format   string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Doubt a statement",
		Long: `Runs the doubt engine over a statement and prints the result.
With no argument the statement is read from stdin.

Example:
  doubt analyze "AI is always better than humans"
  echo "Everyone agrees" | doubt analyze --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\r\n")
			}

			if !cmd.Flags().Changed("max-depth") {
				maxDepth = -1
			} else if maxDepth < 0 {
				return fmt.Errorf("--max-depth must be >= 0, got %d", maxDepth)
			}
			e, err := a.newEngine(maxDepth)
			if err != nil {
				return err
			}

			res, err := e.Doubt(text, depth)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, format, limit)
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "depth to evaluate at (pass 1 when replaying a generated question)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "recursion ceiling (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().IntVar(&limit, "limit", 0, "doubts listed in text output (0 = all)")
	return cmd
}
