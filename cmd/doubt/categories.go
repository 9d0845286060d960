package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/straja-ai/doubt/internal/catalog"
	"github.com/straja-ai/doubt/internal/doubt"
)

func newCategoriesCmd(a *app) *cobra.Command {
	var rules bool

	cmd := &cobra.Command{
		Use:   "categories [category]",
		Short: "List doubt categories and their rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := doubt.Categories()
			if len(args) == 1 {
				c, err := doubt.ParseCategory(args[0])
				if err != nil {
					return err
				}
				cats = []doubt.Category{c}
				rules = true
			}

			byCategory := map[doubt.Category][]catalog.Rule{}
			for _, r := range catalog.RuleDefs() {
				byCategory[r.Category] = append(byCategory[r.Category], r)
			}

			w := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			gray := color.New(color.FgHiBlack).SprintFunc()
			for _, c := range cats {
				fmt.Fprintf(w, "%s %s\n", cyan(c.String()), gray(fmt.Sprintf("(%d rules)", len(byCategory[c]))))
				if !rules {
					continue
				}
				for _, r := range byCategory[c] {
					fmt.Fprintf(w, "  %-24s %.2f  %s\n", r.ID, r.Confidence, r.Question)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rules, "rules", false, "list each category's rules")
	return cmd
}
