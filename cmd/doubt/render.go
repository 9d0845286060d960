package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/straja-ai/doubt/internal/doubt"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", f)
	}
}

// writeResult renders res in the requested format. limit > 0 caps the doubts
// listed in text output; structured formats always carry the full list.
func writeResult(w io.Writer, res *doubt.Result, format string, limit int) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeText(w, res, limit)
		return nil
	}
}

func writeText(w io.Writer, res *doubt.Result, limit int) {
	bold := color.New(color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", bold("Input:"), res.Original)
	fmt.Fprintf(w, "%s %s  %s %d\n", bold("Doubt score:"), scoreColor(res.Score)(fmt.Sprintf("%.2f", res.Score)),
		bold("Depth:"), res.Depth)
	fmt.Fprintf(w, "%s %d across %s\n", bold("Doubts:"), len(res.Doubts), categoryList(res.CategoriesSeen()))

	writeDoubts(w, res.Doubts, limit, "  ")
	if limit > 0 && len(res.Doubts) > limit {
		fmt.Fprintf(w, "  %s\n", gray(fmt.Sprintf("... %d more", len(res.Doubts)-limit)))
	}
	fmt.Fprintf(w, "\n%s %s\n", bold("Insight:"), res.Insight)
}

func writeDoubts(w io.Writer, doubts []doubt.Doubt, limit int, indent string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	for i, d := range doubts {
		if limit > 0 && i == limit {
			break
		}
		fmt.Fprintf(w, "%s%d. %s %s %s\n", indent, i+1,
			cyan("["+d.Category.String()+"]"), d.Question,
			gray(fmt.Sprintf("(confidence: %.2f)", d.Confidence)))
	}
}

func categoryList(cats []doubt.Category) string {
	if len(cats) == 0 {
		return "no categories"
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

func scoreColor(score float64) func(a ...interface{}) string {
	switch {
	case score >= 0.66:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case score >= 0.33:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgGreen).SprintFunc()
	}
}
