package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/straja-ai/doubt/internal/batch"
	"github.com/straja-ai/doubt/internal/memo"
	"github.com/straja-ai/doubt/internal/redact"
	"github.com/straja-ai/doubt/internal/sink"
)

// maxLineBytes bounds a single stdin statement.
const maxLineBytes = 1 << 20

func newBatchCmd(a *app) *cobra.Command {
	var (
		format  string
		workers int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Doubt one statement per stdin line",
		Long: `Reads statements from stdin, one per line, and doubts them
concurrently. Blank lines are skipped. Output follows input order: a summary
line per statement, or one JSON object per line with --format json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			var statements []string
			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
			for sc.Scan() {
				if line := strings.TrimSpace(sc.Text()); line != "" {
					statements = append(statements, line)
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			e, err := a.newEngine(-1)
			if err != nil {
				return err
			}
			d, err := memo.New(e, a.cfg.Batch.CacheSize)
			if err != nil {
				return err
			}
			if workers < 1 {
				workers = a.cfg.Batch.Workers
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			items, err := batch.NewRunner(d, workers, a.logger.Named("batch")).Run(ctx, statements)
			if err != nil {
				return err
			}

			if outPath != "" {
				fileSink, err := sink.NewFileSink(outPath)
				if err != nil {
					return err
				}
				if err := fileSink.Write(items); err != nil {
					_ = fileSink.Close()
					return err
				}
				if err := fileSink.Close(); err != nil {
					return err
				}
				a.logger.Info("results written", zap.String("sink", fileSink.Name()), zap.Int("items", len(items)))
			}

			w := cmd.OutOrStdout()
			if format == formatJSON {
				enc := json.NewEncoder(w)
				for _, item := range items {
					if err := enc.Encode(item); err != nil {
						return err
					}
				}
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(w, "%d\t%s\t%d doubts\t%s\n", item.Index+1,
					scoreColor(item.Result.Score)(fmt.Sprintf("%.2f", item.Result.Score)),
					len(item.Result.Doubts), redact.Excerpt(item.Result.Original, 60))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also append results to this JSONL file")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent evaluations (default from config)")
	return cmd
}
