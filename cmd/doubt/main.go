package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/straja-ai/doubt/internal/config"
	"github.com/straja-ai/doubt/internal/engine"
	"github.com/straja-ai/doubt/internal/logging"
)

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "doubt",
		Short: "Question statements with a recursive, rule-based doubt engine",
		Long: `doubt runs a fixed catalog of heuristic rules over a statement and
reports the questions it raises, grouped into ten categories, with a doubt
score in [0,1]. With max_depth >= 1 it also doubts its own first question:
f(x), then f(f(x)).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "doubt.yaml", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newAnalyzeCmd(a),
		newDemoCmd(a),
		newBatchCmd(a),
		newCategoriesCmd(a),
	)
	return root
}

func (a *app) init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	if a.noColor {
		color.NoColor = true
	}
	return nil
}

// newEngine builds an engine from the loaded config. maxDepth >= 0 overrides
// the configured ceiling.
func (a *app) newEngine(maxDepth int) (*engine.Engine, error) {
	ecfg := engine.FromConfig(*a.cfg)
	if maxDepth >= 0 {
		ecfg.MaxDepth = maxDepth
	}
	return engine.New(ecfg, engine.WithLogger(a.logger.Named("engine")))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
