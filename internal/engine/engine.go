// Package engine runs the rule catalog over a statement and, depth permitting,
// over its own generated questions: f(x), then f(f(x)).
//
// An Engine holds only the read-only catalog and its configuration, so one
// instance can serve concurrent callers without locking. Recursion is a plain
// nested call whose depth is threaded explicitly; every recursive call is one
// level deeper and none happen at MaxDepth. With the default Fanout of 1 a
// top-level call therefore makes at most MaxDepth nested calls. Every
// top-level call also carries a budget of MaxPasses catalog passes, which
// bounds the total work when Fanout branches.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/straja-ai/doubt/internal/catalog"
	"github.com/straja-ai/doubt/internal/doubt"
	"github.com/straja-ai/doubt/internal/redact"
	"github.com/straja-ai/doubt/internal/textnorm"
)

// Doubter is anything that can doubt a statement at a given depth.
type Doubter interface {
	Doubt(text string, depth int) (*doubt.Result, error)
}

// Engine evaluates statements against a rule catalog.
type Engine struct {
	cfg     Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-pass debug entries.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCatalog replaces the catalog built from cfg.Rules.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// New builds an engine. A negative MaxDepth is rejected.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("new engine with max_depth %d: %w", cfg.MaxDepth, doubt.ErrNegativeMaxDepth)
	}
	cfg = applyDefaults(cfg)

	e := &Engine{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = catalog.New(cfg.Rules)
	}
	return e, nil
}

// MaxDepth returns the recursion ceiling.
func (e *Engine) MaxDepth() int { return e.cfg.MaxDepth }

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Doubt evaluates text at depth. depth is normally 0; callers replaying a
// generated question by hand pass the depth it was generated at plus one.
// Any string is valid input; only a negative depth is an error.
func (e *Engine) Doubt(text string, depth int) (*doubt.Result, error) {
	if depth < 0 {
		return nil, fmt.Errorf("doubt at depth %d: %w", depth, doubt.ErrNegativeDepth)
	}
	budget := e.cfg.MaxPasses
	return e.evaluate(text, depth, nil, &budget), nil
}

// evaluate is one pass. path holds the fingerprints of the statements already
// examined on the way down, so a question that restates an ancestor is not
// expanded again. budget is the number of passes the top-level call has left;
// this pass spends one.
func (e *Engine) evaluate(text string, depth int, path []string, budget *int) *doubt.Result {
	*budget--
	path = append(path[:len(path):len(path)], e.fingerprint(text))

	base := e.catalog.Evaluate(text, depth)
	doubts := base

	if depth < e.cfg.MaxDepth && len(base) > 0 {
		doubts = append([]doubt.Doubt(nil), base...)
		for _, selected := range e.selectForRecursion(base, path) {
			if *budget <= 0 {
				e.logger.Debug("pass budget spent",
					zap.Int("depth", depth),
					zap.Int("max_passes", e.cfg.MaxPasses))
				break
			}
			child := e.evaluate(selected.Question, depth+1, path, budget)
			doubts = append(doubts, child.Doubts...)
		}
	}

	score := Score(doubts, e.cfg.Scoring)
	e.logger.Debug("doubt pass",
		zap.Int("depth", depth),
		zap.String("input", redact.Excerpt(text, redact.DefaultExcerptRunes)),
		zap.Int("base_doubts", len(base)),
		zap.Int("doubts", len(doubts)),
		zap.Float64("score", score))

	return &doubt.Result{
		Original: text,
		Doubts:   doubts,
		Score:    score,
		Insight:  Insight(doubts, depth),
		Depth:    depth,
	}
}

// selectForRecursion picks the first Fanout doubts whose question has not
// been examined on the current path.
func (e *Engine) selectForRecursion(base []doubt.Doubt, path []string) []doubt.Doubt {
	var out []doubt.Doubt
	seen := make(map[string]struct{}, len(path))
	for _, fp := range path {
		seen[fp] = struct{}{}
	}
	for _, d := range base {
		if len(out) == e.cfg.Fanout {
			break
		}
		fp := e.fingerprint(d.Question)
		if _, dup := seen[fp]; dup {
			e.logger.Debug("skipping already examined question",
				zap.String("category", d.Category.String()),
				zap.String("question", redact.Excerpt(d.Question, redact.DefaultExcerptRunes)))
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, d)
	}
	return out
}

// fingerprint identifies a statement the way the catalog sees it.
func (e *Engine) fingerprint(text string) string {
	return textnorm.Normalize(textnorm.Truncate(text, e.catalog.Options().MaxInputRunes))
}
