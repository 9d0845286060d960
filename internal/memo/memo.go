// Package memo caches doubt results by statement and depth.
package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/straja-ai/doubt/internal/doubt"
	"github.com/straja-ai/doubt/internal/engine"
)

type key struct {
	text  string
	depth int
}

// Doubter wraps another Doubter with a bounded LRU cache. The wrapped
// evaluation must be deterministic, which the engine guarantees.
type Doubter struct {
	next  engine.Doubter
	cache *lru.Cache[key, *doubt.Result]
}

// New wraps next with a cache holding up to size results. size <= 0 returns
// next unchanged.
func New(next engine.Doubter, size int) (engine.Doubter, error) {
	if size <= 0 {
		return next, nil
	}
	cache, err := lru.New[key, *doubt.Result](size)
	if err != nil {
		return nil, fmt.Errorf("new result cache: %w", err)
	}
	return &Doubter{next: next, cache: cache}, nil
}

// Doubt returns a cached result when one exists. Errors are never cached.
// Callers get their own copy and may modify it freely.
func (d *Doubter) Doubt(text string, depth int) (*doubt.Result, error) {
	k := key{text: text, depth: depth}
	if res, ok := d.cache.Get(k); ok {
		return clone(res), nil
	}
	res, err := d.next.Doubt(text, depth)
	if err != nil {
		return nil, err
	}
	d.cache.Add(k, clone(res))
	return res, nil
}

// Len reports the number of cached results.
func (d *Doubter) Len() int { return d.cache.Len() }

func clone(r *doubt.Result) *doubt.Result {
	out := *r
	out.Doubts = append([]doubt.Doubt(nil), r.Doubts...)
	return &out
}
