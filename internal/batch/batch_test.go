package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/straja-ai/doubt/internal/doubt"
	"github.com/straja-ai/doubt/internal/engine"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	return e
}

func TestRunPreservesOrder(t *testing.T) {
	e := newEngine(t)
	statements := make([]string, 40)
	for i := range statements {
		statements[i] = fmt.Sprintf("Statement %d is always true", i)
	}

	items, err := NewRunner(e, 4, nil).Run(context.Background(), statements)
	require.NoError(t, err)
	require.Len(t, items, len(statements))
	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, statements[i], item.Result.Original)
	}
}

func TestRunMatchesSequentialResults(t *testing.T) {
	e := newEngine(t)
	statements := []string{"", "AI is always better than humans", "Maybe."}

	items, err := NewRunner(e, 8, nil).Run(context.Background(), statements)
	require.NoError(t, err)
	for i, s := range statements {
		want, err := e.Doubt(s, 0)
		require.NoError(t, err)
		assert.Equal(t, want, items[i].Result)
	}
}

func TestRunEmpty(t *testing.T) {
	items, err := NewRunner(newEngine(t), 2, nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(newEngine(t), 2, nil).Run(ctx, []string{"a", "b"})
	require.ErrorIs(t, err, context.Canceled)
}

type failingDoubter struct {
	calls atomic.Int32
}

var errBoom = errors.New("boom")

func (f *failingDoubter) Doubt(string, int) (*doubt.Result, error) {
	f.calls.Add(1)
	return nil, errBoom
}

func TestRunStopsOnFirstError(t *testing.T) {
	f := &failingDoubter{}
	statements := make([]string, 100)

	_, err := NewRunner(f, 1, nil).Run(context.Background(), statements)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "statement 0")
	assert.Less(t, f.calls.Load(), int32(len(statements)))
}
