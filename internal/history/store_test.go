// internal/history/store_test.go
package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, KindAnalyze, "seq1", 9, map[string]any{"protein": "MK*"}))
	require.NoError(t, s.Record(ctx, KindCompare, "seq2", 4, map[string]any{"mutation_count": 1}))

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, KindCompare, runs[0].Kind)
	assert.Equal(t, "seq2", runs[0].Header)
	assert.Equal(t, 4, runs[0].Length)
	assert.JSONEq(t, `{"mutation_count":1}`, string(runs[0].Payload))
	assert.Equal(t, KindAnalyze, runs[1].Kind)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, KindAnalyze, "s", i, map[string]int{"i": i}))
	}
	runs, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecentEmpty(t *testing.T) {
	s := openStore(t)
	runs, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
