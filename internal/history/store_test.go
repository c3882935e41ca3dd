// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/refformat/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.HistoryConfig{DBPath: filepath.Join(t.TempDir(), "history.db")}
	s, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(types.HistoryConfig{})
	require.Error(t, err)
}

func TestRecordAndShow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Record(ctx, Run{
		Format:      "bracket",
		EntryCount:  3,
		WasStripped: true,
		Plain:       "[1] a\n[2] b\n[3] c",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	run, err := s.Show(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bracket", run.Format)
	assert.Equal(t, 3, run.EntryCount)
	assert.True(t, run.WasStripped)
	assert.Equal(t, "[1] a\n[2] b\n[3] c", run.Plain)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestShowMissingRun(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Show(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, format := range []string{"plain", "bracket", "paren"} {
		_, err := s.Record(ctx, Run{Format: format, EntryCount: 1, Plain: "x"})
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "paren", runs[0].Format)
	assert.Equal(t, "plain", runs[2].Format)

	// List omits the payload.
	assert.Empty(t, runs[0].Plain)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestExportYAML(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Record(ctx, Run{Format: "plain", EntryCount: 2, Plain: "1. a\n2. b"})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, s.ExportYAML(ctx, &b))

	out := b.String()
	assert.Contains(t, out, "format: plain")
	assert.Contains(t, out, "entry_count: 2")
	assert.Contains(t, out, "1. a")
}
