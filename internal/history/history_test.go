// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chatnote/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDirectoryAndSchema(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	// A fresh store has no entries but the schema is queryable.
	entries, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := types.HistoryEntry{
		GUID:      "note-1",
		Title:     "First chat",
		Notebook:  "Claude Chats",
		Tags:      []string{"claude", "go"},
		Sandbox:   true,
		CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Record(ctx, first))
	require.NoError(t, s.Record(ctx, types.HistoryEntry{GUID: "note-2", Title: "Second chat"}))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "note-2", entries[0].GUID)
	assert.Equal(t, "note-1", entries[1].GUID)

	got := entries[1]
	assert.Equal(t, "First chat", got.Title)
	assert.Equal(t, "Claude Chats", got.Notebook)
	assert.Equal(t, []string{"claude", "go"}, got.Tags)
	assert.True(t, got.Sandbox)
	assert.Equal(t, first.CreatedAt, got.CreatedAt.UTC())
}

func TestRecordDefaultsCreatedAt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Minute)
	require.NoError(t, s.Record(ctx, types.HistoryEntry{GUID: "note-3", Title: "Untimed"}))

	entries, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].CreatedAt.After(before), "CreatedAt should default to now")
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, types.HistoryEntry{
			GUID:  fmt.Sprintf("note-%d", i),
			Title: fmt.Sprintf("Chat %d", i),
		}))
	}

	entries, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "note-4", entries[0].GUID)

	// Zero limit falls back to the default.
	entries, err = s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestEmptyTagsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.HistoryEntry{GUID: "note-9", Title: "No tags"}))

	entries, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Tags)
}
