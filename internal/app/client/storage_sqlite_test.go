package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSQLiteCache_ReplaceAndList(t *testing.T) {
	cache := newTestCache(t)

	first := []File{
		{ID: "f1", FileName: "file-1-a.txt", OriginalName: "a.txt", FileType: "text/plain", FileSize: 1, FileUrl: "/uploads/file-1-a.txt", UploadedAt: "2026-08-30T10:00:00Z"},
		{ID: "f2", FileName: "file-2-b.txt", OriginalName: "b.txt", FileType: "text/plain", FileSize: 2, FileUrl: "/uploads/file-2-b.txt", UploadedAt: "2026-08-31T10:00:00Z"},
	}
	require.NoError(t, cache.ReplaceFiles(first))

	got, err := cache.ListFiles()
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, "f2", got[0].ID)

	// A later listing fully replaces the previous one.
	second := []File{
		{ID: "f3", FileName: "file-3-c.txt", OriginalName: "c.txt", FileType: "text/plain", FileSize: 3, FileUrl: "/uploads/file-3-c.txt", UploadedAt: "2026-08-31T11:00:00Z"},
	}
	require.NoError(t, cache.ReplaceFiles(second))

	got, err = cache.ListFiles()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "f3", got[0].ID)
}

func TestSQLiteCache_EmptyList(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.ListFiles()
	require.NoError(t, err)
	assert.Empty(t, got)
}

// writeFile is shared by client tests that need a real file on disk.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
