// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   map[string]string
		errMsg string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "evernote-dev-token", "  S=s1:U=abc:tok  \n")
				writeFile(t, dir, "evernote-notebook", "Claude Chats")
				writeFile(t, dir, "evernote-sandbox", "true\n")
				return dir
			},
			want: map[string]string{
				"evernote-dev-token": "S=s1:U=abc:tok",
				"evernote-notebook":  "Claude Chats",
				"evernote-sandbox":   "true",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "evernote-dev-token", "valid-token")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				"evernote-dev-token": "valid-token",
			},
		},
		{
			name: "skips dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "evernote-dev-token", "real-token")
				return dir
			},
			want: map[string]string{
				"evernote-dev-token": "real-token",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "evernote-dev-token", "tok123")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"evernote-dev-token": "tok123",
			},
		},
		{
			name: "returns empty map for empty directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "basic pairs",
			content: "EVERNOTE_DEV_TOKEN=tok123\nEVERNOTE_SANDBOX=true\n",
			want: map[string]string{
				"EVERNOTE_DEV_TOKEN": "tok123",
				"EVERNOTE_SANDBOX":   "true",
			},
		},
		{
			name:    "comments and blanks skipped",
			content: "# credentials\n\nEVERNOTE_DEV_TOKEN=tok123\n\n# end\n",
			want:    map[string]string{"EVERNOTE_DEV_TOKEN": "tok123"},
		},
		{
			name:    "export prefix and quotes",
			content: "export EVERNOTE_NOTEBOOK=\"Claude Chats\"\nEVERNOTE_DEV_TOKEN='tok'\n",
			want: map[string]string{
				"EVERNOTE_NOTEBOOK":  "Claude Chats",
				"EVERNOTE_DEV_TOKEN": "tok",
			},
		},
		{
			name:    "value may contain equals",
			content: "EVERNOTE_DEV_TOKEN=S=s1:U=abc\n",
			want:    map[string]string{"EVERNOTE_DEV_TOKEN": "S=s1:U=abc"},
		},
		{
			name:    "lines without equals ignored",
			content: "not a pair\nEVERNOTE_SANDBOX=false\n",
			want:    map[string]string{"EVERNOTE_SANDBOX": "false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, ".env")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := LoadEnvFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvFileFirstExistingWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing.env")
	second := filepath.Join(dir, "present.env")
	third := filepath.Join(dir, "later.env")
	require.NoError(t, os.WriteFile(second, []byte("EVERNOTE_DEV_TOKEN=from-second\n"), 0o644))
	require.NoError(t, os.WriteFile(third, []byte("EVERNOTE_DEV_TOKEN=from-third\n"), 0o644))

	got, err := LoadEnvFile(first, second, third)
	require.NoError(t, err)
	assert.Equal(t, "from-second", got["EVERNOTE_DEV_TOKEN"])
}

func TestLoadEnvFileNoneExist(t *testing.T) {
	got, err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "evernote-dev-token", "tok-good")

	// Create a file then remove read permission.
	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)
	// The good file should still be returned; the bad file is skipped with a warning.
	assert.Equal(t, "tok-good", got["evernote-dev-token"])
	_, hasBad := got["bad-key"]
	assert.False(t, hasBad, "unreadable file should not appear in result")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
