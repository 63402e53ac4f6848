package fsnotify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/study/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	t.Run("reports writes to watched files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		notes := filepath.Join(dir, "notes.md")
		require.NoError(t, os.WriteFile(notes, []byte("# v1"), 0o644))

		changed := make(chan string, 16)
		w, err := fsnotify.New([]string{notes}, func(p string) { changed <- p }, nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		require.NoError(t, os.WriteFile(notes, []byte("# v2"), 0o644))

		select {
		case got := <-changed:
			assert.Equal(t, notes, got)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for change")
		}

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		notes := filepath.Join(dir, "notes.md")
		other := filepath.Join(dir, "other.md")
		require.NoError(t, os.WriteFile(notes, []byte("x"), 0o644))

		changed := make(chan string, 16)
		w, err := fsnotify.New([]string{notes}, func(p string) { changed <- p }, nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = w.Run(ctx) }()

		require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
		require.NoError(t, os.WriteFile(notes, []byte("z"), 0o644))

		select {
		case got := <-changed:
			assert.Equal(t, notes, got)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for change")
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		_, err := fsnotify.New([]string{filepath.Join(t.TempDir(), "nope", "a.md")}, func(string) {}, nil)
		assert.Error(t, err)
	})
}
