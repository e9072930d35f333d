package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsChangesToWatchedFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "base.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("a: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("b: 1\n"), 0o644))

	w, err := New([]string{cfg}, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(other, []byte("b: 2\n"), 0o644))
	require.NoError(t, os.WriteFile(cfg, []byte("a: 2\n"), 0o644))

	select {
	case ev := <-w.Events():
		abs, _ := filepath.Abs(cfg)
		assert.Equal(t, abs, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for watched file")
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %v for %s", ev.Type, ev.Path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nope", "cfg.yaml")}, 0)
	assert.Error(t, err)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "created", EventCreated.String())
	assert.Equal(t, "modified", EventModified.String())
	assert.Equal(t, "deleted", EventDeleted.String())
	assert.Equal(t, "renamed", EventRenamed.String())
	assert.Equal(t, "unknown", EventType(0).String())
}
