package garden

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_FiresOnRegistryWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "gardens.toml")
	if err := os.WriteFile(path, []byte("[[gardens]]\nid = \"g1\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[[gardens]]\nid = \"g2\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-w.Changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after registry write")
	}
}

func TestWatcher_FailedStartReleasesHandle(t *testing.T) {
	t.Parallel()

	w, err := NewWatcher(filepath.Join(t.TempDir(), "no-such-dir", "gardens.toml"))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Fatal("Start on a missing directory succeeded, want error")
	}
	// The fsnotify handle must be released; adding a watch afterwards
	// fails on a closed watcher.
	if err := w.watcher.Add(t.TempDir()); err == nil {
		t.Error("fsnotify handle still open after failed Start")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "gardens.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-w.Changes:
		t.Fatal("change notification for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
