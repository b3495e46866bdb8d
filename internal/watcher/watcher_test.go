package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_FileRelevance(t *testing.T) {
	w, err := New(time.Millisecond, []string{".git"}, []string{"setup.py"}, func() {})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	cases := []struct {
		path string
		want bool
	}{
		{"pkg/module.py", true},
		{"pkg/__init__.py", false},
		{"pkg/notes.txt", false},
		{"setup.py", false},
	}
	for _, c := range cases {
		if got := w.isRelevantFile(c.path); got != c.want {
			t.Errorf("isRelevantFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}

	if !w.shouldExcludeDir("repo/.git") {
		t.Error("expected .git directory to be excluded")
	}
}

func TestWatcher_DebouncedCallback(t *testing.T) {
	root := t.TempDir()
	fired := make(chan struct{}, 1)

	w, err := New(20*time.Millisecond, nil, nil, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(root); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(root, "a.py"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change callback after debounce window")
	}
}
