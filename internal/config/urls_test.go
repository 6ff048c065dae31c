package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadURLList tests reading newline-delimited URL lists.
func TestLoadURLList(t *testing.T) {
	t.Parallel()

	t.Run("trims and drops blank lines, preserves order and duplicates", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		content := "  https://github.com/octocat/Hello-World  \n\n" +
			"https://github.com/golang/go\r\n" +
			"   \n" +
			"https://github.com/golang/go\n" +
			"not-a-url\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		urls, err := LoadURLList(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			"https://github.com/octocat/Hello-World",
			"https://github.com/golang/go",
			"https://github.com/golang/go",
			"not-a-url",
		}
		if len(urls) != len(expected) {
			t.Fatalf("expected %d urls, got %d", len(expected), len(urls))
		}
		for i, u := range expected {
			if urls[i] != u {
				t.Errorf("url %d: expected %q, got %q", i, u, urls[i])
			}
		}
	})

	t.Run("empty file yields empty list", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.txt")
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatal(err)
		}

		urls, err := LoadURLList(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(urls) != 0 {
			t.Errorf("expected empty list, got %d entries", len(urls))
		}
	})

	t.Run("missing file wraps ErrURLListNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadURLList(filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, ErrURLListNotFound) {
			t.Errorf("expected ErrURLListNotFound, got %v", err)
		}
	})
}
