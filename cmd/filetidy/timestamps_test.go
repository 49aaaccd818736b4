package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withStdin runs fn with os.Stdin reading the given input.
func withStdin(t *testing.T, input string, fn func()) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("failed to write stdin: %v", err)
	}
	w.Close()

	orig := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = orig
		r.Close()
	}()

	fn()
}

func TestRunTimestampsConfirmationGate(t *testing.T) {
	setup := func(t *testing.T) (root, original, renamed string) {
		t.Helper()
		root = t.TempDir()
		original = filepath.Join(root, "trip-2025-10-09-21-15-39-PM.jpg")
		renamed = filepath.Join(root, "2025-10-09-21-15-39-PM-trip.jpg")
		if err := os.WriteFile(original, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		return root, original, renamed
	}

	t.Run("declining renames nothing", func(t *testing.T) {
		root, original, renamed := setup(t)

		timestampsYes = false
		withStdin(t, "no\n", func() {
			if err := runTimestamps(timestampsCmd, []string{root}); err != nil {
				t.Fatalf("runTimestamps() error = %v", err)
			}
		})

		if _, err := os.Stat(original); err != nil {
			t.Errorf("declined run mutated the tree: %v", err)
		}
		if _, err := os.Stat(renamed); !os.IsNotExist(err) {
			t.Errorf("declined run created %s", renamed)
		}
	})

	t.Run("piped yes confirms", func(t *testing.T) {
		root, original, renamed := setup(t)

		timestampsYes = false
		withStdin(t, "yes\n", func() {
			if err := runTimestamps(timestampsCmd, []string{root}); err != nil {
				t.Fatalf("runTimestamps() error = %v", err)
			}
		})

		if _, err := os.Stat(renamed); err != nil {
			t.Errorf("confirmed run did not rename: %v", err)
		}
		if _, err := os.Stat(original); !os.IsNotExist(err) {
			t.Errorf("confirmed run left %s behind", original)
		}
	})
}

func TestValidateRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	t.Run("valid directory", func(t *testing.T) {
		got, err := validateRoot(dir)
		if err != nil {
			t.Fatalf("validateRoot(%q) error = %v", dir, err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("validateRoot(%q) = %q, want absolute path", dir, got)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := validateRoot(filepath.Join(dir, "nope"))
		if err == nil {
			t.Fatal("validateRoot() error = nil, want error")
		}
		if !strings.Contains(err.Error(), "does not exist") {
			t.Errorf("validateRoot() error = %q, want mention of missing directory", err)
		}
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := validateRoot(file)
		if err == nil {
			t.Fatal("validateRoot() error = nil, want error")
		}
		if !strings.Contains(err.Error(), "not a directory") {
			t.Errorf("validateRoot() error = %q, want mention of non-directory", err)
		}
	})
}
