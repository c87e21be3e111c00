package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new store backed by a temp file for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustSet creates or updates an entry, failing the test on error.
func mustSet(t *testing.T, s *Store, name, value, alternate string) {
	t.Helper()
	if err := s.Set(context.Background(), name, &value, &alternate, false); err != nil {
		t.Fatalf("Set(%q) failed: %v", name, err)
	}
}

// strptr returns a pointer to the given string literal.
func strptr(s string) *string {
	return &s
}
