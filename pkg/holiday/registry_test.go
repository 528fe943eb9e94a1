package holiday

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultLookup(t *testing.T) {
	r := Default()
	label, ok := r.Lookup("2026-11-08")
	if !ok || label != "Diwali" {
		t.Fatalf("expected Diwali, got %q %v", label, ok)
	}
	if _, ok := r.Lookup("2026-11-09"); ok {
		t.Fatalf("expected no holiday the day after Diwali")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.yaml")
	content := "\"2027-01-01\": New Year\n\"2027-03-22\": Holi\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 holidays, got %d", r.Len())
	}
	label, ok := r.Lookup("2027-03-22")
	if !ok || label != "Holi" {
		t.Fatalf("expected Holi, got %q %v", label, ok)
	}
}

func TestLoadRejectsBadDayKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.yaml")
	if err := os.WriteFile(path, []byte("\"not-a-date\": Oops\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed day key")
	}
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.yaml")
	if err := os.WriteFile(path, []byte("\"2027-01-01\": New Year\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads, err := r.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	updated := "\"2027-01-01\": New Year\n\"2027-11-27\": Diwali\n"
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case _, ok := <-reloads:
		if !ok {
			t.Fatalf("watch channel closed early")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
	if label, ok := r.Lookup("2027-11-27"); !ok || label != "Diwali" {
		t.Fatalf("expected reloaded table to contain Diwali, got %q %v", label, ok)
	}
}

func TestWatchRequiresBackingFile(t *testing.T) {
	if _, err := Default().Watch(context.Background()); err == nil {
		t.Fatalf("expected error for registry without a file")
	}
}
