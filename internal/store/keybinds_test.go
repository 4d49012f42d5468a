package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestKeybindsRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keybinds.json")
	s := NewKeybinds(path)

	table := map[string]string{
		"Laugh":     "ctrl+alt+l",
		"Airhorn":   "f5",
		"Sad Tromb": "ctrl+shift+t",
	}
	if err := s.Save(table); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, table) {
		t.Fatalf("round trip mismatch: %v", loaded)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestKeybindsLoadMissingFile(t *testing.T) {
	t.Parallel()

	s := NewKeybinds(filepath.Join(t.TempDir(), "absent.json"))
	table, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(table) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestKeybindsLoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	table, err := NewKeybinds(path).Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if len(table) != 0 {
		t.Fatalf("expected empty table on corrupt file, got %v", table)
	}
}
