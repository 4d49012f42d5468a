package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Keybinds persists the display-name to chord table as a flat JSON
// object.
type Keybinds struct {
	path string
}

func NewKeybinds(path string) *Keybinds {
	return &Keybinds{path: path}
}

// Load reads the persisted table. A missing file yields an empty table
// and no error; a corrupt file yields an empty table and the parse
// error so callers can warn and continue.
func (s *Keybinds) Load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return map[string]string{}, fmt.Errorf("read keybinds: %w", err)
	}

	table := map[string]string{}
	if err := json.Unmarshal(raw, &table); err != nil {
		return map[string]string{}, fmt.Errorf("parse keybinds: %w", err)
	}
	return table, nil
}

// Save writes the full table atomically via a temp file and rename.
func (s *Keybinds) Save(table map[string]string) error {
	raw, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keybinds: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write keybinds: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write keybinds: %w", err)
	}
	return nil
}
