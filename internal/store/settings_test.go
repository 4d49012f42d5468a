package store

import (
	"os"
	"path/filepath"
	"testing"

	"soundbox/internal/domain"
)

func TestSettingsLoadMissingFileDefaults(t *testing.T) {
	t.Parallel()

	s := NewSettings(filepath.Join(t.TempDir(), "settings.json"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if got.VolumeOutput != 50 || got.VolumeInput != 50 {
		t.Fatalf("expected default volumes, got %+v", got)
	}
	if got.Directory != "" || got.DefaultOutput != "" || got.DefaultInput != "" {
		t.Fatalf("expected empty strings, got %+v", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	want := domain.Settings{
		Directory:     "/srv/sounds",
		DefaultOutput: "Speakers",
		DefaultInput:  "CABLE Input",
		VolumeOutput:  80,
		VolumeInput:   30,
	}
	if err := NewSettings(path).Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := NewSettings(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestSettingsLoadClampsVolumes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	raw := []byte(`{"directory":"","defaultOutput":"","defaultInput":"","volumeOutput":150,"volumeInput":-20}`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := NewSettings(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.VolumeOutput != 100 {
		t.Fatalf("expected output clamp to 100, got %d", got.VolumeOutput)
	}
	if got.VolumeInput != 0 {
		t.Fatalf("expected input clamp to 0, got %d", got.VolumeInput)
	}
}

func TestSettingsLoadCorruptFileDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := NewSettings(path).Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if got.VolumeOutput != 50 || got.VolumeInput != 50 {
		t.Fatalf("expected defaults on corrupt file, got %+v", got)
	}
}
