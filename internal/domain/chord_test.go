package domain

import (
	"errors"
	"testing"
)

func TestParseChordNormalizes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "ctrl+l", "ctrl+l"},
		{"case and spaces", "Ctrl + Alt + L", "ctrl+alt+l"},
		{"modifier order", "alt+ctrl+l", "ctrl+alt+l"},
		{"all modifiers", "super+shift+alt+ctrl+f5", "ctrl+alt+shift+super+f5"},
		{"control alias", "control+c", "ctrl+c"},
		{"option alias", "option+x", "alt+x"},
		{"cmd alias", "cmd+space", "super+space"},
		{"win alias", "win+d", "super+d"},
		{"duplicate modifiers", "ctrl+ctrl+a", "ctrl+a"},
		{"key alias esc", "ctrl+esc", "ctrl+escape"},
		{"key alias return", "shift+return", "shift+enter"},
		{"bare key", "backspace", "backspace"},
		{"digit", "ctrl+7", "ctrl+7"},
		{"function key", "f12", "f12"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseChord(tc.in)
			if err != nil {
				t.Fatalf("parse %q failed: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Fatalf("parse %q: expected %q, got %q", tc.in, tc.want, got.String())
			}
		})
	}
}

func TestParseChordRejectsInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"trailing plus", "ctrl+"},
		{"leading plus", "+a"},
		{"unknown key", "ctrl+foo"},
		{"unknown modifier", "foo+a"},
		{"bare modifier", "ctrl"},
		{"multi char key", "ctrl+ab"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseChord(tc.in); !errors.Is(err, ErrInvalidHotkey) {
				t.Fatalf("parse %q: expected ErrInvalidHotkey, got %v", tc.in, err)
			}
		})
	}
}

func TestChordEqual(t *testing.T) {
	t.Parallel()

	a, err := ParseChord("Alt + Ctrl + L")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, err := ParseChord("ctrl+alt+l")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected chords to be equal: %q vs %q", a, b)
	}

	c, err := ParseChord("ctrl+l")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if a.Equal(c) {
		t.Fatalf("expected chords to differ: %q vs %q", a, c)
	}

	if !(Chord{}).IsZero() {
		t.Fatalf("zero chord should report IsZero")
	}
	if a.IsZero() {
		t.Fatalf("parsed chord should not report IsZero")
	}
}
