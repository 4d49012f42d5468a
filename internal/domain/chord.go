package domain

import (
	"fmt"
	"strings"
)

// Modifier is one of the recognized chord modifier keys.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModAlt   Modifier = "alt"
	ModShift Modifier = "shift"
	ModSuper Modifier = "super"
)

// canonicalModifierOrder fixes the order modifiers take in a chord's
// canonical string so that equal physical combinations compare equal.
var canonicalModifierOrder = []Modifier{ModCtrl, ModAlt, ModShift, ModSuper}

var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
	"meta":    ModSuper,
}

var keyAliases = map[string]string{
	"esc":    "escape",
	"return": "enter",
	"del":    "delete",
}

var terminalKeys = buildTerminalKeys()

func buildTerminalKeys() map[string]struct{} {
	keys := make(map[string]struct{})
	for r := 'a'; r <= 'z'; r++ {
		keys[string(r)] = struct{}{}
	}
	for r := '0'; r <= '9'; r++ {
		keys[string(r)] = struct{}{}
	}
	for i := 1; i <= 12; i++ {
		keys[fmt.Sprintf("f%d", i)] = struct{}{}
	}
	for _, named := range []string{
		"space", "enter", "tab", "escape", "backspace", "delete",
		"up", "down", "left", "right",
	} {
		keys[named] = struct{}{}
	}
	return keys
}

// Chord is a parsed, canonical key combination: a set of modifiers plus
// exactly one terminal key. Construct only via ParseChord so equal
// physical combinations always share one canonical form.
type Chord struct {
	mods      []Modifier
	key       string
	canonical string
}

// ParseChord normalizes a user-supplied hotkey string into a Chord.
// Parsing is case-insensitive and ignores whitespace; modifier order is
// irrelevant and duplicates collapse. Returns ErrInvalidHotkey when the
// string does not match the modifier*+key grammar.
func ParseChord(spec string) (Chord, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(spec), ""))
	if compact == "" {
		return Chord{}, fmt.Errorf("%w: empty hotkey", ErrInvalidHotkey)
	}

	parts := strings.Split(compact, "+")
	seen := make(map[Modifier]bool, len(parts))
	for _, part := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[part]
		if !ok {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidHotkey, part)
		}
		seen[mod] = true
	}

	keyToken := parts[len(parts)-1]
	if alias, ok := keyAliases[keyToken]; ok {
		keyToken = alias
	}
	if _, ok := terminalKeys[keyToken]; !ok {
		return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidHotkey, keyToken)
	}

	var mods []Modifier
	tokens := make([]string, 0, len(seen)+1)
	for _, mod := range canonicalModifierOrder {
		if seen[mod] {
			mods = append(mods, mod)
			tokens = append(tokens, string(mod))
		}
	}
	tokens = append(tokens, keyToken)

	return Chord{mods: mods, key: keyToken, canonical: strings.Join(tokens, "+")}, nil
}

// Modifiers returns the chord's modifiers in canonical order.
func (c Chord) Modifiers() []Modifier { return c.mods }

// Key returns the canonical terminal key token.
func (c Chord) Key() string { return c.key }

// String returns the canonical textual form used as a table key.
func (c Chord) String() string { return c.canonical }

// Equal reports whether two chords denote the same physical combination.
func (c Chord) Equal(other Chord) bool { return c.canonical == other.canonical }

// IsZero reports whether the chord is the unparsed zero value.
func (c Chord) IsZero() bool { return c.canonical == "" }
