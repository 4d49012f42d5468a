// Package hotkey binds global key chords to sounds and dispatches
// presses to the player.
package hotkey

import (
	"fmt"
	"log/slog"
	"sync"

	"soundbox/internal/domain"
	"soundbox/internal/ports"
)

type binding struct {
	soundID string
	chord   domain.Chord
	hook    ports.Hook
}

// Registry owns the soundID to chord table. Each side of the mapping
// holds at most one entry; binding an already-taken chord silently
// replaces the older binding, and binding a sound that already has a
// chord moves it. The stop chord is reserved and never enters the
// table.
type Registry struct {
	provider ports.HookProvider
	store    ports.KeybindStore
	events   ports.EventSink
	stop     domain.Chord
	dispatch *dispatcher

	mu      sync.Mutex
	byChord map[string]*binding
	bySound map[string]*binding

	stopHook ports.Hook
}

func NewRegistry(provider ports.HookProvider, store ports.KeybindStore, events ports.EventSink, stop domain.Chord, actions Actions) *Registry {
	r := &Registry{
		provider: provider,
		store:    store,
		events:   events,
		stop:     stop,
		byChord:  map[string]*binding{},
		bySound:  map[string]*binding{},
	}
	r.dispatch = newDispatcher(r.Resolve, actions)
	return r
}

// Start installs the stop hook, restores the persisted table, and
// begins dispatching. Every failure is soft: unparseable or reserved
// entries are dropped with a warning, and a refused hook drops only its
// own binding.
func (r *Registry) Start() error {
	r.dispatch.start()

	stopHook, err := r.provider.Install(r.stop)
	if err != nil {
		slog.Warn("[hotkey] stop hook install failed", "chord", r.stop.String(), "error", err)
		r.events.BackendError(domain.ErrorCodeHookInstall, r.stop.String())
	} else {
		r.stopHook = stopHook
		go r.forward(stopHook, trigger{stop: true})
	}

	table, err := r.store.Load()
	if err != nil {
		slog.Warn("[hotkey] could not load keybinds", "error", err)
		r.events.BackendError(domain.ErrorCodeStoreRead, err.Error())
	}
	for soundID, spec := range table {
		chord, err := domain.ParseChord(spec)
		if err != nil {
			slog.Warn("[hotkey] dropping unparseable keybind", "sound", soundID, "chord", spec)
			continue
		}
		if chord.Equal(r.stop) {
			slog.Warn("[hotkey] dropping reserved keybind", "sound", soundID, "chord", spec)
			continue
		}
		if err := r.install(soundID, chord); err != nil {
			slog.Warn("[hotkey] could not restore keybind", "sound", soundID, "chord", chord.String(), "error", err)
		}
	}

	return nil
}

func (r *Registry) install(soundID string, chord domain.Chord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byChord[chord.String()]; taken {
		return fmt.Errorf("chord %q already bound", chord)
	}

	hook, err := r.provider.Install(chord)
	if err != nil {
		return err
	}

	b := &binding{soundID: soundID, chord: chord, hook: hook}
	r.byChord[chord.String()] = b
	r.bySound[soundID] = b
	go r.forward(hook, trigger{chord: chord.String()})
	return nil
}

// Bind assigns spec's chord to soundID and returns the sound's previous
// chord string, empty when it had none. The sound's old hook is
// released before the new one installs; when the OS refuses the new
// hook, both the sound's old binding and any evicted binding are
// reinstalled so a failed bind changes nothing.
func (r *Registry) Bind(soundID string, spec string) (string, error) {
	chord, err := domain.ParseChord(spec)
	if err != nil {
		return "", err
	}
	if chord.Equal(r.stop) {
		return "", fmt.Errorf("%w: %s", domain.ErrReservedHotkey, chord)
	}

	r.mu.Lock()

	var previous string
	own := r.bySound[soundID]
	if own != nil {
		previous = own.chord.String()
		if own.chord.Equal(chord) {
			r.mu.Unlock()
			return previous, nil
		}
	}
	evicted := r.byChord[chord.String()]

	if own != nil {
		r.removeLocked(own)
	}
	if evicted != nil {
		r.removeLocked(evicted)
	}

	hook, err := r.provider.Install(chord)
	if err != nil {
		if own != nil {
			r.reinstallLocked(own)
		}
		if evicted != nil {
			r.reinstallLocked(evicted)
		}
		r.mu.Unlock()
		return "", fmt.Errorf("%w for %q: %v", domain.ErrHookInstall, chord, err)
	}

	b := &binding{soundID: soundID, chord: chord, hook: hook}
	r.byChord[chord.String()] = b
	r.bySound[soundID] = b
	go r.forward(hook, trigger{chord: chord.String()})

	table := r.snapshotLocked()
	r.mu.Unlock()

	r.persist(table)
	return previous, nil
}

// Unbind releases soundID's chord. Unbinding a sound with no chord is
// a no-op.
func (r *Registry) Unbind(soundID string) error {
	r.mu.Lock()
	b := r.bySound[soundID]
	if b == nil {
		r.mu.Unlock()
		return nil
	}
	r.removeLocked(b)
	table := r.snapshotLocked()
	r.mu.Unlock()

	r.persist(table)
	return nil
}

// Resolve looks up the sound bound to a canonical chord string.
func (r *Registry) Resolve(chord string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byChord[chord]
	if !ok {
		return "", false
	}
	return b.soundID, true
}

// Bindings returns a copy of the current soundID to chord table.
func (r *Registry) Bindings() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// StopHotkey returns the reserved stop chord's canonical string.
func (r *Registry) StopHotkey() string {
	return r.stop.String()
}

// Close releases every hook and stops the dispatcher. In-flight
// triggers drain through the closed keydown channels.
func (r *Registry) Close() error {
	r.mu.Lock()
	for _, b := range r.bySound {
		if err := b.hook.Close(); err != nil {
			slog.Warn("[hotkey] hook close failed", "sound", b.soundID, "error", err)
		}
	}
	r.byChord = map[string]*binding{}
	r.bySound = map[string]*binding{}
	stopHook := r.stopHook
	r.stopHook = nil
	r.mu.Unlock()

	if stopHook != nil {
		if err := stopHook.Close(); err != nil {
			slog.Warn("[hotkey] stop hook close failed", "error", err)
		}
	}

	r.dispatch.stop()
	return nil
}

func (r *Registry) forward(hook ports.Hook, t trigger) {
	for range hook.Keydown() {
		r.dispatch.send(t)
	}
}

func (r *Registry) removeLocked(b *binding) {
	if err := b.hook.Close(); err != nil {
		slog.Warn("[hotkey] hook close failed", "sound", b.soundID, "error", err)
	}
	delete(r.byChord, b.chord.String())
	delete(r.bySound, b.soundID)
}

func (r *Registry) reinstallLocked(b *binding) {
	hook, err := r.provider.Install(b.chord)
	if err != nil {
		slog.Warn("[hotkey] could not reinstall keybind", "sound", b.soundID, "chord", b.chord.String(), "error", err)
		return
	}
	restored := &binding{soundID: b.soundID, chord: b.chord, hook: hook}
	r.byChord[b.chord.String()] = restored
	r.bySound[b.soundID] = restored
	go r.forward(hook, trigger{chord: b.chord.String()})
}

func (r *Registry) snapshotLocked() map[string]string {
	table := make(map[string]string, len(r.bySound))
	for soundID, b := range r.bySound {
		table[soundID] = b.chord.String()
	}
	return table
}

func (r *Registry) persist(table map[string]string) {
	if err := r.store.Save(table); err != nil {
		slog.Warn("[hotkey] could not persist keybinds", "error", err)
		r.events.BackendError(domain.ErrorCodeStoreWrite, err.Error())
	}
}
