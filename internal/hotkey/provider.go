package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"soundbox/internal/domain"
	"soundbox/internal/ports"
)

// SystemProvider installs real OS-level hooks via golang.design/x/hotkey.
type SystemProvider struct{}

func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

func (p *SystemProvider) Install(chord domain.Chord) (ports.Hook, error) {
	mods := make([]hotkey.Modifier, 0, len(chord.Modifiers()))
	for _, mod := range chord.Modifiers() {
		native, ok := nativeModifiers[mod]
		if !ok {
			return nil, fmt.Errorf("modifier %q not supported on this platform", mod)
		}
		mods = append(mods, native)
	}

	key, ok := nativeKeys[chord.Key()]
	if !ok {
		return nil, fmt.Errorf("key %q not supported on this platform", chord.Key())
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register %q: %w", chord, err)
	}

	h := &systemHook{
		hk:      hk,
		keydown: make(chan struct{}, 4),
		quit:    make(chan struct{}),
	}
	go h.pump()
	return h, nil
}

type systemHook struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	quit    chan struct{}
	once    sync.Once
	err     error
}

func (h *systemHook) Keydown() <-chan struct{} { return h.keydown }

func (h *systemHook) pump() {
	defer close(h.keydown)
	for {
		select {
		case <-h.hk.Keydown():
			select {
			case h.keydown <- struct{}{}:
			default:
			}
		case <-h.quit:
			return
		}
	}
}

func (h *systemHook) Close() error {
	h.once.Do(func() {
		close(h.quit)
		h.err = h.hk.Unregister()
	})
	return h.err
}
