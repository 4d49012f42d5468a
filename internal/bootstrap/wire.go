package bootstrap

import (
	"fmt"

	"soundbox/internal/audio"
	"soundbox/internal/config"
	"soundbox/internal/domain"
	"soundbox/internal/hotkey"
	"soundbox/internal/ports"
	"soundbox/internal/store"
)

// Services is the assembled runtime graph.
type Services struct {
	Config   config.Config
	Settings ports.SettingsStore
	Registry *hotkey.Registry
	Player   ports.Player
	Devices  *audio.Context
}

// Build wires all backend dependencies for the current runtime.
func Build(events ports.EventSink, actions hotkey.Actions) (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}

	stopChord, err := domain.ParseChord(cfg.StopHotkey)
	if err != nil {
		return Services{}, fmt.Errorf("stop hotkey %q: %w", cfg.StopHotkey, err)
	}

	deviceCtx, err := audio.NewContext()
	if err != nil {
		return Services{}, err
	}

	player := audio.NewPlayer(deviceCtx, events.PlaybackStopped)
	registry := hotkey.NewRegistry(
		hotkey.NewSystemProvider(),
		store.NewKeybinds(cfg.KeybindsPath),
		events,
		stopChord,
		actions,
	)

	return Services{
		Config:   cfg,
		Settings: store.NewSettings(cfg.SettingsPath),
		Registry: registry,
		Player:   player,
		Devices:  deviceCtx,
	}, nil
}
