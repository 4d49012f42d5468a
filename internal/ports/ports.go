package ports

import "soundbox/internal/domain"

// Player plays sound files through the configured output routes.
type Player interface {
	Play(path string) error
	Stop()
	SetOutputVolume(level int)
	SetInputVolume(level int)
	SetOutputDevice(name string)
	SetInputDevice(name string)
}

// Hook is one installed OS-level global hotkey. Keydown delivers one
// value per press; the channel is closed by Close.
type Hook interface {
	Keydown() <-chan struct{}
	Close() error
}

// HookProvider installs global hotkey hooks.
type HookProvider interface {
	Install(chord domain.Chord) (Hook, error)
}

// KeybindStore persists the display-name to chord table.
type KeybindStore interface {
	Load() (map[string]string, error)
	Save(table map[string]string) error
}

// SettingsStore persists application settings.
type SettingsStore interface {
	Load() (domain.Settings, error)
	Save(settings domain.Settings) error
}

// DeviceLister enumerates audio endpoints.
type DeviceLister interface {
	PlaybackDevices() ([]domain.Device, error)
}

// EventSink emits backend state/events to the UI.
type EventSink interface {
	PlaybackStarted(name string)
	PlaybackStopped()
	BackendError(code domain.ErrorCode, detail string)
}
