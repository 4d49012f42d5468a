package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"soundbox/internal/bootstrap"
	"soundbox/internal/domain"
	"soundbox/internal/library"
)

const (
	eventPlaying = "soundbox:playing"
	eventStopped = "soundbox:stopped"
	eventError   = "soundbox:error"
)

// App is the Wails application root.
type App struct {
	ctx context.Context

	services bootstrap.Services
	bootErr  error

	mu       sync.Mutex
	settings domain.Settings
	sounds   []domain.Sound
}

func NewApp() *App {
	return &App{}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	services, err := bootstrap.Build(a, &registryActions{app: a})
	if err != nil {
		a.bootErr = err
		a.BackendError(domain.ErrorCodeStartup, err.Error())
		return
	}
	a.services = services

	settings, err := services.Settings.Load()
	if err != nil {
		slog.Warn("[app] could not load settings", "error", err)
		a.BackendError(domain.ErrorCodeStoreRead, err.Error())
	}
	a.mu.Lock()
	a.settings = settings
	a.sounds = library.Scan(settings.Directory)
	a.mu.Unlock()

	services.Player.SetOutputDevice(settings.DefaultOutput)
	services.Player.SetInputDevice(settings.DefaultInput)
	services.Player.SetOutputVolume(settings.VolumeOutput)
	services.Player.SetInputVolume(settings.VolumeInput)

	if err := services.Registry.Start(); err != nil {
		slog.Warn("[app] could not start keybind registry", "error", err)
		a.BackendError(domain.ErrorCodeStartup, err.Error())
	}
}

func (a *App) shutdown(_ context.Context) {
	if a.bootErr != nil {
		return
	}
	if a.services.Registry != nil {
		a.services.Registry.Close()
	}
	if a.services.Player != nil {
		a.services.Player.Stop()
	}
	if a.services.Devices != nil {
		a.services.Devices.Close()
	}
}

// ListSounds returns the current library, newest first.
func (a *App) ListSounds() []domain.Sound {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Sound(nil), a.sounds...)
}

// SearchSounds filters the library by a case-insensitive substring.
func (a *App) SearchSounds(query string) []domain.Sound {
	a.mu.Lock()
	defer a.mu.Unlock()
	return library.Filter(a.sounds, query)
}

// ReloadSounds rescans the configured folder.
func (a *App) ReloadSounds() []domain.Sound {
	a.mu.Lock()
	dir := a.settings.Directory
	a.mu.Unlock()

	sounds := library.Scan(dir)

	a.mu.Lock()
	a.sounds = sounds
	a.mu.Unlock()
	return append([]domain.Sound(nil), sounds...)
}

// SelectFolder opens a directory picker and switches the library to
// the chosen folder. Returns the new library, or nil when cancelled.
func (a *App) SelectFolder() ([]domain.Sound, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}

	dir, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select sound folder",
	})
	if err != nil {
		return nil, fmt.Errorf("folder dialog: %w", err)
	}
	if dir == "" {
		return nil, nil
	}

	a.mu.Lock()
	a.settings.Directory = dir
	a.sounds = library.Scan(dir)
	settings := a.settings
	sounds := append([]domain.Sound(nil), a.sounds...)
	a.mu.Unlock()

	a.persistSettings(settings)
	return sounds, nil
}

// PlaySound plays a sound by display name.
func (a *App) PlaySound(name string) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.playByName(name)
}

// StopPlayback silences everything immediately.
func (a *App) StopPlayback() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Player.Stop()
	a.PlaybackStopped()
	return nil
}

// SetOutputVolume adjusts and persists the listening volume (0-100).
func (a *App) SetOutputVolume(level int) error {
	if err := a.requireReady(); err != nil {
		return err
	}

	a.mu.Lock()
	a.settings.VolumeOutput = clampVolume(level)
	settings := a.settings
	a.mu.Unlock()

	a.services.Player.SetOutputVolume(settings.VolumeOutput)
	a.persistSettings(settings)
	return nil
}

// SetInputVolume adjusts and persists the virtual-cable volume (0-100).
func (a *App) SetInputVolume(level int) error {
	if err := a.requireReady(); err != nil {
		return err
	}

	a.mu.Lock()
	a.settings.VolumeInput = clampVolume(level)
	settings := a.settings
	a.mu.Unlock()

	a.services.Player.SetInputVolume(settings.VolumeInput)
	a.persistSettings(settings)
	return nil
}

// ListOutputDevices lists playback endpoints for the listening route.
func (a *App) ListOutputDevices() ([]domain.Device, error) {
	return a.listPlaybackDevices()
}

// ListInputDevices lists playback endpoints for the microphone route.
// The "input" is the playback side of a virtual cable, so the list is
// the same as the output list.
func (a *App) ListInputDevices() ([]domain.Device, error) {
	return a.listPlaybackDevices()
}

func (a *App) listPlaybackDevices() ([]domain.Device, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	devices, err := a.services.Devices.PlaybackDevices()
	if err != nil {
		a.BackendError(domain.ErrorCodeDevices, err.Error())
		return nil, err
	}
	return devices, nil
}

// SetOutputDevice selects and persists the listening endpoint.
func (a *App) SetOutputDevice(name string) error {
	if err := a.requireReady(); err != nil {
		return err
	}

	a.mu.Lock()
	a.settings.DefaultOutput = name
	settings := a.settings
	a.mu.Unlock()

	a.services.Player.SetOutputDevice(name)
	a.persistSettings(settings)
	return nil
}

// SetInputDevice selects and persists the virtual-cable endpoint.
// Empty disables the route.
func (a *App) SetInputDevice(name string) error {
	if err := a.requireReady(); err != nil {
		return err
	}

	a.mu.Lock()
	a.settings.DefaultInput = name
	settings := a.settings
	a.mu.Unlock()

	a.services.Player.SetInputDevice(name)
	a.persistSettings(settings)
	return nil
}

// BindHotkey assigns a hotkey to a sound and returns the sound's
// previous hotkey, empty when it had none.
func (a *App) BindHotkey(name string, hotkeySpec string) (string, error) {
	if err := a.requireReady(); err != nil {
		return "", err
	}

	previous, err := a.services.Registry.Bind(name, hotkeySpec)
	if err != nil {
		a.BackendError(bindErrorCode(err), err.Error())
		return "", err
	}
	return previous, nil
}

// UnbindHotkey releases a sound's hotkey.
func (a *App) UnbindHotkey(name string) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.services.Registry.Unbind(name)
}

// Keybinds returns the current display-name to hotkey table.
func (a *App) Keybinds() (map[string]string, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.services.Registry.Bindings(), nil
}

// StopHotkey returns the reserved stop hotkey for display.
func (a *App) StopHotkey() (string, error) {
	if err := a.requireReady(); err != nil {
		return "", err
	}
	return a.services.Registry.StopHotkey(), nil
}

// GetSettings returns the persisted settings snapshot.
func (a *App) GetSettings() domain.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

func (a *App) playByName(name string) error {
	a.mu.Lock()
	var path string
	for _, s := range a.sounds {
		if s.Name == name {
			path = s.Path
			break
		}
	}
	a.mu.Unlock()

	if path == "" {
		a.BackendError(domain.ErrorCodeSoundMissing, name)
		return fmt.Errorf("%w: %s", domain.ErrSoundNotFound, name)
	}

	if err := a.services.Player.Play(path); err != nil {
		a.BackendError(domain.ErrorCodePlayback, err.Error())
		return err
	}
	a.PlaybackStarted(name)
	return nil
}

func (a *App) persistSettings(settings domain.Settings) {
	if err := a.services.Settings.Save(settings); err != nil {
		slog.Warn("[app] could not persist settings", "error", err)
		a.BackendError(domain.ErrorCodeStoreWrite, err.Error())
	}
}

func (a *App) requireReady() error {
	if a.bootErr != nil {
		return a.bootErr
	}
	if a.services.Registry == nil {
		return fmt.Errorf("application is not initialized")
	}
	return nil
}

// PlaybackStarted emits the now-playing event to the frontend.
func (a *App) PlaybackStarted(name string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventPlaying, map[string]string{"name": name})
}

// PlaybackStopped emits the playback-finished event to the frontend.
func (a *App) PlaybackStopped() {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventStopped)
}

// BackendError emits backend errors to the UI.
func (a *App) BackendError(code domain.ErrorCode, detail string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventError, map[string]string{
		"code":    string(code),
		"message": errorMessage(code, detail),
		"detail":  detail,
	})
}

func errorMessage(code domain.ErrorCode, detail string) string {
	switch code {
	case domain.ErrorCodeStartup:
		return "Startup failed"
	case domain.ErrorCodePlayback:
		return "Playback failed"
	case domain.ErrorCodeSoundMissing:
		return "Sound file not found"
	case domain.ErrorCodeInvalidHotkey:
		return "Hotkey not recognized"
	case domain.ErrorCodeReservedHotkey:
		return "Hotkey is reserved for stopping playback"
	case domain.ErrorCodeHookInstall:
		return "Could not register global hotkey"
	case domain.ErrorCodeStoreRead:
		return "Could not read saved configuration"
	case domain.ErrorCodeStoreWrite:
		return "Could not save configuration"
	case domain.ErrorCodeDevices:
		return "Could not list audio devices"
	default:
		if detail == "" {
			return "Unknown error"
		}
		return detail
	}
}

func bindErrorCode(err error) domain.ErrorCode {
	switch {
	case errors.Is(err, domain.ErrReservedHotkey):
		return domain.ErrorCodeReservedHotkey
	case errors.Is(err, domain.ErrInvalidHotkey):
		return domain.ErrorCodeInvalidHotkey
	case errors.Is(err, domain.ErrHookInstall):
		return domain.ErrorCodeHookInstall
	default:
		return domain.ErrorCodeHookInstall
	}
}

func clampVolume(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// registryActions routes hotkey triggers into the app.
type registryActions struct {
	app *App
}

func (r *registryActions) PlaySound(soundID string) {
	if r.app.requireReady() != nil {
		return
	}
	if err := r.app.playByName(soundID); err != nil {
		slog.Warn("[app] hotkey play failed", "sound", soundID, "error", err)
	}
}

func (r *registryActions) StopPlayback() {
	if r.app.requireReady() != nil {
		return
	}
	r.app.services.Player.Stop()
	r.app.PlaybackStopped()
}
