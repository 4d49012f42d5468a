package main

import (
	"errors"
	"fmt"
	"testing"

	"soundbox/internal/domain"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	cases := map[domain.ErrorCode]string{
		domain.ErrorCodeStartup:        "Startup failed",
		domain.ErrorCodePlayback:       "Playback failed",
		domain.ErrorCodeSoundMissing:   "Sound file not found",
		domain.ErrorCodeInvalidHotkey:  "Hotkey not recognized",
		domain.ErrorCodeReservedHotkey: "Hotkey is reserved for stopping playback",
		domain.ErrorCodeHookInstall:    "Could not register global hotkey",
		domain.ErrorCodeStoreRead:      "Could not read saved configuration",
		domain.ErrorCodeStoreWrite:     "Could not save configuration",
		domain.ErrorCodeDevices:        "Could not list audio devices",
	}
	for code, want := range cases {
		code := code
		want := want
		t.Run(string(code), func(t *testing.T) {
			t.Parallel()
			if got := errorMessage(code, "ignored"); got != want {
				t.Fatalf("unexpected message: %q", got)
			}
		})
	}

	if got := errorMessage("unknown", "detail"); got != "detail" {
		t.Fatalf("expected detail fallback, got %q", got)
	}
	if got := errorMessage("unknown", ""); got != "Unknown error" {
		t.Fatalf("expected unknown fallback, got %q", got)
	}
}

func TestBindErrorCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want domain.ErrorCode
	}{
		{fmt.Errorf("%w: nope", domain.ErrInvalidHotkey), domain.ErrorCodeInvalidHotkey},
		{fmt.Errorf("%w: backspace", domain.ErrReservedHotkey), domain.ErrorCodeReservedHotkey},
		{fmt.Errorf("%w for %q: denied", domain.ErrHookInstall, "ctrl+l"), domain.ErrorCodeHookInstall},
		{errors.New("something else"), domain.ErrorCodeHookInstall},
	}
	for _, tc := range cases {
		if got := bindErrorCode(tc.err); got != tc.want {
			t.Fatalf("bindErrorCode(%v): expected %q, got %q", tc.err, tc.want, got)
		}
	}
}

func TestRequireReady(t *testing.T) {
	t.Parallel()

	app := &App{}
	if err := app.requireReady(); err == nil {
		t.Fatalf("expected uninitialized error")
	}

	bootErr := errors.New("boot")
	app.bootErr = bootErr
	if err := app.requireReady(); !errors.Is(err, bootErr) {
		t.Fatalf("expected boot error, got %v", err)
	}
}

func TestRegistryActionsGuardUninitializedApp(t *testing.T) {
	t.Parallel()

	actions := &registryActions{app: &App{}}
	actions.PlaySound("Laugh")
	actions.StopPlayback()
}

func TestClampVolume(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want int
	}{
		{-10, 0}, {0, 0}, {50, 50}, {100, 100}, {150, 100},
	}
	for _, tc := range cases {
		if got := clampVolume(tc.in); got != tc.want {
			t.Fatalf("clampVolume(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
