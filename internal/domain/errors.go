package domain

import "errors"

var (
	// ErrInvalidHotkey reports a hotkey string that does not parse.
	ErrInvalidHotkey = errors.New("invalid hotkey")

	// ErrReservedHotkey reports an attempt to bind the stop hotkey to a sound.
	ErrReservedHotkey = errors.New("hotkey is reserved for stopping playback")

	// ErrHookInstall reports that the OS refused to install a global hook.
	ErrHookInstall = errors.New("could not install global hotkey")

	// ErrSoundNotFound reports a sound name with no backing file.
	ErrSoundNotFound = errors.New("sound file not found")
)
