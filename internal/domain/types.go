package domain

// Sound is one playable entry of the sound library. Name is the unique
// user-facing display name; two files sharing a base name get distinct
// names by keeping the extension on the later one.
type Sound struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Device identifies an audio endpoint by its human-readable name.
type Device struct {
	Name string `json:"name"`
}

// Settings is the persisted application state. Volumes range 0-100.
type Settings struct {
	Directory     string `json:"directory"`
	DefaultOutput string `json:"defaultOutput"`
	DefaultInput  string `json:"defaultInput"`
	VolumeOutput  int    `json:"volumeOutput"`
	VolumeInput   int    `json:"volumeInput"`
}

// ErrorCode identifies non-fatal backend errors surfaced to the UI.
type ErrorCode string

const (
	ErrorCodeStartup        ErrorCode = "startup"
	ErrorCodePlayback       ErrorCode = "playback"
	ErrorCodeSoundMissing   ErrorCode = "sound_missing"
	ErrorCodeInvalidHotkey  ErrorCode = "invalid_hotkey"
	ErrorCodeReservedHotkey ErrorCode = "reserved_hotkey"
	ErrorCodeHookInstall    ErrorCode = "hook_install"
	ErrorCodeStoreRead      ErrorCode = "store_read"
	ErrorCodeStoreWrite     ErrorCode = "store_write"
	ErrorCodeDevices        ErrorCode = "devices"
)
