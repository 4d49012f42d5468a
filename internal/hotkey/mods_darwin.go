//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"soundbox/internal/domain"
)

var nativeModifiers = map[domain.Modifier]hotkey.Modifier{
	domain.ModCtrl:  hotkey.ModCtrl,
	domain.ModAlt:   hotkey.ModOption,
	domain.ModShift: hotkey.ModShift,
	domain.ModSuper: hotkey.ModCmd,
}
