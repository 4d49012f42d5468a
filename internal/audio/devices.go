package audio

import (
	"fmt"
	"unsafe"

	"github.com/gen2brain/malgo"

	"soundbox/internal/domain"
	"soundbox/internal/ports"
)

var _ ports.DeviceLister = (*Context)(nil)

// Context wraps the miniaudio context shared by device enumeration and
// playback.
type Context struct {
	ctx *malgo.AllocatedContext
}

func NewContext() (*Context, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}
	return &Context{ctx: ctx}, nil
}

// PlaybackDevices lists the system's playback endpoints. Both device
// selectors use this list: the input route targets the playback side of
// a virtual cable, not a capture device.
func (c *Context) PlaybackDevices() ([]domain.Device, error) {
	infos, err := c.ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("enumerate playback devices: %w", err)
	}

	devices := make([]domain.Device, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, domain.Device{Name: info.Name()})
	}
	return devices, nil
}

// playbackDeviceID resolves a device name to its miniaudio ID. An
// empty or unknown name yields nil, which selects the system default.
func (c *Context) playbackDeviceID(name string) unsafe.Pointer {
	if name == "" {
		return nil
	}
	infos, err := c.ctx.Devices(malgo.Playback)
	if err != nil {
		return nil
	}
	for i := range infos {
		if infos[i].Name() == name {
			return infos[i].ID.Pointer()
		}
	}
	return nil
}

func (c *Context) Close() error {
	err := c.ctx.Uninit()
	c.ctx.Free()
	return err
}
