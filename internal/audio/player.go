// Package audio plays decoded sound files through miniaudio playback
// devices.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const defaultVolume = 50

// Player plays one sound at a time over up to two routes: the output
// device the user listens on and the playback side of a virtual cable
// acting as their microphone. Starting a sound replaces the previous
// one.
type Player struct {
	ctx    *Context
	onDone func()

	mu         sync.Mutex
	outputName string
	inputName  string
	outputVol  int
	inputVol   int
	session    *session
}

// NewPlayer wires the player to an audio context. onDone fires once
// each time a sound plays to completion, never on explicit Stop.
func NewPlayer(ctx *Context, onDone func()) *Player {
	return &Player{
		ctx:       ctx,
		onDone:    onDone,
		outputVol: defaultVolume,
		inputVol:  defaultVolume,
	}
}

func decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode sound: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// Play decodes the file and starts it on the configured routes,
// stopping any sound already playing.
func (p *Player) Play(path string) error {
	buffer, err := decode(path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	type target struct {
		route      *route
		deviceName string
	}
	targets := []target{{
		route:      newRoute(buffer.Streamer(0, buffer.Len()), p.outputVol),
		deviceName: p.outputName,
	}}
	if p.inputName != "" {
		targets = append(targets, target{
			route:      newRoute(buffer.Streamer(0, buffer.Len()), p.inputVol),
			deviceName: p.inputName,
		})
	}

	sess := &session{
		drained: make(chan struct{}, len(targets)),
		quit:    make(chan struct{}),
	}
	for _, tgt := range targets {
		cfg := malgo.DefaultDeviceConfig(malgo.Playback)
		cfg.Playback.Format = malgo.FormatS16
		cfg.Playback.Channels = 2
		cfg.SampleRate = uint32(buffer.Format().SampleRate)
		cfg.Playback.DeviceID = p.ctx.playbackDeviceID(tgt.deviceName)

		rt := tgt.route
		callbacks := malgo.DeviceCallbacks{
			Data: func(out, _ []byte, _ uint32) {
				if rt.fill(out) {
					select {
					case sess.drained <- struct{}{}:
					default:
					}
				}
			},
		}

		device, err := malgo.InitDevice(p.ctx.ctx.Context, cfg, callbacks)
		if err != nil {
			sess.teardown()
			return fmt.Errorf("open playback device %q: %w", tgt.deviceName, err)
		}
		sess.devices = append(sess.devices, device)
		if err := device.Start(); err != nil {
			sess.teardown()
			return fmt.Errorf("start playback device %q: %w", tgt.deviceName, err)
		}
	}

	sess.outputRoute = targets[0].route
	if len(targets) > 1 {
		sess.inputRoute = targets[1].route
	}

	p.session = sess
	go p.watch(sess, len(targets))
	return nil
}

// watch waits for every route to drain, then tears the session down
// and reports completion.
func (p *Player) watch(sess *session, routes int) {
	for drained := 0; drained < routes; {
		select {
		case <-sess.drained:
			drained++
		case <-sess.quit:
			return
		}
	}

	p.mu.Lock()
	if p.session == sess {
		p.session = nil
	}
	p.mu.Unlock()

	sess.teardown()
	if p.onDone != nil {
		p.onDone()
	}
}

// Stop silences playback immediately. The completion callback does not
// fire for an explicitly stopped sound.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.session == nil {
		return
	}
	sess := p.session
	p.session = nil
	sess.teardown()
}

// SetOutputVolume adjusts the listening route, applying to the sound
// currently playing.
func (p *Player) SetOutputVolume(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outputVol = level
	if p.session != nil && p.session.outputRoute != nil {
		p.session.outputRoute.setLevel(level)
	}
}

// SetInputVolume adjusts the virtual-cable route, applying to the
// sound currently playing.
func (p *Player) SetInputVolume(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputVol = level
	if p.session != nil && p.session.inputRoute != nil {
		p.session.inputRoute.setLevel(level)
	}
}

// SetOutputDevice selects the listening endpoint by name. Takes effect
// on the next Play.
func (p *Player) SetOutputDevice(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outputName = name
}

// SetInputDevice selects the virtual-cable endpoint by name. Empty
// disables the route. Takes effect on the next Play.
func (p *Player) SetInputDevice(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputName = name
}

// session is one playing sound across its malgo devices.
type session struct {
	devices     []*malgo.Device
	outputRoute *route
	inputRoute  *route
	drained     chan struct{}
	quit        chan struct{}
	once        sync.Once
}

func (s *session) teardown() {
	s.once.Do(func() {
		close(s.quit)
		for _, d := range s.devices {
			d.Uninit()
		}
	})
}

// route streams one copy of the sound at its own volume.
type route struct {
	mu   sync.Mutex
	vol  *effects.Volume
	done bool
	buf  [][2]float64
}

func newRoute(streamer beep.Streamer, level int) *route {
	rt := &route{vol: &effects.Volume{Streamer: streamer, Base: 2}}
	rt.applyLevel(level)
	return rt
}

func (rt *route) setLevel(level int) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.applyLevel(level)
}

// applyLevel maps the UI's 0..100 to an exponential gain where 100 is
// unity and 50 is half amplitude.
func (rt *route) applyLevel(level int) {
	if level <= 0 {
		rt.vol.Silent = true
		return
	}
	if level > 100 {
		level = 100
	}
	rt.vol.Silent = false
	rt.vol.Volume = math.Log2(float64(level) / 100)
}

// fill renders the next chunk as interleaved s16le stereo, zero-filling
// past the end. It reports true exactly once, on the callback that
// exhausts the streamer.
func (rt *route) fill(out []byte) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.done {
		for i := range out {
			out[i] = 0
		}
		return false
	}

	frames := len(out) / 4
	if cap(rt.buf) < frames {
		rt.buf = make([][2]float64, frames)
	}
	samples := rt.buf[:frames]

	n, ok := rt.vol.Stream(samples)
	for i := 0; i < n; i++ {
		writeSample(out[i*4:], samples[i][0])
		writeSample(out[i*4+2:], samples[i][1])
	}
	for i := n * 4; i < len(out); i++ {
		out[i] = 0
	}

	if !ok || n < frames {
		rt.done = true
		return true
	}
	return false
}

func writeSample(out []byte, v float64) {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	s := int16(v * math.MaxInt16)
	out[0] = byte(s)
	out[1] = byte(s >> 8)
}
