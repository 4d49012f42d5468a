package audio

import (
	"os"
	"path/filepath"
	"testing"
)

// testStreamer yields a constant full-scale sample for a fixed number
// of frames.
type testStreamer struct {
	remaining int
	value     float64
}

func (s *testStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	n := len(samples)
	if n > s.remaining {
		n = s.remaining
	}
	for i := 0; i < n; i++ {
		samples[i][0] = s.value
		samples[i][1] = s.value
	}
	s.remaining -= n
	return n, true
}

func (s *testStreamer) Err() error { return nil }

func TestRouteFillReportsDrainOnce(t *testing.T) {
	t.Parallel()

	rt := newRoute(&testStreamer{remaining: 6, value: 0.5}, 100)
	out := make([]byte, 4*4)

	if drained := rt.fill(out); drained {
		t.Fatalf("first chunk should not drain")
	}
	if drained := rt.fill(out); !drained {
		t.Fatalf("short read should report drain")
	}
	if drained := rt.fill(out); drained {
		t.Fatalf("drain must report only once")
	}
	for i, b := range out {
		if b != 0 {
			t.Fatalf("expected silence after drain, byte %d = %d", i, b)
		}
	}
}

func TestRouteFillZeroFillsTail(t *testing.T) {
	t.Parallel()

	rt := newRoute(&testStreamer{remaining: 2, value: 1}, 100)
	out := make([]byte, 4*4)

	if drained := rt.fill(out); !drained {
		t.Fatalf("exhausting the streamer should drain")
	}
	for i := 2 * 4; i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("expected zero tail, byte %d = %d", i, out[i])
		}
	}
	if out[0] == 0 && out[1] == 0 {
		t.Fatalf("expected audible samples before the tail")
	}
}

func TestRouteVolumeZeroIsSilent(t *testing.T) {
	t.Parallel()

	rt := newRoute(&testStreamer{remaining: 8, value: 1}, 0)
	out := make([]byte, 4*4)
	rt.fill(out)

	for i, b := range out {
		if b != 0 {
			t.Fatalf("expected silence at volume 0, byte %d = %d", i, b)
		}
	}
}

func TestWriteSampleClamps(t *testing.T) {
	t.Parallel()

	out := make([]byte, 2)

	writeSample(out, 2.5)
	if got := int16(out[0]) | int16(out[1])<<8; got != 32767 {
		t.Fatalf("expected positive clamp, got %d", got)
	}

	writeSample(out, -2.5)
	if got := int16(uint16(out[0]) | uint16(out[1])<<8); got != -32767 {
		t.Fatalf("expected negative clamp, got %d", got)
	}

	writeSample(out, 0)
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("expected zero sample")
	}
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.txt")
	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := decode(path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestDecodeMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := decode(filepath.Join(t.TempDir(), "absent.mp3")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
