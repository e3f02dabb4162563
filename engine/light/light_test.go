package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	if l.Position() != (mgl32.Vec3{4, 8, 4}) {
		t.Errorf("Position = %v, want (4, 8, 4)", l.Position())
	}
	if l.Color() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Color = %v, want white", l.Color())
	}
	if l.Intensity() != 100 || l.Ambient() != 0.1 {
		t.Errorf("Intensity, Ambient = %v, %v, want 100, 0.1", l.Intensity(), l.Ambient())
	}
}

func TestOptionsClamp(t *testing.T) {
	l := NewLight(
		WithPosition(1, 2, 3),
		WithColor(0.5, 0.25, 0),
		WithIntensity(-3),
		WithAmbient(2),
	)
	if l.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position = %v", l.Position())
	}
	if l.Color() != (mgl32.Vec3{0.5, 0.25, 0}) {
		t.Errorf("Color = %v", l.Color())
	}
	if l.Intensity() != 0 {
		t.Errorf("Intensity = %v, want clamped to 0", l.Intensity())
	}
	if l.Ambient() != 1 {
		t.Errorf("Ambient = %v, want clamped to 1", l.Ambient())
	}
}

func TestUniformMarshal(t *testing.T) {
	l := NewLight()
	l.SetPosition(mgl32.Vec3{-1, 6, 2})
	u := l.Uniform()
	if u.Size() != 32 {
		t.Fatalf("Size() = %d, want 32", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 32 {
		t.Fatalf("len(Marshal()) = %d, want 32", len(buf))
	}
	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	want := map[int]float32{0: -1, 4: 6, 8: 2, 12: 100, 16: 1, 20: 1, 24: 1, 28: 0.1}
	for offset, v := range want {
		if got := read(offset); got != v {
			t.Errorf("offset %d = %v, want %v", offset, got, v)
		}
	}
}
