package camera

import (
	"encoding/binary"
	"math"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/go-gl/mathgl/mgl32"
)

func approxEqual(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) < float64(eps)
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	if !approxEqual(c.Fov(), float32(math.Pi/4), 1e-6) {
		t.Errorf("Fov = %f, want pi/4", c.Fov())
	}
	if c.Aspect() != 1 || c.Near() != 0.1 || c.Far() != 100 {
		t.Errorf("aspect/near/far = %f/%f/%f, want 1/0.1/100", c.Aspect(), c.Near(), c.Far())
	}
	if c.ViewMatrix() != mgl32.Ident4() {
		t.Errorf("view at origin = %v, want identity", c.ViewMatrix())
	}
}

func TestViewMatrixFromOrbitTransform(t *testing.T) {
	cam := orbit.DefaultOrbitCamera()
	cam.Yaw, cam.Pitch = 0.7, 1.1
	tf := orbit.NewTransform(mgl32.Vec3{})
	cam.Place(&tf)

	c := NewCamera(WithTransform(tf))

	// The pivot sits straight ahead at the orbit distance.
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !approxEqual(p.X(), 0, 1e-4) || !approxEqual(p.Y(), 0, 1e-4) || !approxEqual(p.Z(), -cam.Distance, 1e-4) {
		t.Errorf("pivot in view space = %v, want (0, 0, %f)", p, -cam.Distance)
	}

	// The view matrix inverts the model matrix.
	if !c.ViewMatrix().Mul4(tf.Matrix()).ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Error("view * model is not identity")
	}
}

func TestSetAspectUpdatesProjection(t *testing.T) {
	c := NewCamera(WithTransform(orbit.NewTransform(mgl32.Vec3{0, 0, 5})))
	before := c.ProjectionMatrix()
	c.SetAspect(2)
	after := c.ProjectionMatrix()
	if !approxEqual(after[0], before[0]/2, 1e-6) {
		t.Errorf("x scale = %f, want %f", after[0], before[0]/2)
	}
	if !c.ViewProjectionMatrix().ApproxEqualThreshold(after.Mul4(c.ViewMatrix()), 1e-6) {
		t.Error("view-projection not recomputed")
	}
}

func TestUniformMarshal(t *testing.T) {
	tf := orbit.NewTransform(mgl32.Vec3{-3, 3, 5}).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	c := NewCamera(WithAspect(16.0/9.0), WithTransform(tf))
	u := c.Uniform()

	if u.Size() != 80 {
		t.Fatalf("Size = %d, want 80", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("len(Marshal) = %d, want 80", len(buf))
	}
	vp := c.ViewProjectionMatrix()
	for i := range 16 {
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])); got != vp[i] {
			t.Errorf("view_proj[%d] = %f, want %f", i, got, vp[i])
		}
	}
	for i := range 3 {
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:])); got != tf.Translation[i] {
			t.Errorf("camera_position[%d] = %f, want %f", i, got, tf.Translation[i])
		}
	}
	if GPUCameraUniformSource == "" {
		t.Error("embedded WGSL source is empty")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewCamera()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c.SetTransform(orbit.NewTransform(mgl32.Vec3{float32(i), 0, 1}))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = c.Uniform()
		}
	}()
	wg.Wait()
	if c.Transform().Translation.X() != 199 {
		t.Errorf("final translation = %v, want x=199", c.Transform().Translation)
	}
}
