package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/glgeom/pkg/math"
)

func TestPositionStaysOnOrbitSphere(t *testing.T) {
	c := NewOrbitCamera()

	angles := []struct{ pitch, yaw float32 }{
		{0, 0},
		{0.4, 0},
		{0.4, 1.2},
		{-1.0, 3.0},
	}
	for _, a := range angles {
		c.RotationX = a.pitch
		c.RotationY = a.yaw

		pos := c.Position()
		dx := pos.X - c.CenterX
		dy := pos.Y - c.CenterY
		dz := pos.Z - c.CenterZ
		dist := math32.Sqrt(dx*dx + dy*dy + dz*dz)

		if math32.Abs(dist-c.Distance) > 1e-4 {
			t.Errorf("pitch=%v yaw=%v: distance from center = %v, want %v",
				a.pitch, a.yaw, dist, c.Distance)
		}
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("RotationX = %v after large upward drag, want clamped to %v", c.RotationX, c.MaxPitch)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("RotationX = %v after large downward drag, want clamped to %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v after zooming in, want %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v after zooming out, want %v", c.Distance, c.MaxDistance)
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0
	c.SetCenter(0, 0, 0)

	// Camera sits on +z looking at the origin, so the view transform
	// must place the center on the negative z-axis at Distance.
	view := c.ViewMatrix()
	p := view.TransformPoint(math.Vec3{})

	if math32.Abs(p.X) > 1e-4 || math32.Abs(p.Y) > 1e-4 || math32.Abs(p.Z+c.Distance) > 1e-4 {
		t.Errorf("view * center = %v, want (0, 0, %v)", p, -c.Distance)
	}
}
