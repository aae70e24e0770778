package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", zero)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Identity()
	p := Vec3{1, 2, 3}
	if got := m.TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
	}
}

func TestMat4Translate(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Translate.TransformPoint() = %v, want %v", got, want)
	}
}

func TestMat4Mul(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Translate(0, 2, 0)
	got := a.Mul(b).TransformPoint(Vec3{0, 0, 0})
	want := Vec3{1, 2, 0}
	if got != want {
		t.Errorf("Mul.TransformPoint() = %v, want %v", got, want)
	}
}

func TestLookAtKeepsEyeAtOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{Y: 1})
	got := m.TransformPoint(eye)
	if got.Length() > 1e-5 {
		t.Errorf("LookAt eye maps to %v, want origin", got)
	}
}

func TestRotateY(t *testing.T) {
	// Quarter turn maps +x onto +z.
	m := RotateY(3.14159265 / 2)
	got := m.TransformPoint(Vec3{1, 0, 0})
	if got.X > 1e-5 || got.X < -1e-5 || got.Z < 0.999 {
		t.Errorf("RotateY(pi/2).TransformPoint(+x) = %v, want ~(0,0,1)", got)
	}
}
