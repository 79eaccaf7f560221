package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the fourth column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if got := TranslateVec3(Vec3{5, 10, 15}); got != m {
		t.Errorf("TranslateVec3 = %v, want %v", got, m)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
	if UniformScale(0.4) != Scale(0.4, 0.4, 0.4) {
		t.Error("UniformScale should match Scale with equal factors")
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTranslateScaleOrder(t *testing.T) {
	// T * S scales first, then translates.
	m := Translate(0.48, 0.48, 0).Mul(UniformScale(0.4))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{0.88, 0.48, 0}
	if !near3(got, want, 1e-6) {
		t.Errorf("T*S point: got %v, want %v", got, want)
	}
	if got := (Vec3{m[12], m[13], m[14]}); !near3(got, Vec3{0.48, 0.48, 0}, 1e-7) {
		t.Errorf("translation column = %v", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !near3(result, Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateAxisMatchesRotateY(t *testing.T) {
	angle := DegToRad(37)
	a := RotateAxis(Vec3{0, 5, 0}, angle)
	b := RotateY(angle)
	for i := range a {
		if abs(a[i]-b[i]) > 1e-6 {
			t.Fatalf("element %d: RotateAxis %v, RotateY %v", i, a[i], b[i])
		}
	}
}

func TestRotateAxisKeepsAxis(t *testing.T) {
	axis := Vec3{1, 1, 0}
	m := RotateAxis(axis, DegToRad(73))
	got := m.TransformDirection(axis)
	if !near3(got, axis, 1e-5) {
		t.Errorf("rotation should leave its axis fixed: got %v", got)
	}
	// Rotations preserve length.
	v := Vec3{0.3, -0.2, 0.9}
	if l := m.TransformDirection(v).Length(); abs(l-v.Length()) > 1e-5 {
		t.Errorf("length changed: %v -> %v", v.Length(), l)
	}
}

func TestQuatToMat4Identity(t *testing.T) {
	m := QuatIdentity().ToMat4()
	identity := Identity()
	for i := 0; i < 16; i++ {
		if abs(m[i]-identity[i]) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); abs(got-float32(math.Pi)) > 1e-6 {
		t.Errorf("DegToRad(180) = %v", got)
	}
}

func near3(a, b Vec3, tol float32) bool {
	return abs(a.X-b.X) <= tol && abs(a.Y-b.Y) <= tol && abs(a.Z-b.Z) <= tol
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
