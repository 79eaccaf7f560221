package math

import (
	"testing"
)

func TestVec2Vec3(t *testing.T) {
	got := Vec2{0.5, -0.5}.Vec3(0)
	want := Vec3{0.5, -0.5, 0}
	if got != want {
		t.Errorf("Vec2.Vec3() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Mix(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 2, 4}

	tests := []struct {
		name string
		a    float32
		want Vec3
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"quarter", 0.25, Vec3{0.25, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Mix(b, tt.a); got != tt.want {
				t.Errorf("Mix(%v) = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestVec3Distance(t *testing.T) {
	if d := (Vec3{1, 1, 1}).Distance(Vec3{1, 4, 5}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if s := Splat3(0.5); s != (Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("Splat3 = %v", s)
	}
}
