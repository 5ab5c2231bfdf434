package minirt

import (
	"math"
	"testing"
)

func TestSphere_Intersect(t *testing.T) {
	s := Sphere{Center: V3(0, 0, 10), Radius: 2}

	tests := []struct {
		name  string
		ray   Ray
		wantT float64
		hit   bool
	}{
		{"head on", Ray{V3(0, 0, 0), V3(0, 0, 1)}, 8, true},
		{"from inside", Ray{V3(0, 0, 10), V3(0, 0, 1)}, 2, true},
		{"tangent miss", Ray{V3(0, 2.0001, 0), V3(0, 0, 1)}, 0, false},
		{"behind", Ray{V3(0, 0, 20), V3(0, 0, 1)}, 0, false},
		{"away", Ray{V3(0, 0, 0), V3(0, 0, -1)}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Intersect(tt.ray)
			if ok != tt.hit {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.hit)
			}
			if ok && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("Intersect() t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestSphere_Normal(t *testing.T) {
	s := Sphere{Center: V3(1, 1, 1), Radius: 2}
	if got := s.Normal(V3(1, 3, 1)); !got.Approx(V3(0, 1, 0), 1e-12) {
		t.Errorf("Normal() = %v, want (0,1,0)", got)
	}
}

func TestCamera_Basis(t *testing.T) {
	c := Camera{Position: V3(0, 0, -20), LookAt: V3(0, 0, 0)}
	f, r, u := c.basis()
	if !f.Approx(V3(0, 0, 1), 1e-12) || !r.Approx(V3(1, 0, 0), 1e-12) || !u.Approx(V3(0, 1, 0), 1e-12) {
		t.Errorf("basis() = %v %v %v, want +Z +X +Y", f, r, u)
	}

	// Looking straight up must still give an orthonormal basis.
	c = Camera{LookAt: V3(0, 5, 0)}
	f, r, u = c.basis()
	if math.Abs(f.Dot(r)) > 1e-12 || math.Abs(f.Dot(u)) > 1e-12 || math.Abs(r.Length()-1) > 1e-12 {
		t.Errorf("degenerate basis: f=%v r=%v u=%v", f, r, u)
	}
}

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.RecursionLimit() != DefaultRecursionLimit {
		t.Errorf("RecursionLimit() = %d, want %d", s.RecursionLimit(), DefaultRecursionLimit)
	}
	if len(s.Spheres()) != 0 || len(s.Lights()) != 0 {
		t.Error("NewScene() is not empty")
	}
	s.SetRecursionLimit(-3)
	if s.RecursionLimit() != 0 {
		t.Errorf("negative recursion limit stored as %d, want 0", s.RecursionLimit())
	}
}

func TestScene_CloneIndependent(t *testing.T) {
	s := NewScene()
	s.AddSphere(Sphere{Center: V3(0, 0, 5), Radius: 1})
	s.AddLight(PointLight{Position: V3(1, 1, 1), Color: White})
	s.SetBackground(Gray(0.3))

	c := s.Clone()
	c.Spheres()[0].Radius = 9
	c.Lights()[0].Color = Black
	c.AddSphere(Sphere{Radius: 1})
	c.SetBackground(Black)

	if s.Spheres()[0].Radius != 1 {
		t.Error("clone shares sphere storage")
	}
	if s.Lights()[0].Color != White {
		t.Error("clone shares light storage")
	}
	if len(s.Spheres()) != 1 {
		t.Error("append on clone grew the original")
	}
	if s.Background() != Gray(0.3) {
		t.Error("clone shares background")
	}
}

func TestMaterial_Transparent(t *testing.T) {
	m := NewMaterial(White, Black, 10)
	if m.RefractiveIndex != 1 || m.Transparency != 0 {
		t.Errorf("NewMaterial() = %+v, want opaque with index 1", m)
	}
	g := m.Transparent(0.8, 1.5)
	if g.Transparency != 0.8 || g.RefractiveIndex != 1.5 {
		t.Errorf("Transparent() = %+v", g)
	}
	if m.Transparency != 0 {
		t.Error("Transparent() modified the receiver")
	}
}

func TestScene_Trace(t *testing.T) {
	s := NewScene()
	s.SetBackground(RGB(0.1, 0.2, 0.3))
	s.AddSphere(Sphere{Center: V3(0, 0, 5), Radius: 1, Material: NewMaterial(RGB(1, 0, 0), Black, 0)})
	s.AddLight(PointLight{Position: V3(0, 0, -10), Color: White})

	if got := s.trace(Ray{Direction: V3(0, 1, 0)}, 0); got != s.Background() {
		t.Errorf("miss = %+v, want background", got)
	}

	// Head-on hit with the light behind the camera: full diffuse red.
	got := s.trace(Ray{Direction: V3(0, 0, 1)}, 0)
	if !approxColor(got, RGB(1, 0, 0)) {
		t.Errorf("hit = %+v, want (1,0,0)", got)
	}
}

func TestScene_TraceShadow(t *testing.T) {
	s := NewScene()
	m := NewMaterial(White, Black, 0)
	s.AddSphere(Sphere{Center: V3(0, 0, 10), Radius: 1, Material: m})
	// Blocker between the lit point and the light.
	s.AddSphere(Sphere{Center: V3(0, 0, 4), Radius: 0.5, Material: m})
	s.AddLight(PointLight{Position: V3(0, 0, 1), Color: White})

	// Ray starting between the spheres hits the far one; the light is hidden.
	r := Ray{Origin: V3(0, 0, 8), Direction: V3(0, 0, 1)}
	if got := s.trace(r, 0); !got.IsBlack() {
		t.Errorf("shadowed point = %+v, want black", got)
	}
}

func TestScene_TraceRecursionLimit(t *testing.T) {
	// Two facing mirrors.
	s := NewScene()
	mirror := NewMaterial(Black, Gray(0.5), 0)
	s.AddSphere(Sphere{Center: V3(0, 0, 5), Radius: 1, Material: mirror})
	s.SetBackground(White)

	s.SetRecursionLimit(0)
	if got := s.trace(Ray{Direction: V3(0, 0, 1)}, 0); !got.IsBlack() {
		t.Errorf("limit 0: %+v, want black (no reflection)", got)
	}

	s.SetRecursionLimit(1)
	// Reflects straight back to the background: 0.5 * white.
	if got := s.trace(Ray{Direction: V3(0, 0, 1)}, 0); !approxColor(got, Gray(0.5)) {
		t.Errorf("limit 1: %+v, want 0.5 gray", got)
	}
}
