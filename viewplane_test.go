package minirt

import "testing"

func testScene() *Scene {
	s := NewScene()
	s.SetCamera(Camera{Position: V3(0, 0, -20), LookAt: V3(0, 0, 0)})
	s.SetBackground(RGB(0.05, 0.05, 0.08))
	s.SetAmbient(Gray(0.1))
	s.AddSphere(Sphere{Center: V3(0, 0, 8), Radius: 2, Material: NewMaterial(RGB(1, 0.2, 0.2), Gray(0.8), 50)})
	s.AddSphere(Sphere{Center: V3(1.5, -0.5, 4), Radius: 1, Material: NewMaterial(RGB(0.2, 1, 0.2), Gray(0.8), 50).Transparent(0.8, 1.03)})
	s.AddLight(PointLight{Position: V3(-15, 0, -15), Color: Gray(0.8)})
	s.AddLight(PointLight{Position: V3(0, -10, 6), Color: RGB(1, 0.2, 0.2)})
	return s
}

func TestDefaultViewPlane(t *testing.T) {
	vp := DefaultViewPlane(600, 400)
	if vp.ResX != 600 || vp.ResY != 400 {
		t.Errorf("resolution = %dx%d", vp.ResX, vp.ResY)
	}
	if vp.Distance != 5 {
		t.Errorf("Distance = %v, want 5", vp.Distance)
	}
	want := 4.0 * 5 / 15
	if vp.SizeX != want || vp.SizeY != want {
		t.Errorf("size = %vx%v, want %v", vp.SizeX, vp.SizeY, want)
	}
}

func TestComputePixel_Range(t *testing.T) {
	s := testScene()
	s.AddLight(PointLight{Position: V3(0, 0, -30), Color: Gray(5)})
	vp := DefaultViewPlane(16, 16)

	for y := range 16 {
		for x := range 16 {
			c := vp.ComputePixel(s, x, y, 4)
			if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
				t.Fatalf("pixel (%d,%d) = %+v out of [0,1]", x, y, c)
			}
		}
	}
}

func TestComputePixel_Deterministic(t *testing.T) {
	s := testScene()
	vp := DefaultViewPlane(32, 32)

	for _, samples := range []int{1, 2, 5, 9} {
		for _, p := range [][2]int{{0, 0}, {16, 16}, {20, 18}, {31, 31}} {
			a := vp.ComputePixel(s, p[0], p[1], samples)
			b := vp.ComputePixel(s.Clone(), p[0], p[1], samples)
			if a != b {
				t.Errorf("samples=%d pixel %v: %+v != %+v", samples, p, a, b)
			}
		}
	}
}

func TestComputePixel_HitAndMiss(t *testing.T) {
	s := testScene()
	vp := DefaultViewPlane(32, 32)

	// Top-left corner looks past every sphere.
	if got := vp.ComputePixel(s, 0, 0, 1); got != s.Background() {
		t.Errorf("corner = %+v, want background %+v", got, s.Background())
	}
	// The image center looks at the red sphere.
	center := vp.ComputePixel(s, 15, 15, 1)
	if center == s.Background() {
		t.Error("center pixel shows background, want the sphere")
	}
	if center.R <= center.B {
		t.Errorf("center = %+v, want reddish", center)
	}
}

func TestComputePixel_NonPositiveSamples(t *testing.T) {
	s := testScene()
	vp := DefaultViewPlane(8, 8)
	if vp.ComputePixel(s, 3, 3, 0) != vp.ComputePixel(s, 3, 3, 1) {
		t.Error("samples=0 should behave like samples=1")
	}
}

func TestComputePixel_DoesNotMutateScene(t *testing.T) {
	s := testScene()
	before := s.Clone()
	vp := DefaultViewPlane(8, 8)
	for x := range 8 {
		vp.ComputePixel(s, x, 4, 4)
	}
	for i, sp := range s.Spheres() {
		if sp != before.Spheres()[i] {
			t.Errorf("sphere %d changed: %+v -> %+v", i, before.Spheres()[i], sp)
		}
	}
}
