package minirt

import "math"

// Default scene settings.
const (
	// DefaultRecursionLimit bounds reflection and refraction depth.
	DefaultRecursionLimit = 5
)

// Material describes how a surface responds to light (Phong model).
type Material struct {
	// Diffuse is the Lambertian color.
	Diffuse Color

	// Specular is both the highlight color and the mirror reflectance.
	Specular Color

	// Shininess is the Phong exponent.
	Shininess float64

	// Transparency in [0, 1] is the fraction of light transmitted.
	Transparency float64

	// RefractiveIndex of the material interior (1 for vacuum).
	RefractiveIndex float64
}

// NewMaterial returns an opaque material.
func NewMaterial(diffuse, specular Color, shininess float64) Material {
	return Material{
		Diffuse:         diffuse,
		Specular:        specular,
		Shininess:       shininess,
		RefractiveIndex: 1,
	}
}

// Transparent returns a copy of m that transmits the given fraction of light
// and refracts with the given index.
func (m Material) Transparent(transparency, refractiveIndex float64) Material {
	m.Transparency = transparency
	m.RefractiveIndex = refractiveIndex
	return m
}

// Sphere is the only primitive.
type Sphere struct {
	Center   Vec3
	Radius   float64
	Material Material
}

// sphereEpsilon keeps secondary rays from re-hitting their own surface.
const sphereEpsilon = 1e-6

// Intersect returns the nearest ray parameter t > epsilon at which r hits s.
func (s *Sphere) Intersect(r Ray) (t float64, ok bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t = -b - sq; t > sphereEpsilon {
		return t, true
	}
	if t = -b + sq; t > sphereEpsilon {
		return t, true
	}
	return 0, false
}

// Normal returns the outward unit normal at point p on the sphere.
func (s *Sphere) Normal(p Vec3) Vec3 {
	return p.Sub(s.Center).Mul(1 / s.Radius)
}

// PointLight emits Color from Position in all directions.
type PointLight struct {
	Position Vec3
	Color    Color
}

// Camera looks from Position toward LookAt with +Y as the up hint.
type Camera struct {
	Position Vec3
	LookAt   Vec3
}

// basis returns the camera's forward, right and up unit vectors.
func (c Camera) basis() (forward, right, up Vec3) {
	forward = c.LookAt.Sub(c.Position).Normalize()
	if forward.IsZero() {
		forward = V3(0, 0, 1)
	}
	worldUp := V3(0, 1, 0)
	if math.Abs(forward.Dot(worldUp)) > 1-1e-9 {
		worldUp = V3(0, 0, 1)
	}
	right = worldUp.Cross(forward).Normalize()
	up = forward.Cross(right)
	return forward, right, up
}

// Scene is everything the render engine reads.
//
// A Scene must not be mutated while it is being rendered. The renderer gives
// each worker its own copy via Clone.
type Scene struct {
	spheres        []Sphere
	lights         []PointLight
	background     Color
	ambient        Color
	recursionLimit int
	camera         Camera
}

// NewScene creates an empty scene with a black background, no ambient light
// and a camera at the origin looking down +Z.
func NewScene() *Scene {
	return &Scene{
		recursionLimit: DefaultRecursionLimit,
		camera:         Camera{LookAt: V3(0, 0, 1)},
	}
}

// AddSphere adds a sphere to the scene.
func (s *Scene) AddSphere(sp Sphere) {
	s.spheres = append(s.spheres, sp)
}

// AddLight adds a point light to the scene.
func (s *Scene) AddLight(l PointLight) {
	s.lights = append(s.lights, l)
}

// SetBackground sets the color returned by rays that hit nothing.
func (s *Scene) SetBackground(c Color) {
	s.background = c
}

// SetAmbient sets the ambient light color.
func (s *Scene) SetAmbient(c Color) {
	s.ambient = c
}

// SetRecursionLimit sets the maximum reflection/refraction depth.
// Negative values are treated as 0.
func (s *Scene) SetRecursionLimit(n int) {
	s.recursionLimit = max(n, 0)
}

// SetCamera sets the viewpoint.
func (s *Scene) SetCamera(c Camera) {
	s.camera = c
}

// Spheres returns the scene's spheres. The slice must not be modified.
func (s *Scene) Spheres() []Sphere { return s.spheres }

// Lights returns the scene's lights. The slice must not be modified.
func (s *Scene) Lights() []PointLight { return s.lights }

// Background returns the background color.
func (s *Scene) Background() Color { return s.background }

// Ambient returns the ambient light color.
func (s *Scene) Ambient() Color { return s.ambient }

// RecursionLimit returns the maximum reflection/refraction depth.
func (s *Scene) RecursionLimit() int { return s.recursionLimit }

// Camera returns the viewpoint.
func (s *Scene) Camera() Camera { return s.camera }

// Clone returns a deep copy of the scene that shares no mutable state with s.
func (s *Scene) Clone() *Scene {
	c := *s
	c.spheres = append([]Sphere(nil), s.spheres...)
	c.lights = append([]PointLight(nil), s.lights...)
	return &c
}
