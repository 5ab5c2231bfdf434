// Package scene builds minirt scenes, either in code through SceneBuilder or
// from a text description through Decode.
package scene

import "github.com/gogpu/minirt"

// SceneBuilder provides a fluent API for constructing scenes.
//
// Materials are registered by name and then referenced by spheres, which is
// how scene files are written as well.
//
// Example:
//
//	scene := scene.NewSceneBuilder().
//	    Material("red", minirt.NewMaterial(minirt.RGB(1, 0.2, 0.2), minirt.Gray(0.8), 50)).
//	    Sphere(minirt.V3(-3, 2, 11), 2, "red").
//	    Light(minirt.V3(-15, 0, -15), minirt.Gray(0.8)).
//	    Camera(minirt.V3(0, 0, -20), minirt.V3(0, 0, 0)).
//	    Build()
type SceneBuilder struct {
	scene     *minirt.Scene
	materials map[string]minirt.Material
	missing   []string
}

// NewSceneBuilder creates a new scene builder with an empty scene.
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{
		scene:     minirt.NewScene(),
		materials: make(map[string]minirt.Material),
	}
}

// Material registers a named material. Registering a name again replaces it
// for spheres added afterwards.
func (b *SceneBuilder) Material(name string, m minirt.Material) *SceneBuilder {
	b.materials[name] = m
	return b
}

// HasMaterial reports whether name has been registered.
func (b *SceneBuilder) HasMaterial(name string) bool {
	_, ok := b.materials[name]
	return ok
}

// Sphere adds a sphere using a previously registered material.
// Unknown material names are recorded and reported by Missing.
func (b *SceneBuilder) Sphere(center minirt.Vec3, radius float64, material string) *SceneBuilder {
	m, ok := b.materials[material]
	if !ok {
		b.missing = append(b.missing, material)
		return b
	}
	b.scene.AddSphere(minirt.Sphere{Center: center, Radius: radius, Material: m})
	return b
}

// Light adds a point light.
func (b *SceneBuilder) Light(position minirt.Vec3, c minirt.Color) *SceneBuilder {
	b.scene.AddLight(minirt.PointLight{Position: position, Color: c})
	return b
}

// Background sets the background color.
func (b *SceneBuilder) Background(c minirt.Color) *SceneBuilder {
	b.scene.SetBackground(c)
	return b
}

// Ambient sets the ambient light color.
func (b *SceneBuilder) Ambient(c minirt.Color) *SceneBuilder {
	b.scene.SetAmbient(c)
	return b
}

// RecursionLimit sets the maximum reflection/refraction depth.
func (b *SceneBuilder) RecursionLimit(n int) *SceneBuilder {
	b.scene.SetRecursionLimit(n)
	return b
}

// Camera places the viewer at position, looking at lookAt.
func (b *SceneBuilder) Camera(position, lookAt minirt.Vec3) *SceneBuilder {
	b.scene.SetCamera(minirt.Camera{Position: position, LookAt: lookAt})
	return b
}

// Missing returns the material names referenced by Sphere that were never
// registered, in call order.
func (b *SceneBuilder) Missing() []string {
	return b.missing
}

// Build returns the constructed scene. The builder must not be used
// afterwards.
func (b *SceneBuilder) Build() *minirt.Scene {
	return b.scene
}
