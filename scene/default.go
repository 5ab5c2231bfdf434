package scene

import "github.com/gogpu/minirt"

// Default returns the built-in demo scene: seven spheres of assorted
// materials lit by three colored point lights, viewed from 20 units in front
// of the origin.
//
// Geometry, lights and the opaque materials match the classic demo scene.
// The two transparent materials are approximations: their specular color and
// shininess were chosen by eye, while transparency and refractive index are
// exact.
func Default() *minirt.Scene {
	red := minirt.RGB(1, 0.2, 0.2)
	blue := minirt.RGB(0.2, 0.2, 1)
	green := minirt.RGB(0.2, 1, 0.2)
	white := minirt.Gray(0.8)
	yellow := minirt.RGB(1, 1, 0.2)

	return NewSceneBuilder().
		Material("metallicRed", minirt.NewMaterial(red, white, 50)).
		Material("mirrorBlack", minirt.NewMaterial(minirt.Gray(0), minirt.Gray(0.9), 1000)).
		Material("matteWhite", minirt.NewMaterial(minirt.Gray(0.7), minirt.Gray(0.3), 1)).
		Material("metallicYellow", minirt.NewMaterial(yellow, white, 250)).
		Material("transparentGreen", minirt.NewMaterial(green, minirt.Gray(0.8), 50).Transparent(1.0, 1.03)).
		Material("transparentBlue", minirt.NewMaterial(blue, minirt.Gray(0.4), 50).Transparent(0.9, 0.7)).
		Sphere(minirt.V3(0, -2, 7), 1, "transparentBlue").
		Sphere(minirt.V3(-3, 2, 11), 2, "metallicRed").
		Sphere(minirt.V3(0, 2, 8), 1, "mirrorBlack").
		Sphere(minirt.V3(1.5, -0.5, 7), 1, "transparentGreen").
		Sphere(minirt.V3(-2, -1, 6), 0.7, "metallicYellow").
		Sphere(minirt.V3(2.2, 0.5, 9), 1.2, "matteWhite").
		Sphere(minirt.V3(4, -1, 10), 0.7, "metallicRed").
		Light(minirt.V3(-15, 0, -15), white).
		Light(minirt.V3(1, 1, 0), blue).
		Light(minirt.V3(0, -10, 6), red).
		Background(minirt.RGB(0.05, 0.05, 0.08)).
		Ambient(minirt.Gray(0.1)).
		RecursionLimit(20).
		Camera(minirt.V3(0, 0, -20), minirt.V3(0, 0, 0)).
		Build()
}
