// Package minirt is a small CPU ray tracer with a block-parallel scheduler.
//
// # Overview
//
// A Renderer splits the image into vertical blocks of BlockSize columns and
// hands block identifiers to a fixed pool of worker goroutines through a
// shared blocking queue. Every worker owns a private copy of the Scene and
// writes its pixels straight into the shared Pixmap; blocks never overlap, so
// no lock is taken while pixels are computed. Workers stop after consuming
// one terminal token each, and Render returns only after all of them have
// exited.
//
// # Quick Start
//
//	import "github.com/gogpu/minirt"
//
//	scene := minirt.NewScene()
//	scene.SetCamera(minirt.Camera{Position: minirt.V3(0, 0, -20)})
//	scene.AddSphere(minirt.Sphere{
//	    Center:   minirt.V3(0, 0, 8),
//	    Radius:   2,
//	    Material: minirt.NewMaterial(minirt.RGB(1, 0.2, 0.2), minirt.Gray(0.8), 50),
//	})
//	scene.AddLight(minirt.PointLight{Position: minirt.V3(-15, 0, -15), Color: minirt.Gray(0.8)})
//
//	r, err := minirt.NewRenderer(600, 600, minirt.WithWorkers(8), minirt.WithBlockSize(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm, _ := r.Render(scene)
//	_ = pm.Save("out.png")
//
// # Render Engine
//
// ViewPlane.ComputePixel is a Whitted-style tracer: spheres, Phong materials,
// point lights with hard shadows, mirror reflection and refraction up to the
// scene's recursion limit. Supersampling uses a fixed stratified grid, so an
// image does not depend on the number of workers or on scheduling order.
//
// # Coordinate System
//
//   - Pixel (0,0) at top-left, X increases right, Y increases down
//   - Scene space: X right, Y up, Z away from the viewer
package minirt

// Version is the current version of the library.
const Version = "0.1.0"
