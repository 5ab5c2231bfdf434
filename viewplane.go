package minirt

import "math"

// ViewPlane maps pixel coordinates to primary rays.
//
// The plane is SizeX × SizeY scene units, sits Distance units in front of
// the camera and is divided into ResX × ResY pixels. Pixel (0, 0) is the
// top-left corner.
type ViewPlane struct {
	ResX, ResY   int
	SizeX, SizeY float64
	Distance     float64
}

// Default view plane geometry: a 4×4 background window 15 units away,
// projected onto a plane 5 units from the camera.
const (
	defaultBackgroundSize     = 4.0
	defaultBackgroundDistance = 15.0
	defaultViewPlaneDistance  = 5.0
)

// DefaultViewPlane returns the view plane used when none is configured.
func DefaultViewPlane(resX, resY int) ViewPlane {
	size := defaultBackgroundSize * defaultViewPlaneDistance / defaultBackgroundDistance
	return ViewPlane{
		ResX:     resX,
		ResY:     resY,
		SizeX:    size,
		SizeY:    size,
		Distance: defaultViewPlaneDistance,
	}
}

// ComputePixel returns the color of pixel (x, y), averaged over samples
// primary rays.
//
// Sub-pixel positions come from a fixed stratified grid, so the result
// depends only on the arguments: calling ComputePixel from any goroutine, in
// any order, gives the same color. The scene is read, never written. The
// returned color is clamped to [0, 1].
func (vp ViewPlane) ComputePixel(scene *Scene, x, y, samples int) Color {
	samples = max(samples, 1)
	grid := int(math.Ceil(math.Sqrt(float64(samples))))

	cam := scene.Camera()
	forward, right, up := cam.basis()
	center := forward.Mul(vp.Distance)

	var sum Color
	for i := range samples {
		sx := (float64(i%grid) + 0.5) / float64(grid)
		sy := (float64(i/grid) + 0.5) / float64(grid)

		u := ((float64(x)+sx)/float64(vp.ResX) - 0.5) * vp.SizeX
		v := (0.5 - (float64(y)+sy)/float64(vp.ResY)) * vp.SizeY

		dir := center.Add(right.Mul(u)).Add(up.Mul(v)).Normalize()
		sum = sum.Add(scene.trace(Ray{Origin: cam.Position, Direction: dir}, 0))
	}
	return sum.Scale(1 / float64(samples)).Clamp()
}
