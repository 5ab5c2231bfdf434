package minirt

// Option configures a Renderer during creation.
//
// Example:
//
//	// One worker, one column per block, one sample per pixel
//	r, err := minirt.NewRenderer(600, 600)
//
//	// Eight workers sharing 10-column blocks, 4 samples per pixel
//	r, err := minirt.NewRenderer(600, 600,
//	    minirt.WithWorkers(8),
//	    minirt.WithBlockSize(10),
//	    minirt.WithSamples(4))
type Option func(*config)

// config holds the Renderer settings.
type config struct {
	workers   int
	blockSize int
	samples   int
	viewPlane *ViewPlane
}

// Defaults used when an option is not given.
const (
	DefaultWorkers   = 1
	DefaultBlockSize = 1
	DefaultSamples   = 1
)

// Limits enforced by NewRenderer.
const (
	// MaxPixels bounds width*height (8192×8192).
	MaxPixels = 1 << 26

	// MaxWorkers bounds the number of worker goroutines.
	MaxWorkers = 1 << 12
)

// defaultConfig returns the default renderer settings.
func defaultConfig() config {
	return config{
		workers:   DefaultWorkers,
		blockSize: DefaultBlockSize,
		samples:   DefaultSamples,
	}
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithBlockSize sets the number of columns per block. The image width must
// be a multiple of it.
func WithBlockSize(n int) Option {
	return func(c *config) {
		c.blockSize = n
	}
}

// WithSamples sets the number of primary rays averaged per pixel.
func WithSamples(n int) Option {
	return func(c *config) {
		c.samples = n
	}
}

// WithViewPlane overrides the projection geometry. Only SizeX, SizeY and
// Distance are used; the resolution always matches the renderer.
func WithViewPlane(vp ViewPlane) Option {
	return func(c *config) {
		c.viewPlane = &vp
	}
}
