package minirt

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/minirt/internal/parallel"
)

// Renderer renders scenes into a pixmap using a fixed pool of workers.
//
// All configuration is validated by NewRenderer, so Render itself cannot
// fail. A Renderer may be reused for several scenes but Render must not be
// called concurrently on the same Renderer.
type Renderer struct {
	width  int
	height int
	cfg    config
	view   ViewPlane
	part   parallel.Partition

	// pixel computes one pixel; ViewPlane.ComputePixel unless a test swaps it.
	pixel func(scene *Scene, x, y int) Color
}

// Stats reports what a Render did.
type Stats struct {
	// Width and Height of the rendered image.
	Width, Height int

	// Blocks is the number of blocks dispatched.
	Blocks int

	// Workers is the number of worker goroutines.
	Workers int

	// BlocksPerWorker counts the blocks each worker rendered.
	BlocksPerWorker []int

	// Busy is the time each worker spent rendering.
	Busy []time.Duration

	// Elapsed is the wall time of the parallel section.
	Elapsed time.Duration
}

// Pixels returns the number of pixels rendered.
func (s Stats) Pixels() int {
	return s.Width * s.Height
}

// NewRenderer creates a renderer for a width × height image.
//
// It returns an error wrapping ErrBlockSize if width is not a multiple of the
// block size, and ErrInvalidConfig for any non-positive setting, an image
// larger than MaxPixels or more than MaxWorkers workers. No goroutine
// is started and nothing is allocated for the image when an error is returned.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, width, height)
	case width > MaxPixels/height:
		return nil, fmt.Errorf("%w: image size %dx%d exceeds %d pixels", ErrInvalidConfig, width, height, MaxPixels)
	case cfg.workers <= 0 || cfg.workers > MaxWorkers:
		return nil, fmt.Errorf("%w: %d workers, want 1..%d", ErrInvalidConfig, cfg.workers, MaxWorkers)
	case cfg.blockSize <= 0:
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidConfig, cfg.blockSize)
	case cfg.samples <= 0:
		return nil, fmt.Errorf("%w: %d samples", ErrInvalidConfig, cfg.samples)
	}

	part, err := parallel.NewPartition(width, height, cfg.blockSize)
	if errors.Is(err, parallel.ErrUnevenPartition) {
		return nil, fmt.Errorf("%w: width %d, block size %d", ErrBlockSize, width, cfg.blockSize)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	view := DefaultViewPlane(width, height)
	if cfg.viewPlane != nil {
		view = *cfg.viewPlane
		view.ResX, view.ResY = width, height
		if view.SizeX <= 0 || view.SizeY <= 0 || view.Distance <= 0 {
			return nil, fmt.Errorf("%w: view plane %gx%g at distance %g",
				ErrInvalidConfig, view.SizeX, view.SizeY, view.Distance)
		}
	}

	r := &Renderer{
		width:  width,
		height: height,
		cfg:    cfg,
		view:   view,
		part:   part,
	}
	r.pixel = func(scene *Scene, x, y int) Color {
		return r.view.ComputePixel(scene, x, y, r.cfg.samples)
	}
	return r, nil
}

// Width returns the image width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the image height in pixels.
func (r *Renderer) Height() int { return r.height }

// Workers returns the configured worker count.
func (r *Renderer) Workers() int { return r.cfg.workers }

// BlockSize returns the configured number of columns per block.
func (r *Renderer) BlockSize() int { return r.cfg.blockSize }

// Samples returns the configured samples per pixel.
func (r *Renderer) Samples() int { return r.cfg.samples }

// ViewPlane returns the projection used by the renderer.
func (r *Renderer) ViewPlane() ViewPlane { return r.view }

// Render draws scene and returns the completed pixmap.
//
// Each worker renders from its own deep copy of scene, so scene is only read
// here, but it must not be modified until Render returns. Render returns only
// after every worker has exited; the pixmap is not touched afterwards.
// A nil scene renders as an empty scene.
func (r *Renderer) Render(scene *Scene) (*Pixmap, Stats) {
	if scene == nil {
		scene = NewScene()
	}

	log := Logger()
	pm := NewPixmap(r.width, r.height)

	pool := parallel.NewWorkerPool(r.cfg.workers)
	propagateLogger(pool)

	log.Info("minirt: render start",
		"width", r.width,
		"height", r.height,
		"samples", r.cfg.samples,
		"workers", r.cfg.workers,
		"blockSize", r.cfg.blockSize,
		"blocks", r.part.Count())

	ps := pool.Run(r.part, func(int) parallel.BlockFunc {
		sc := scene.Clone()
		return func(b parallel.Block) {
			r.renderBlock(pm, sc, b)
		}
	})

	stats := Stats{
		Width:           r.width,
		Height:          r.height,
		Blocks:          ps.Blocks,
		Workers:         len(ps.Workers),
		BlocksPerWorker: make([]int, len(ps.Workers)),
		Busy:            make([]time.Duration, len(ps.Workers)),
		Elapsed:         ps.Elapsed,
	}
	for i, ws := range ps.Workers {
		stats.BlocksPerWorker[i] = ws.Blocks
		stats.Busy[i] = ws.Busy
	}

	log.Info("minirt: render complete", "elapsed", stats.Elapsed)
	return pm, stats
}

// renderBlock computes every pixel of b and writes it into pm.
func (r *Renderer) renderBlock(pm *Pixmap, scene *Scene, b parallel.Block) {
	for y := 0; y < b.Height; y++ {
		for x := b.X0; x < b.X1; x++ {
			pm.SetPixel(x, y, r.pixel(scene, x, y))
		}
	}
}
