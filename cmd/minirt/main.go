// Command minirt renders a ray traced scene with a pool of worker goroutines
// and reports how long the parallel section took.
//
// Usage:
//
//	minirt [flags] [width [height [samples [workers [blockSize]]]]]
//
// Positional arguments default to 600 600 1 1 1. The image width must be a
// multiple of blockSize and width*height may not exceed minirt.MaxPixels.
// Arguments in the MINIRT_ARGS environment variable are split with shell
// quoting rules; their positionals come before those of the command line and
// command-line flags take precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/shlex"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/minirt"
	"github.com/gogpu/minirt/scene"
)

// envArgs names the environment variable holding extra arguments.
const envArgs = "MINIRT_ARGS"

// positional holds the positional arguments, in order, with their defaults.
type positional struct {
	width, height, samples, workers, blockSize int
}

func defaults() positional {
	return positional{width: 600, height: 600, samples: 1, workers: 1, blockSize: 1}
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv(envArgs), os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(args []string, env string, stdout, stderr io.Writer) int {
	extra, err := shlex.Split(env)
	if err != nil {
		fmt.Fprintf(stderr, "minirt: %s: %v\n", envArgs, err)
		return 2
	}

	fs := flag.NewFlagSet("minirt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output    = fs.String("o", "raytracing.jpg", "output image (png, jpg, bmp or tiff)")
		sceneFile = fs.String("scene", "", "scene description file (default: built-in scene)")
		label     = fs.Bool("label", false, "stamp render statistics on the image")
		verbose   = fs.Bool("v", false, "debug logging to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: minirt [flags] [width [height [samples [workers [blockSize]]]]]")
		fs.PrintDefaults()
	}

	// The environment and the command line are parsed separately so that
	// positionals in one do not end flag parsing in the other. Command-line
	// flags override the environment; positionals from the environment come
	// first.
	var positionals []string
	for _, a := range [][]string{extra, args} {
		if err := fs.Parse(a); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			return 2
		}
		positionals = append(positionals, fs.Args()...)
	}

	pos, err := parsePositional(positionals)
	if err != nil {
		fmt.Fprintf(stderr, "minirt: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	minirt.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer minirt.SetLogger(nil)

	r, err := minirt.NewRenderer(pos.width, pos.height,
		minirt.WithSamples(pos.samples),
		minirt.WithWorkers(pos.workers),
		minirt.WithBlockSize(pos.blockSize))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	sc := scene.Default()
	if *sceneFile != "" {
		sc, err = scene.Load(*sceneFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	if _, err := minirt.FormatFor(*output); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	pm, stats := r.Render(sc)

	img := pm.ToImage()
	if *label {
		if err := minirt.DrawLabel(img, labelText(stats, pos.samples)); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if err := minirt.SaveImage(*output, img); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	report(stdout, stats)
	return 0
}

// parsePositional fills positional arguments over the defaults. Each must be
// a decimal integer of at least 1.
func parsePositional(args []string) (positional, error) {
	p := defaults()
	fields := []struct {
		name string
		dst  *int
	}{
		{"width", &p.width},
		{"height", &p.height},
		{"samples", &p.samples},
		{"workers", &p.workers},
		{"blockSize", &p.blockSize},
	}

	if len(args) > len(fields) {
		return p, fmt.Errorf("too many arguments: %d, at most %d", len(args), len(fields))
	}
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return p, fmt.Errorf("%s must be a positive integer, got %q", fields[i].name, arg)
		}
		*fields[i].dst = n
	}
	return p, nil
}

// report prints the elapsed time of the parallel section and its
// throughput.
func report(w io.Writer, stats minirt.Stats) {
	seconds := stats.Elapsed.Seconds()
	fmt.Fprintf(w, "Time = %f\n", seconds)

	p := message.NewPrinter(language.English)
	rate := 0.0
	if seconds > 0 {
		rate = float64(stats.Pixels()) / seconds
	}
	p.Fprintf(w, "%d pixels in %d blocks on %d workers, %.0f pixels/s\n",
		stats.Pixels(), stats.Blocks, stats.Workers, rate)
}

func labelText(stats minirt.Stats, samples int) string {
	return fmt.Sprintf("%dx%d  %d spp  %d workers  %d blocks  %s",
		stats.Width, stats.Height, samples, stats.Workers, stats.Blocks,
		stats.Elapsed.Round(time.Millisecond))
}
