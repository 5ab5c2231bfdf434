package minirt

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when no encoder matches the output name.
var ErrUnsupportedFormat = errors.New("minirt: unsupported image format")

// JPEGQuality is the quality used for JPEG output.
const JPEGQuality = 95

// encoder writes an image in one file format.
type encoder struct {
	name    string
	pattern glob.Glob
	encode  func(w io.Writer, img image.Image) error
}

// encoders is checked in order against the lower-cased base file name.
var encoders = []encoder{
	{
		name:    "png",
		pattern: glob.MustCompile("*.png"),
		encode:  png.Encode,
	},
	{
		name:    "jpeg",
		pattern: glob.MustCompile("*.{jpg,jpeg}"),
		encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
		},
	},
	{
		name:    "bmp",
		pattern: glob.MustCompile("*.bmp"),
		encode:  bmp.Encode,
	},
	{
		name:    "tiff",
		pattern: glob.MustCompile("*.{tif,tiff}"),
		encode: func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		},
	},
}

// FormatFor returns the name of the encoder that handles path
// ("png", "jpeg", "bmp" or "tiff").
func FormatFor(path string) (string, error) {
	e, err := encoderFor(path)
	if err != nil {
		return "", err
	}
	return e.name, nil
}

func encoderFor(path string) (*encoder, error) {
	base := strings.ToLower(filepath.Base(path))
	for i := range encoders {
		if encoders[i].pattern.Match(base) {
			return &encoders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	for i := range encoders {
		if encoders[i].name == format {
			if err := encoders[i].encode(w, img); err != nil {
				return fmt.Errorf("minirt: encode %s: %w", format, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// SaveImage writes img to path. The encoder is chosen by matching the file
// name against *.png, *.{jpg,jpeg}, *.bmp and *.{tif,tiff}.
//
// The format is resolved before the file is created, so an unsupported name
// leaves nothing on disk.
func SaveImage(path string, img image.Image) error {
	e, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("minirt: create file: %w", err)
	}

	if err := e.encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("minirt: encode %s: %w", e.name, err)
	}
	return f.Close()
}
