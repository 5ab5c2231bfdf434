package minirt

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.png", "png", false},
		{"raytracing.jpg", "jpeg", false},
		{"dir/IMAGE.JPEG", "jpeg", false},
		{"a.bmp", "bmp", false},
		{"a.tif", "tiff", false},
		{"/tmp/x.TIFF", "tiff", false},
		{"a.gif", "", true},
		{"png", "", true},
		{"archive.png.gz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("error = %v, want ErrUnsupportedFormat", err)
			}
			if got != tt.want {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSaveImage_RoundTrip(t *testing.T) {
	pm := NewPixmap(8, 6)
	for x := range 8 {
		pm.SetPixel(x, 0, RGB(1, 0, 0))
		pm.SetPixel(x, 5, RGB(0, 0, 1))
	}
	img := pm.ToImage()
	dir := t.TempDir()

	for _, name := range []string{"a.png", "a.jpg", "a.bmp", "a.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := SaveImage(path, img); err != nil {
				t.Fatalf("SaveImage() error = %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			got, format, err := image.Decode(f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			want, _ := FormatFor(name)
			if format != want {
				t.Errorf("decoded format = %q, want %q", format, want)
			}
			if got.Bounds() != img.Bounds() {
				t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
			}
			// Lossless formats keep exact pixels.
			if format != "jpeg" {
				if c := FromColor(got.At(0, 0)); c != RGB(1, 0, 0) {
					t.Errorf("pixel (0,0) = %+v, want red", c)
				}
			}
		})
	}
}

func TestSaveImage_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	err := SaveImage(path, NewPixmap(1, 1).ToImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("SaveImage() error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("SaveImage() created a file for an unsupported format")
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, NewPixmap(2, 2), "png"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, format, err := image.Decode(&buf); err != nil || format != "png" {
		t.Errorf("Decode() = %q, %v", format, err)
	}

	if err := Encode(&buf, NewPixmap(2, 2), "gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestPixmap_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pm.png")
	pm := NewPixmap(3, 3)
	pm.SetPixel(1, 1, White)
	if err := pm.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}
