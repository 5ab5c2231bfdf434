package minirt

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the font size, in pixels, of text drawn by DrawLabel.
const LabelSize = 12

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFontErr  error
)

func parsedLabelFont() (*opentype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// DrawLabel writes text in white over a dark strip along the bottom edge of
// dst. It is applied to the finished image, never to a pixmap that is still
// being rendered.
func DrawLabel(dst draw.Image, text string) error {
	f, err := parsedLabelFont()
	if err != nil {
		return fmt.Errorf("minirt: parse label font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("minirt: label face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	b := dst.Bounds()
	m := face.Metrics()
	lineHeight := (m.Ascent + m.Descent).Ceil() + 4
	strip := image.Rect(b.Min.X, b.Max.Y-lineHeight, b.Max.X, b.Max.Y).Intersect(b)
	draw.Draw(dst, strip, image.NewUniform(Gray(0.1).NRGBA()), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Min.X + 4),
			Y: fixed.I(b.Max.Y-2) - m.Descent,
		},
	}
	drawer.DrawString(text)
	return nil
}
