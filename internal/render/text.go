// Overlay text rendering on top of gofont opentype faces
package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type faceKey struct {
	bold bool
	size float64
}

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontErr     error

	faceCache sync.Map // map[faceKey]font.Face
)

func loadFonts() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		return
	}
	boldFont, fontErr = opentype.Parse(gobold.TTF)
}

func faceFor(size float64, bold bool) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fmt.Errorf("overlay font not available: %w", fontErr)
	}

	key := faceKey{bold: bold, size: size}
	if face, ok := faceCache.Load(key); ok {
		return face.(font.Face), nil
	}

	src := regularFont
	if bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faceCache.Store(key, face)
	return face, nil
}

// measureText returns the rendered width and line height of text at size.
func measureText(text string, size float64, bold bool) (width, height int) {
	face, err := faceFor(size, bold)
	if err != nil {
		return 0, 0
	}
	drawer := &font.Drawer{Face: face}
	width = drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	height = metrics.Ascent.Ceil() + metrics.Descent.Ceil()
	return
}

// drawText renders text with its top-left corner at (x, y).
func drawText(dst *image.RGBA, x, y int, text string, col color.Color, size float64, bold bool) {
	if text == "" {
		return
	}
	face, err := faceFor(size, bold)
	if err != nil {
		return
	}
	baseline := y + face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	drawer.DrawString(text)
}

// drawTextCentered renders text horizontally centered within rect and
// vertically centered in its height.
func drawTextCentered(dst *image.RGBA, rect image.Rectangle, text string, col color.Color, size float64, bold bool) {
	w, h := measureText(text, size, bold)
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	drawText(dst, x, y, text, col, size, bold)
}

// drawTextRight renders text right-aligned against rect's right edge and
// top-aligned at rect's top.
func drawTextRight(dst *image.RGBA, rect image.Rectangle, text string, col color.Color, size float64, bold bool) {
	w, _ := measureText(text, size, bold)
	drawText(dst, rect.Max.X-w, rect.Min.Y, text, col, size, bold)
}
