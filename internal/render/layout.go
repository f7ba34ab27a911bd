// Package render composes the photo, filter and stat overlay into the
// fixed-resolution story raster.
package render

import "image"

// Output canvas dimensions. The story raster is always 9:16 regardless of
// the input photo or the on-screen preview size.
const (
	CanvasWidth  = 1080
	CanvasHeight = 1920
)

// Geometry divisors. All overlay measurements derive from the frame side,
// which itself derives from the canvas width, so a different output
// resolution rescales every element proportionally.
const (
	marginFraction = 0.055

	borderDivisor    = 90
	shadowDivisor    = 27
	dateFontDivisor  = 16
	statFontDivisor  = 11
	minorFontDivisor = 18
)

// Layout holds the derived overlay geometry for one canvas size.
type Layout struct {
	CanvasW int
	CanvasH int

	// FrameRect is the centered square frame; its side is half the canvas
	// width.
	FrameRect image.Rectangle

	// Border is the frame ring thickness.
	Border int

	// Margin is the inset between the frame edge and any overlay text.
	Margin int

	// ShadowRadius and ShadowOffset configure the frame drop shadow.
	ShadowRadius int
	ShadowOffset image.Point

	DateFontSize  float64
	StatFontSize  float64
	MinorFontSize float64
}

// NewLayout derives the overlay geometry from canvas dimensions alone.
func NewLayout(canvasW, canvasH int) Layout {
	side := canvasW / 2
	left := (canvasW - side) / 2
	top := (canvasH - side) / 2

	margin := int(float64(side) * marginFraction)

	return Layout{
		CanvasW:       canvasW,
		CanvasH:       canvasH,
		FrameRect:     image.Rect(left, top, left+side, top+side),
		Border:        max(side/borderDivisor, 1),
		Margin:        margin,
		ShadowRadius:  max(side/shadowDivisor, 1),
		ShadowOffset:  image.Pt(side/135, side/135),
		DateFontSize:  float64(side) / dateFontDivisor,
		StatFontSize:  float64(side) / statFontDivisor,
		MinorFontSize: float64(side) / minorFontDivisor,
	}
}

// FrameSide returns the frame's side length.
func (l Layout) FrameSide() int {
	return l.FrameRect.Dx()
}

// TopBand returns the area inside the frame's top margin where the date and
// secondary metrics live.
func (l Layout) TopBand() image.Rectangle {
	return image.Rect(
		l.FrameRect.Min.X+l.Margin,
		l.FrameRect.Min.Y+l.Margin,
		l.FrameRect.Max.X-l.Margin,
		l.FrameRect.Min.Y+l.Margin*3,
	)
}

// BottomBand returns the area inside the frame's bottom margin holding the
// primary stats row.
func (l Layout) BottomBand() image.Rectangle {
	return image.Rect(
		l.FrameRect.Min.X+l.Margin,
		l.FrameRect.Max.Y-l.Margin*3,
		l.FrameRect.Max.X-l.Margin,
		l.FrameRect.Max.Y-l.Margin,
	)
}

// StatColumn returns one of the three equal-width columns of the bottom
// band. i must be 0, 1 or 2.
func (l Layout) StatColumn(i int) image.Rectangle {
	band := l.BottomBand()
	colW := band.Dx() / 3
	left := band.Min.X + i*colW
	return image.Rect(left, band.Min.Y, left+colW, band.Max.Y)
}
