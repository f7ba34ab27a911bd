// Drop shadow for the overlay frame ring
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// drawRingShadow draws a blurred drop shadow for the frame ring onto dst.
// The shadow is built from a grayscale mask of the ring, box-blurred twice,
// and composited as translucent black before the ring itself is drawn.
func drawRingShadow(dst *image.RGBA, frame image.Rectangle, border, radius int, offset image.Point, opacity float64) {
	if opacity <= 0 || radius <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	padded := frame.Inset(-radius)
	mask := image.NewGray(padded.Sub(padded.Min))
	ringInto(mask, frame.Sub(padded.Min), border)

	blurred := blurGray(mask, radius)

	shadowAlpha := uint8(opacity*255 + 0.5)
	origin := padded.Min.Add(offset)
	draw.DrawMask(dst,
		blurred.Bounds().Add(origin),
		image.NewUniform(color.RGBA{0, 0, 0, shadowAlpha}),
		image.Point{},
		blurred,
		blurred.Bounds().Min,
		draw.Over)
}

// ringInto paints a square ring of the given thickness into a gray mask.
func ringInto(mask *image.Gray, frame image.Rectangle, border int) {
	outer := frame
	inner := frame.Inset(border)
	for y := outer.Min.Y; y < outer.Max.Y; y++ {
		for x := outer.Min.X; x < outer.Max.X; x++ {
			p := image.Pt(x, y)
			if p.In(inner) {
				continue
			}
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

// blurGray applies a two-pass box blur of the given radius.
func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	for y := 0; y < h; y++ {
		rowStart := y * src.Stride
		tmpStart := y * tmp.Stride
		prefix := make([]int, w+1)
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[rowStart+x])
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			sum := prefix[x1+1] - prefix[x0]
			tmp.Pix[tmpStart+x] = uint8(sum / (x1 - x0 + 1))
		}
	}

	for x := 0; x < w; x++ {
		prefix := make([]int, h+1)
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, h-1)
			sum := prefix[y1+1] - prefix[y0]
			dst.Pix[y*dst.Stride+x] = uint8(sum / (y1 - y0 + 1))
		}
	}

	return dst
}
