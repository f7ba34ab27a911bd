// Story composition pipeline
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"workout-story/internal/core"
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 18, A: 255}
	frameColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const frameShadowOpacity = 0.45

// Icon prefixes for the stat labels, applied uniformly when stats.ShowIcons
// is set.
var iconPrefixes = map[string]string{
	"time":        "⏱ ",
	"distance":    "\U0001f4cd ",
	"pace":        "⚡ ",
	"heartRate":   "❤ ",
	"temperature": "\U0001f321 ",
}

// Pipeline composes a photo, transform, stats and filter into the fixed
// 1080x1920 story raster. Compose is pure: identical inputs always yield
// byte-identical output, so the GUI can re-run it synchronously on every
// input change.
type Pipeline struct {
	layout Layout
	logger *logrus.Logger

	renders int
}

// NewPipeline creates a pipeline for the standard story canvas.
func NewPipeline(logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		layout: NewLayout(CanvasWidth, CanvasHeight),
		logger: logger,
	}
}

// Layout exposes the derived overlay geometry.
func (p *Pipeline) Layout() Layout {
	return p.layout
}

// PhotoRect computes the photo's draw rectangle on the canvas: dimensions
// scale the intrinsic size exactly, the base position centers the photo,
// and the translation offset perturbs that centering.
func PhotoRect(photoW, photoH int, t core.TransformState, canvasW, canvasH int) (x, y, w, h float64) {
	w = float64(photoW) * t.Scale
	h = float64(photoH) * t.Scale
	x = (float64(canvasW)-w)/2 + t.OffsetX
	y = (float64(canvasH)-h)/2 + t.OffsetY
	return
}

// Compose renders the story raster. A nil photo is a silent no-op yielding
// nil. The filter is applied to the photo layer only; every overlay step
// draws with its own explicit configuration and can never observe filter
// state.
func (p *Pipeline) Compose(photo *core.SourceImage, t core.TransformState, stats core.WorkoutStats, filter FilterSpec) *image.RGBA {
	if photo == nil {
		return nil
	}

	start := time.Now()
	dst := image.NewRGBA(image.Rect(0, 0, p.layout.CanvasW, p.layout.CanvasH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	p.drawPhoto(dst, photo, t, filter)
	p.drawFrame(dst)
	p.drawOverlayText(dst, stats)

	p.renders++
	p.logger.WithFields(logrus.Fields{
		"render":   p.renders,
		"filter":   filter.ID,
		"scale":    t.Scale,
		"duration": time.Since(start),
	}).Debug("Composed story raster")

	return dst
}

// drawPhoto resamples and filters only the visible part of the photo, so
// extreme zoom levels never allocate a full scaled copy.
func (p *Pipeline) drawPhoto(dst *image.RGBA, photo *core.SourceImage, t core.TransformState, filter FilterSpec) {
	if t.Scale <= 0 {
		return
	}

	x, y, w, h := PhotoRect(photo.Width(), photo.Height(), t, p.layout.CanvasW, p.layout.CanvasH)
	target := image.Rect(
		int(math.Round(x)),
		int(math.Round(y)),
		int(math.Round(x+w)),
		int(math.Round(y+h)),
	)

	visible := target.Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}

	// Map the visible canvas region back into source coordinates.
	srcRect := image.Rect(
		int(math.Floor(float64(visible.Min.X-target.Min.X)/t.Scale)),
		int(math.Floor(float64(visible.Min.Y-target.Min.Y)/t.Scale)),
		int(math.Ceil(float64(visible.Max.X-target.Min.X)/t.Scale)),
		int(math.Ceil(float64(visible.Max.Y-target.Min.Y)/t.Scale)),
	).Intersect(image.Rect(0, 0, photo.Width(), photo.Height()))
	if srcRect.Empty() {
		return
	}

	crop := imaging.Crop(photo.Raster(), srcRect)
	scaled := imaging.Resize(crop, visible.Dx(), visible.Dy(), imaging.Lanczos)
	filtered := filter.Apply(scaled)

	draw.Draw(dst, visible, filtered, image.Point{}, draw.Over)
}

// drawFrame draws the centered square frame ring and its drop shadow.
func (p *Pipeline) drawFrame(dst *image.RGBA) {
	l := p.layout
	drawRingShadow(dst, l.FrameRect, l.Border, l.ShadowRadius, l.ShadowOffset, frameShadowOpacity)

	outer := l.FrameRect
	inner := outer.Inset(l.Border)
	white := image.NewUniform(frameColor)

	// Four border strips.
	draw.Draw(dst, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y), white, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y), white, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), white, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y), white, image.Point{}, draw.Src)
}

// drawOverlayText draws the date, the optional secondary metrics and the
// primary stats row.
func (p *Pipeline) drawOverlayText(dst *image.RGBA, stats core.WorkoutStats) {
	l := p.layout
	top := l.TopBand()

	drawTextRight(dst, top, stats.FormatDate(), textColor, l.DateFontSize, false)

	// Secondary metrics stack top-left; absent values are skipped
	// entirely rather than rendered as placeholders.
	lineY := top.Min.Y
	for _, row := range []struct {
		icon string
		text string
	}{
		{"heartRate", stats.FormatHeartRate()},
		{"temperature", stats.FormatTemperature()},
	} {
		if row.text == "" {
			continue
		}
		text := p.withIcon(stats, row.icon, row.text)
		drawText(dst, top.Min.X, lineY, text, textColor, l.MinorFontSize, false)
		_, lineH := measureText(text, l.MinorFontSize, false)
		lineY += lineH + l.Margin/4
	}

	// Primary stats row: three equal columns, each label centered.
	labels := []struct {
		icon string
		text string
	}{
		{"time", stats.FormatElapsed()},
		{"distance", stats.FormatDistance()},
		{"pace", stats.FormatPace()},
	}
	for i, label := range labels {
		drawTextCentered(dst, l.StatColumn(i), p.withIcon(stats, label.icon, label.text), textColor, l.StatFontSize, true)
	}
}

func (p *Pipeline) withIcon(stats core.WorkoutStats, key, text string) string {
	if !stats.ShowIcons {
		return text
	}
	return iconPrefixes[key] + text
}
