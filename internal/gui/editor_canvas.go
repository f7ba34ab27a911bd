// Interactive editor canvas widget
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"workout-story/internal/core"
	"workout-story/internal/gesture"
	"workout-story/internal/render"
)

// EditorCanvas shows the live story composite and feeds pointer, drag and
// wheel events into the gesture controller. Every input change re-runs the
// pipeline synchronously and only then swaps the displayed raster, so no
// partial frame is ever visible.
type EditorCanvas struct {
	widget.BaseWidget

	session    *core.Session
	controller *gesture.Controller
	pipeline   *render.Pipeline
	logger     *logrus.Logger

	stats  core.WorkoutStats
	filter render.FilterSpec

	display *canvas.Image
}

// NewEditorCanvas creates the editor canvas widget.
func NewEditorCanvas(session *core.Session, controller *gesture.Controller, pipeline *render.Pipeline, logger *logrus.Logger) *EditorCanvas {
	ec := &EditorCanvas{
		session:    session,
		controller: controller,
		pipeline:   pipeline,
		logger:     logger,
		filter:     render.Filter(render.FilterNone),
	}

	ec.display = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, render.CanvasWidth, render.CanvasHeight)))
	ec.display.FillMode = canvas.ImageFillContain

	controller.OnChange(func(core.TransformState) {
		ec.Redraw()
	})

	ec.ExtendBaseWidget(ec)
	return ec
}

// CreateRenderer implements fyne.Widget.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &editorCanvasRenderer{canvas: ec, display: ec.display}
}

// SetStats updates the stat values and re-renders.
func (ec *EditorCanvas) SetStats(stats core.WorkoutStats) {
	ec.stats = stats
	ec.filter = render.Filter(stats.Filter)
	ec.Redraw()
}

// Stats returns the stat values currently shown.
func (ec *EditorCanvas) Stats() core.WorkoutStats {
	return ec.stats
}

// Compose renders the current session state into a fresh story raster.
func (ec *EditorCanvas) Compose() *image.RGBA {
	photo, transform := ec.session.Snapshot()
	return ec.pipeline.Compose(photo, transform, ec.stats, ec.filter)
}

// Redraw recomposes synchronously and swaps the displayed raster.
func (ec *EditorCanvas) Redraw() {
	out := ec.Compose()
	if out == nil {
		// No photo loaded: rendering is a silent no-op.
		return
	}
	ec.display.Image = out
	ec.display.Refresh()
}

// displayedWidth returns the rendered width of the story preview inside
// the widget at this moment. FillContain letterboxes the fixed-ratio
// canvas, so the preview width is bounded by both widget dimensions.
func (ec *EditorCanvas) displayedWidth() float64 {
	size := ec.Size()
	byHeight := float64(size.Height) * float64(render.CanvasWidth) / float64(render.CanvasHeight)
	return min(float64(size.Width), byHeight)
}

// MouseDown starts a drag gesture.
func (ec *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	if !ec.session.HasPhoto() {
		return
	}
	ec.controller.Begin([]gesture.Contact{{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}})
}

// MouseUp ends the gesture.
func (ec *EditorCanvas) MouseUp(*desktop.MouseEvent) {
	ec.controller.End(nil)
}

// Dragged feeds motion samples to the controller. The displayed width is
// sampled per event so resizes mid-drag keep the mapping exact.
func (ec *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	if ec.controller.Phase() == gesture.Idle {
		if !ec.session.HasPhoto() {
			return
		}
		ec.controller.Begin([]gesture.Contact{{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}})
		return
	}
	ec.controller.Move([]gesture.Contact{{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}}, ec.displayedWidth())
}

// DragEnd ends the gesture.
func (ec *EditorCanvas) DragEnd() {
	ec.controller.End(nil)
}

// Scrolled zooms about the canvas center.
func (ec *EditorCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if !ec.session.HasPhoto() {
		return
	}
	switch {
	case ev.Scrolled.DY > 0:
		ec.controller.Wheel(1)
	case ev.Scrolled.DY < 0:
		ec.controller.Wheel(-1)
	}
}

type editorCanvasRenderer struct {
	canvas  *EditorCanvas
	display *canvas.Image
}

func (r *editorCanvasRenderer) Layout(size fyne.Size) {
	r.display.Resize(size)
}

func (r *editorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(270, 480)
}

func (r *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.display}
}

func (r *editorCanvasRenderer) Refresh() {
	r.display.Refresh()
}

func (r *editorCanvasRenderer) Destroy() {}
