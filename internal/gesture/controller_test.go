package gesture

import (
	"image"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"workout-story/internal/core"
)

func testController(t *testing.T) (*Controller, *core.Session) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	session := core.NewSession()
	photo, err := core.NewSourceImage(image.NewRGBA(image.Rect(0, 0, 800, 600)), "test.png")
	if err != nil {
		t.Fatalf("NewSourceImage: %v", err)
	}
	session.SetPhoto(photo)

	mapper := Mapper{OutputWidth: 1080}
	return NewController(session, mapper, core.DefaultScaleLimits(), logger), session
}

func TestDragMapsDisplayDeltaToOutputSpace(t *testing.T) {
	c, session := testController(t)

	c.Begin([]Contact{{X: 100, Y: 100}})
	if c.Phase() != Dragging {
		t.Fatalf("phase = %v, want dragging", c.Phase())
	}

	// Display width 360, output width 1080: every display pixel moves the
	// photo by three canvas pixels.
	c.Move([]Contact{{X: 110, Y: 104}}, 360)

	got := session.Transform()
	if got.OffsetX != 30 || got.OffsetY != 12 {
		t.Errorf("offset = (%v, %v), want (30, 12)", got.OffsetX, got.OffsetY)
	}

	// Deltas accumulate from the last position, not the origin.
	c.Move([]Contact{{X: 111, Y: 104}}, 360)
	got = session.Transform()
	if got.OffsetX != 33 || got.OffsetY != 12 {
		t.Errorf("offset after second move = (%v, %v), want (33, 12)", got.OffsetX, got.OffsetY)
	}
}

func TestDragAcrossWindowResize(t *testing.T) {
	c, session := testController(t)

	c.Begin([]Contact{{X: 0, Y: 0}})
	c.Move([]Contact{{X: 10, Y: 0}}, 360)
	c.Move([]Contact{{X: 20, Y: 0}}, 540) // window grew mid-drag

	got := session.Transform()
	if got.OffsetX != 30+20 {
		t.Errorf("offset = %v, want 50", got.OffsetX)
	}
}

func TestPinchEstablishesBaselineBeforeScaling(t *testing.T) {
	c, session := testController(t)

	// Two contacts at the same point: baseline distance zero.
	c.Begin([]Contact{{X: 50, Y: 50}, {X: 50, Y: 50}})
	if c.Phase() != Pinching {
		t.Fatalf("phase = %v, want pinching", c.Phase())
	}

	// First sample with a real distance only establishes the baseline.
	c.Move([]Contact{{X: 40, Y: 50}, {X: 60, Y: 50}}, 360)
	if got := session.Transform().Scale; got != 1 {
		t.Fatalf("scale changed on baseline sample: %v", got)
	}

	// Doubling the distance doubles the scale.
	c.Move([]Contact{{X: 30, Y: 50}, {X: 70, Y: 50}}, 360)
	if got := session.Transform().Scale; math.Abs(got-2) > 1e-9 {
		t.Errorf("scale = %v, want 2", got)
	}
}

func TestPinchRebasesIncrementally(t *testing.T) {
	c, session := testController(t)

	c.Begin([]Contact{{X: 0, Y: 0}, {X: 100, Y: 0}})
	c.Move([]Contact{{X: 0, Y: 0}, {X: 150, Y: 0}}, 360)
	c.Move([]Contact{{X: 0, Y: 0}, {X: 300, Y: 0}}, 360)

	// 100 -> 150 -> 300 compounds to a factor of 3 overall because each
	// sample re-bases on the previous distance.
	if got := session.Transform().Scale; math.Abs(got-3) > 1e-9 {
		t.Errorf("scale = %v, want 3", got)
	}
}

func TestPinchDoesNotTouchOffset(t *testing.T) {
	c, session := testController(t)
	session.SetTransform(core.TransformState{Scale: 1, OffsetX: 12, OffsetY: -7})

	c.Begin([]Contact{{X: 0, Y: 0}, {X: 100, Y: 0}})
	c.Move([]Contact{{X: 0, Y: 0}, {X: 200, Y: 0}}, 360)

	got := session.Transform()
	if got.OffsetX != 12 || got.OffsetY != -7 {
		t.Errorf("pinch moved offset to (%v, %v)", got.OffsetX, got.OffsetY)
	}
}

func TestStraySingleContactMoveDuringPinchIgnored(t *testing.T) {
	c, session := testController(t)
	session.SetTransform(core.TransformState{Scale: 1, OffsetX: 5, OffsetY: 5})

	c.Begin([]Contact{{X: 0, Y: 0}, {X: 100, Y: 0}})

	// One finger lifted but no end event arrived yet: the single-contact
	// sample must not be treated as a drag.
	c.Move([]Contact{{X: 400, Y: 400}}, 360)

	got := session.Transform()
	if got.OffsetX != 5 || got.OffsetY != 5 || got.Scale != 1 {
		t.Errorf("stray sample corrupted transform: %+v", got)
	}
	if c.Phase() != Pinching {
		t.Errorf("phase = %v, want pinching", c.Phase())
	}
}

func TestStrayTwoContactMoveDuringDragIgnored(t *testing.T) {
	c, session := testController(t)

	c.Begin([]Contact{{X: 0, Y: 0}})
	c.Move([]Contact{{X: 0, Y: 0}, {X: 50, Y: 0}}, 360)

	if got := session.Transform(); got != core.IdentityTransform() {
		t.Errorf("stray sample mutated transform: %+v", got)
	}
}

func TestEndTransitions(t *testing.T) {
	c, _ := testController(t)

	c.Begin([]Contact{{X: 0, Y: 0}, {X: 100, Y: 0}})
	c.End([]Contact{{X: 100, Y: 0}})
	if c.Phase() != Dragging {
		t.Errorf("phase after one finger lifted = %v, want dragging", c.Phase())
	}

	c.End(nil)
	if c.Phase() != Idle {
		t.Errorf("phase after all contacts lifted = %v, want idle", c.Phase())
	}
}

func TestPinchToDragHandoffUsesFreshOrigin(t *testing.T) {
	c, session := testController(t)

	c.Begin([]Contact{{X: 0, Y: 0}, {X: 100, Y: 0}})
	c.End([]Contact{{X: 100, Y: 0}})

	// The surviving contact becomes the drag origin; the first move is
	// measured from it, not from any pinch-era position.
	c.Move([]Contact{{X: 110, Y: 0}}, 360)
	if got := session.Transform().OffsetX; got != 30 {
		t.Errorf("offset = %v, want 30", got)
	}
}

func TestWheelZoom(t *testing.T) {
	c, session := testController(t)

	c.Wheel(1)
	if got := session.Transform().Scale; math.Abs(got-WheelStep) > 1e-9 {
		t.Errorf("scale after zoom in = %v, want %v", got, WheelStep)
	}

	c.Wheel(-1)
	if got := session.Transform().Scale; math.Abs(got-1) > 1e-9 {
		t.Errorf("scale after zoom out = %v, want 1", got)
	}

	if got := session.Transform(); got.OffsetX != 0 || got.OffsetY != 0 {
		t.Errorf("wheel zoom moved offset: %+v", got)
	}
}

func TestWheelZoomClamped(t *testing.T) {
	c, session := testController(t)
	limits := core.DefaultScaleLimits()

	for i := 0; i < 200; i++ {
		c.Wheel(1)
	}
	if got := session.Transform().Scale; got != limits.Max {
		t.Errorf("scale = %v, want clamped to %v", got, limits.Max)
	}

	for i := 0; i < 400; i++ {
		c.Wheel(-1)
	}
	if got := session.Transform().Scale; got != limits.Min {
		t.Errorf("scale = %v, want clamped to %v", got, limits.Min)
	}
}

func TestPinchScaleClamped(t *testing.T) {
	c, session := testController(t)

	c.Begin([]Contact{{X: 0, Y: 0}, {X: 1, Y: 0}})
	c.Move([]Contact{{X: 0, Y: 0}, {X: 10000, Y: 0}}, 360)

	if got := session.Transform().Scale; got != core.DefaultMaxScale {
		t.Errorf("scale = %v, want clamped to %v", got, core.DefaultMaxScale)
	}
}

func TestOnChangeCallback(t *testing.T) {
	c, _ := testController(t)

	var calls int
	c.OnChange(func(core.TransformState) { calls++ })

	c.Begin([]Contact{{X: 0, Y: 0}})
	c.Move([]Contact{{X: 5, Y: 5}}, 360)
	c.Wheel(1)

	if calls != 2 {
		t.Errorf("onChange called %d times, want 2", calls)
	}
}
