package gesture

import (
	"math"

	"github.com/sirupsen/logrus"

	"workout-story/internal/core"
)

// Phase is the controller's interaction state.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Pinching
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case Pinching:
		return "pinching"
	default:
		return "idle"
	}
}

// Contact is one active touch/pointer position in display coordinates.
type Contact struct {
	X float64
	Y float64
}

// WheelStep is the default per-event zoom factor for wheel input.
const WheelStep = 1.1

// Controller is the transform state machine. It is the session transform's
// only writer. Contact-begin and contact-end events drive the
// Idle/Dragging/Pinching transitions; move events mutate the transform;
// wheel events are stateless scale changes.
//
// The ephemeral gesture session (drag origin, pinch baseline) is cleared on
// every contact-count change, so a sample whose contact count does not
// match the current phase is ignored rather than corrupting the offset.
type Controller struct {
	session *core.Session
	mapper  Mapper
	limits  core.ScaleLimits
	logger  *logrus.Logger

	wheelStep float64

	phase Phase

	// Drag origin: last seen contact position while dragging.
	lastX float64
	lastY float64

	// Pinch baseline: inter-contact distance of the previous sample.
	// Zero means unset; the next sample establishes it.
	baseline float64

	onChange func(core.TransformState)
}

// NewController creates a controller bound to a session.
func NewController(session *core.Session, mapper Mapper, limits core.ScaleLimits, logger *logrus.Logger) *Controller {
	return &Controller{
		session:   session,
		mapper:    mapper,
		limits:    limits,
		logger:    logger,
		wheelStep: WheelStep,
	}
}

// SetWheelStep overrides the per-event wheel zoom factor. Values at or
// below 1 are ignored.
func (c *Controller) SetWheelStep(step float64) {
	if step > 1 {
		c.wheelStep = step
	}
}

// OnChange registers a callback invoked after every transform mutation.
func (c *Controller) OnChange(fn func(core.TransformState)) {
	c.onChange = fn
}

// Phase returns the current interaction phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Reset returns the controller to Idle and clears the gesture session.
// Called alongside every photo swap.
func (c *Controller) Reset() {
	c.phase = Idle
	c.baseline = 0
	c.lastX, c.lastY = 0, 0
}

// Begin starts a gesture from a fresh set of contacts.
func (c *Controller) Begin(contacts []Contact) {
	switch len(contacts) {
	case 1:
		c.phase = Dragging
		c.lastX, c.lastY = contacts[0].X, contacts[0].Y
	case 2:
		c.phase = Pinching
		c.baseline = distance(contacts[0], contacts[1])
	default:
		c.phase = Idle
		c.baseline = 0
	}

	c.logger.WithFields(logrus.Fields{
		"contacts": len(contacts),
		"phase":    c.phase.String(),
	}).Debug("Gesture began")
}

// Move processes a motion sample. displayedWidth is the live rendered
// width of the interactive surface. Samples whose contact count does not
// match the current phase are dropped.
func (c *Controller) Move(contacts []Contact, displayedWidth float64) {
	switch c.phase {
	case Dragging:
		if len(contacts) != 1 {
			return
		}
		c.drag(contacts[0], displayedWidth)
	case Pinching:
		if len(contacts) != 2 {
			// One finger lifted without a clean transition; ignore
			// until the contact count changes.
			return
		}
		c.pinch(contacts[0], contacts[1])
	}
}

// End finishes a gesture; remaining holds the contacts still down. Any
// contact-count change clears the ephemeral gesture session.
func (c *Controller) End(remaining []Contact) {
	c.baseline = 0
	c.lastX, c.lastY = 0, 0

	switch len(remaining) {
	case 0:
		c.phase = Idle
	case 1:
		// Re-enter a drag from the surviving contact.
		c.phase = Dragging
		c.lastX, c.lastY = remaining[0].X, remaining[0].Y
	default:
		c.phase = Pinching
		c.baseline = distance(remaining[0], remaining[1])
	}

	c.logger.WithField("phase", c.phase.String()).Debug("Gesture ended")
}

// Wheel applies a stateless zoom step. A positive direction zooms in,
// negative zooms out. The offset is never touched: zoom always anchors at
// the canvas center.
func (c *Controller) Wheel(direction int) {
	if direction == 0 {
		return
	}

	state := c.session.Transform()
	if direction > 0 {
		state.Scale = c.limits.Clamp(state.Scale * c.wheelStep)
	} else {
		state.Scale = c.limits.Clamp(state.Scale / c.wheelStep)
	}
	c.commit(state)
}

func (c *Controller) drag(contact Contact, displayedWidth float64) {
	dx := c.mapper.ToOutputDelta(contact.X-c.lastX, displayedWidth)
	dy := c.mapper.ToOutputDelta(contact.Y-c.lastY, displayedWidth)
	c.lastX, c.lastY = contact.X, contact.Y

	state := c.session.Transform()
	state.OffsetX += dx
	state.OffsetY += dy
	c.commit(state)
}

func (c *Controller) pinch(a, b Contact) {
	current := distance(a, b)
	if c.baseline <= 0 {
		// First usable sample establishes the baseline; no scaling.
		c.baseline = current
		return
	}
	if current <= 0 {
		return
	}

	state := c.session.Transform()
	state.Scale = c.limits.Clamp(state.Scale * current / c.baseline)
	c.baseline = current
	c.commit(state)
}

func (c *Controller) commit(state core.TransformState) {
	c.session.SetTransform(state)
	if c.onChange != nil {
		c.onChange(state)
	}
}

func distance(a, b Contact) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
