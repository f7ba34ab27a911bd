// Transform state applied to the source photo before compositing
package core

// DefaultMinScale and DefaultMaxScale bound the photo zoom range.
const (
	DefaultMinScale = 0.05
	DefaultMaxScale = 20.0
)

// TransformState holds the scale and translation applied to the photo.
// Offsets are expressed in output-canvas pixels. The value is always
// replaced as a whole, never field by field.
type TransformState struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// IdentityTransform returns the state paired with a freshly loaded photo.
func IdentityTransform() TransformState {
	return TransformState{Scale: 1, OffsetX: 0, OffsetY: 0}
}

// ScaleLimits clamps the zoom range.
type ScaleLimits struct {
	Min float64
	Max float64
}

// DefaultScaleLimits returns the standard zoom range.
func DefaultScaleLimits() ScaleLimits {
	return ScaleLimits{Min: DefaultMinScale, Max: DefaultMaxScale}
}

// Clamp bounds s to the limits. The function is monotonic and idempotent:
// re-clamping an already in-range value is a no-op.
func (l ScaleLimits) Clamp(s float64) float64 {
	if s < l.Min {
		return l.Min
	}
	if s > l.Max {
		return l.Max
	}
	return s
}
