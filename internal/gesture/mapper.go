// Package gesture turns pointer, touch and wheel events into photo
// transform updates.
package gesture

// Mapper converts on-screen interaction distances into output-canvas
// distances. The interactive surface renders the fixed-size canvas at an
// arbitrary display width, so a drag of n display pixels has to move the
// photo by n * (outputWidth / displayedWidth) canvas pixels for the motion
// to track the cursor exactly.
type Mapper struct {
	OutputWidth float64
}

// ToOutputDelta maps a display-space delta into output-canvas space.
// displayedWidth must be the surface's rendered width at the time of the
// event, not a cached value, or drag fidelity degrades after window
// resizes. A non-positive width yields zero.
func (m Mapper) ToOutputDelta(displayDelta, displayedWidth float64) float64 {
	if displayedWidth <= 0 {
		return 0
	}
	return displayDelta * m.OutputWidth / displayedWidth
}
