package gesture

import "testing"

func TestToOutputDelta(t *testing.T) {
	m := Mapper{OutputWidth: 1080}

	tests := []struct {
		name           string
		delta          float64
		displayedWidth float64
		want           float64
	}{
		{"third-size display triples the delta", 10, 360, 30},
		{"full-size display is identity", 25, 1080, 25},
		{"negative delta preserved", -8, 360, -24},
		{"zero width yields zero", 10, 0, 0},
		{"negative width yields zero", 10, -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ToOutputDelta(tt.delta, tt.displayedWidth); got != tt.want {
				t.Errorf("ToOutputDelta(%v, %v) = %v, want %v", tt.delta, tt.displayedWidth, got, tt.want)
			}
		})
	}
}

// A window resize in the middle of a drag changes the displayed width; each
// sample must be mapped with the width in effect at that moment.
func TestToOutputDeltaResizeMidDrag(t *testing.T) {
	m := Mapper{OutputWidth: 1080}

	before := m.ToOutputDelta(10, 360)
	after := m.ToOutputDelta(10, 540)

	if before != 30 {
		t.Errorf("pre-resize delta = %v, want 30", before)
	}
	if after != 20 {
		t.Errorf("post-resize delta = %v, want 20", after)
	}
}
