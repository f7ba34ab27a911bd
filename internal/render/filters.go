// Photo filter registry
package render

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

// FilterFunc is a pure image effect applied to the photo layer only.
type FilterFunc func(image.Image) *image.NRGBA

// FilterSpec describes one named filter.
type FilterSpec struct {
	ID          string
	DisplayName string
	Apply       FilterFunc
}

// FilterNone is the identity filter id.
const FilterNone = "none"

var filters = map[string]FilterSpec{
	FilterNone: {
		ID:          FilterNone,
		DisplayName: "Original",
		Apply:       imaging.Clone,
	},
	"mono": {
		ID:          "mono",
		DisplayName: "Mono",
		Apply:       imaging.Grayscale,
	},
	"noir": {
		ID:          "noir",
		DisplayName: "Noir",
		Apply: func(img image.Image) *image.NRGBA {
			return imaging.AdjustContrast(imaging.Grayscale(img), 25)
		},
	},
	"fade": {
		ID:          "fade",
		DisplayName: "Fade",
		Apply: func(img image.Image) *image.NRGBA {
			return imaging.AdjustBrightness(imaging.AdjustContrast(img, -20), 8)
		},
	},
	"chrome": {
		ID:          "chrome",
		DisplayName: "Chrome",
		Apply: func(img image.Image) *image.NRGBA {
			return imaging.AdjustContrast(imaging.AdjustSaturation(img, 25), 12)
		},
	},
	"warm": {
		ID:          "warm",
		DisplayName: "Warm",
		Apply: func(img image.Image) *image.NRGBA {
			return imaging.AdjustSaturation(imaging.AdjustGamma(img, 1.1), 12)
		},
	},
	"soft": {
		ID:          "soft",
		DisplayName: "Soft",
		Apply: func(img image.Image) *image.NRGBA {
			return imaging.Blur(imaging.AdjustBrightness(img, 4), 1.5)
		},
	},
}

// Filter looks up a filter by id. Unknown or empty ids resolve to the
// identity filter so a render can always proceed.
func Filter(id string) FilterSpec {
	if spec, ok := filters[id]; ok {
		return spec
	}
	return filters[FilterNone]
}

// FilterIDs returns all filter ids, identity first, the rest sorted.
func FilterIDs() []string {
	ids := make([]string, 0, len(filters))
	for id := range filters {
		if id == FilterNone {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return append([]string{FilterNone}, ids...)
}

// FilterDisplayName returns the human-readable name for a filter id.
func FilterDisplayName(id string) string {
	return Filter(id).DisplayName
}
