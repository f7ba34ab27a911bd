// Application configuration
package config

import (
	"fmt"
	"strings"

	"workout-story/internal/core"
)

// Export holds export encoding settings.
type Export struct {
	Format  string
	Quality int
}

// Config holds the application configuration.
type Config struct {
	// ZoomStep is the per-event wheel zoom factor.
	ZoomStep float64

	// MinScale and MaxScale bound the photo zoom range.
	MinScale float64
	MaxScale float64

	Export Export
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		ZoomStep: 1.1,
		MinScale: core.DefaultMinScale,
		MaxScale: core.DefaultMaxScale,
		Export: Export{
			Format:  "jpg",
			Quality: 90,
		},
	}
}

// ScaleLimits returns the configured zoom range.
func (c *Config) ScaleLimits() core.ScaleLimits {
	return core.ScaleLimits{Min: c.MinScale, Max: c.MaxScale}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "zoom_step = %g\n", c.ZoomStep)
	fmt.Fprintf(&sb, "min_scale = %g\n", c.MinScale)
	fmt.Fprintf(&sb, "max_scale = %g\n", c.MaxScale)
	sb.WriteString("\n")

	sb.WriteString("[export]\n")
	fmt.Fprintf(&sb, "format = %s\n", c.Export.Format)
	fmt.Fprintf(&sb, "quality = %d\n", c.Export.Quality)

	return sb.String()
}

// validate folds out-of-range values back to defaults.
func (c *Config) validate() {
	defaults := New()

	if c.ZoomStep <= 1 {
		c.ZoomStep = defaults.ZoomStep
	}
	if c.MinScale <= 0 {
		c.MinScale = defaults.MinScale
	}
	if c.MaxScale <= c.MinScale {
		c.MaxScale = defaults.MaxScale
	}
	if c.Export.Quality <= 0 || c.Export.Quality > 100 {
		c.Export.Quality = defaults.Export.Quality
	}
	switch strings.ToLower(c.Export.Format) {
	case "jpg", "jpeg", "png", "webp":
		c.Export.Format = strings.ToLower(c.Export.Format)
	default:
		c.Export.Format = defaults.Export.Format
	}
}
