// Story export encoding
package io

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/sirupsen/logrus"
)

// DefaultJPEGQuality matches the story export quality of roughly 0.9.
const DefaultJPEGQuality = 90

// Exporter encodes composed story rasters to disk. Filename generation and
// the save dialog live in the GUI layer; the exporter only encodes.
type Exporter struct {
	logger  *logrus.Logger
	quality int
}

func NewExporter(logger *logrus.Logger, quality int) *Exporter {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &Exporter{logger: logger, quality: quality}
}

// Export encodes the raster to path; the encoder is picked from the file
// extension (jpeg by default).
func (e *Exporter) Export(raster image.Image, path string) error {
	if raster == nil {
		return fmt.Errorf("cannot export empty raster")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, raster)
	case ".webp":
		err = webp.Encode(f, raster, &webp.Options{Quality: float32(e.quality)})
	default:
		err = jpeg.Encode(f, raster, &jpeg.Options{Quality: e.quality})
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	e.logger.WithFields(logrus.Fields{
		"filepath": path,
		"quality":  e.quality,
	}).Info("Story exported")

	return nil
}
