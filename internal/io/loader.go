// Photo loading
package io

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/webp"

	"workout-story/internal/core"
)

var supportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".webp"}

// ImageLoader decodes photo files into SourceImages.
type ImageLoader struct {
	logger *logrus.Logger
}

func NewImageLoader(logger *logrus.Logger) *ImageLoader {
	return &ImageLoader{logger: logger}
}

// LoadImage decodes the photo at path. The decoded raster is returned fully
// materialized; callers hand it to the session as one atomic swap.
func (il *ImageLoader) LoadImage(path string) (*core.SourceImage, error) {
	il.logger.WithField("filepath", path).Debug("Loading photo")

	if !il.IsSupported(path) {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}

	img, err := decode(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	photo, err := core.NewSourceImage(img, path)
	if err != nil {
		return nil, err
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    photo.Width(),
		"height":   photo.Height(),
	}).Info("Photo loaded successfully")

	return photo, nil
}

// IsSupported reports whether the file extension is a loadable format.
func (il *ImageLoader) IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

func decode(path string) (image.Image, error) {
	if img, err := imaging.Open(path, imaging.AutoOrientation(true)); err == nil {
		return img, nil
	}

	// imaging does not register a WebP decoder; fall back explicitly.
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(f)
	return img, err
}
