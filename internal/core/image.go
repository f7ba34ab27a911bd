// Core photo data structures with thread-safe operations
package core

import (
	"fmt"
	"image"
	"sync"
)

// SourceImage is a fully decoded photo raster. It is immutable once
// constructed; replacing the photo in a session is a full swap.
type SourceImage struct {
	raster   image.Image
	width    int
	height   int
	filepath string
}

// NewSourceImage wraps a decoded raster with validation.
func NewSourceImage(img image.Image, filepath string) (*SourceImage, error) {
	if img == nil {
		return nil, fmt.Errorf("cannot wrap nil image")
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	const maxDimension = 16384
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		return nil, fmt.Errorf("image too large: %dx%d (max: %d)", bounds.Dx(), bounds.Dy(), maxDimension)
	}

	return &SourceImage{
		raster:   img,
		width:    bounds.Dx(),
		height:   bounds.Dy(),
		filepath: filepath,
	}, nil
}

// Raster returns the decoded pixels.
func (s *SourceImage) Raster() image.Image { return s.raster }

// Width returns the intrinsic width in pixels.
func (s *SourceImage) Width() int { return s.width }

// Height returns the intrinsic height in pixels.
func (s *SourceImage) Height() int { return s.height }

// Filepath returns the path the photo was loaded from.
func (s *SourceImage) Filepath() string { return s.filepath }

// Session pairs exactly one SourceImage with exactly one TransformState.
// The transform's lifecycle is scoped to the photo: swapping the photo
// installs a fresh identity transform under the same lock, so readers can
// never observe an old transform paired with a new photo.
type Session struct {
	mu        sync.RWMutex
	photo     *SourceImage
	transform TransformState
}

// NewSession creates an empty editing session.
func NewSession() *Session {
	return &Session{transform: IdentityTransform()}
}

// SetPhoto atomically swaps the photo and resets the transform.
// A nil photo clears the session.
func (s *Session) SetPhoto(photo *SourceImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photo = photo
	s.transform = IdentityTransform()
}

// Photo returns the current photo, or nil when none is loaded.
func (s *Session) Photo() *SourceImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photo
}

// HasPhoto reports whether a photo is loaded.
func (s *Session) HasPhoto() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photo != nil
}

// Transform returns the current transform state.
func (s *Session) Transform() TransformState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transform
}

// SetTransform replaces the transform as a whole value.
func (s *Session) SetTransform(t TransformState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transform = t
}

// Snapshot returns the photo and transform as one consistent pair.
func (s *Session) Snapshot() (*SourceImage, TransformState) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photo, s.transform
}
