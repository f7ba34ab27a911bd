package core

import (
	"image"
	"testing"
)

func testPhoto(t *testing.T, w, h int) *SourceImage {
	t.Helper()
	photo, err := NewSourceImage(image.NewRGBA(image.Rect(0, 0, w, h)), "test.png")
	if err != nil {
		t.Fatalf("NewSourceImage: %v", err)
	}
	return photo
}

func TestNewSourceImageValidation(t *testing.T) {
	if _, err := NewSourceImage(nil, ""); err == nil {
		t.Error("expected error for nil image")
	}
	if _, err := NewSourceImage(image.NewRGBA(image.Rect(0, 0, 0, 0)), ""); err == nil {
		t.Error("expected error for empty image")
	}

	photo := testPhoto(t, 640, 480)
	if photo.Width() != 640 || photo.Height() != 480 {
		t.Errorf("unexpected dimensions %dx%d", photo.Width(), photo.Height())
	}
}

func TestSessionSwapResetsTransform(t *testing.T) {
	session := NewSession()
	session.SetPhoto(testPhoto(t, 100, 100))

	// Simulate an edited transform on the current photo.
	session.SetTransform(TransformState{Scale: 2.5, OffsetX: 40, OffsetY: -12})

	session.SetPhoto(testPhoto(t, 200, 50))

	photo, transform := session.Snapshot()
	if photo.Width() != 200 {
		t.Fatalf("expected new photo, got width %d", photo.Width())
	}
	if transform != IdentityTransform() {
		t.Errorf("transform not reset on photo swap: %+v", transform)
	}
}

func TestSessionClear(t *testing.T) {
	session := NewSession()
	session.SetPhoto(testPhoto(t, 10, 10))
	session.SetTransform(TransformState{Scale: 3, OffsetX: 1, OffsetY: 1})

	session.SetPhoto(nil)
	if session.HasPhoto() {
		t.Error("expected empty session after clearing photo")
	}
	if session.Transform() != IdentityTransform() {
		t.Errorf("transform not reset on clear: %+v", session.Transform())
	}
}

func TestClampIdempotent(t *testing.T) {
	limits := DefaultScaleLimits()
	values := []float64{-1, 0, 0.01, 0.05, 1, 19.99, 20, 500}

	for _, v := range values {
		once := limits.Clamp(v)
		twice := limits.Clamp(once)
		if once != twice {
			t.Errorf("clamp not idempotent for %v: %v != %v", v, once, twice)
		}
		if once < limits.Min || once > limits.Max {
			t.Errorf("clamp(%v) = %v outside [%v, %v]", v, once, limits.Min, limits.Max)
		}
	}
}

func TestClampMonotonic(t *testing.T) {
	limits := ScaleLimits{Min: 0.5, Max: 4}
	prev := limits.Clamp(-10)
	for v := -10.0; v <= 10; v += 0.25 {
		cur := limits.Clamp(v)
		if cur < prev {
			t.Fatalf("clamp not monotonic at %v: %v < %v", v, cur, prev)
		}
		prev = cur
	}
}
