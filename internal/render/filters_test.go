package render

import (
	"image"
	"image/color"
	"testing"
)

func testPattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 7 % 256),
				G: uint8(y * 13 % 256),
				B: uint8((x + y) * 5 % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestFilterLookup(t *testing.T) {
	for _, id := range FilterIDs() {
		spec := Filter(id)
		if spec.ID != id {
			t.Errorf("Filter(%q).ID = %q", id, spec.ID)
		}
		if spec.DisplayName == "" {
			t.Errorf("filter %q has no display name", id)
		}
		if spec.Apply == nil {
			t.Errorf("filter %q has no effect function", id)
		}
	}
}

func TestUnknownFilterFallsBackToIdentity(t *testing.T) {
	spec := Filter("does-not-exist")
	if spec.ID != FilterNone {
		t.Fatalf("unknown filter resolved to %q, want %q", spec.ID, FilterNone)
	}

	src := testPattern(16, 16)
	out := spec.Apply(src)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if out.At(x, y) != color.NRGBAModel.Convert(src.At(x, y)) {
				t.Fatalf("identity filter altered pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestFilterIDsStartWithIdentity(t *testing.T) {
	ids := FilterIDs()
	if len(ids) == 0 || ids[0] != FilterNone {
		t.Fatalf("FilterIDs() = %v, want identity first", ids)
	}
}

func TestMonoFilterDesaturates(t *testing.T) {
	out := Filter("mono").Apply(testPattern(8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := out.NRGBAAt(x, y)
			if px.R != px.G || px.G != px.B {
				t.Fatalf("mono output not gray at (%d,%d): %+v", x, y, px)
			}
		}
	}
}

func TestFiltersAreDeterministic(t *testing.T) {
	src := testPattern(32, 32)
	for _, id := range FilterIDs() {
		a := Filter(id).Apply(src)
		b := Filter(id).Apply(src)
		if len(a.Pix) != len(b.Pix) {
			t.Fatalf("filter %q produced differing sizes", id)
		}
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				t.Fatalf("filter %q not deterministic at byte %d", id, i)
			}
		}
	}
}
