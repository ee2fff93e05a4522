package workload

import "testing"

func TestNewAssets(t *testing.T) {
	a := NewAssets()

	for _, tt := range []struct {
		name string
		buf  interface{ Bounds() (int, int) }
	}{
		{"Opaque", a.Opaque},
		{"Ring", a.Ring},
		{"Transparent", a.Transparent},
		{"Checker", a.Checker},
	} {
		w, h := tt.buf.Bounds()
		if w != texSize || h != texSize {
			t.Errorf("%s bounds = %dx%d, want %dx%d", tt.name, w, h, texSize, texSize)
		}
	}

	if len(a.Icons) != iconCount {
		t.Fatalf("icon count = %d, want %d", len(a.Icons), iconCount)
	}
	if len(a.Captions) != iconCount {
		t.Fatalf("caption count = %d, want %d", len(a.Captions), iconCount)
	}
	for i, ic := range a.Icons {
		w, h := ic.Bounds()
		if w != iconSize || h != iconSize {
			t.Fatalf("icon %d bounds = %dx%d, want %dx%d", i, w, h, iconSize, iconSize)
		}
	}
}

func TestTextureContent(t *testing.T) {
	a := NewAssets()

	// Opaque is fully opaque everywhere.
	_, _, _, alpha := a.Opaque.GetRGBA(0, 0)
	if alpha != 255 {
		t.Errorf("Opaque alpha at (0,0) = %d, want 255", alpha)
	}

	// Transparent fades to zero alpha at the corner.
	_, _, _, corner := a.Transparent.GetRGBA(0, 0)
	_, _, _, center := a.Transparent.GetRGBA(texSize/2, texSize/2)
	if corner >= center {
		t.Errorf("Transparent alpha corner=%d center=%d, want corner < center", corner, center)
	}

	// Checker alternates between light and dark cells.
	r0, _, _, _ := a.Checker.GetRGBA(0, 0)
	r1, _, _, _ := a.Checker.GetRGBA(texSize/8, 0)
	if r0 == r1 {
		t.Error("Checker cells do not alternate")
	}

	// Icon corners are transparent (outside the disc).
	_, _, _, ia := a.Icons[0].GetRGBA(0, 0)
	if ia != 0 {
		t.Errorf("icon corner alpha = %d, want 0", ia)
	}
}

func TestTexSampleWraps(t *testing.T) {
	a := NewAssets()
	in := texSample(a.Checker, 0.25, 0.25)
	wrapped := texSample(a.Checker, 1.25, 1.25)
	if in != wrapped {
		t.Errorf("texSample did not wrap: %v != %v", in, wrapped)
	}
	neg := texSample(a.Checker, -0.75, -0.75)
	if in != neg {
		t.Errorf("texSample negative wrap: %v != %v", in, neg)
	}
}
