package workload

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggbench"
)

func TestRingLayout(t *testing.T) {
	tests := []struct {
		instances int
		want      int
	}{
		{1, 1},
		{2, 2},
		{8, 8},
	}
	for _, tt := range tests {
		got := ringLayout(tt.instances, 800, 600)
		if len(got) != tt.want {
			t.Errorf("ringLayout(%d) returned %d placements, want %d", tt.instances, len(got), tt.want)
		}
		for i, p := range got {
			if p.r <= 0 {
				t.Errorf("ringLayout(%d)[%d]: non-positive radius %v", tt.instances, i, p.r)
			}
			if p.cx < 0 || p.cx > 800 || p.cy < 0 || p.cy > 600 {
				t.Errorf("ringLayout(%d)[%d]: center (%v, %v) outside surface", tt.instances, i, p.cx, p.cy)
			}
		}
	}
}

func TestSpinAdvanceAndWrap(t *testing.T) {
	var s spin
	s.spinBy(50, 1.0)
	if s.angle != 50 {
		t.Errorf("angle = %v, want 50", s.angle)
	}
	s.spinBy(50, 10.0) // 550 total, wraps past 360
	if math.Abs(s.angle-190) > 1e-9 {
		t.Errorf("angle after wrap = %v, want 190", s.angle)
	}

	s.orbit(1.0)
	if math.Abs(s.light0-50) > 1e-9 {
		t.Errorf("light0 = %v, want 50", s.light0)
	}
	if math.Abs(s.light1-310) > 1e-9 {
		t.Errorf("light1 = %v, want 310 (wrapped negative)", s.light1)
	}

	s.reset()
	if s != (spin{}) {
		t.Errorf("reset left state %+v", s)
	}
}

// TestRingMeshResetClearsSharedSpin: a window close on one geometry tier
// resets the animation state shared by all of them.
func TestRingMeshResetClearsSharedSpin(t *testing.T) {
	sp := &spin{}
	a := NewAssets()
	r1 := &ringMesh{name: "one", assets: a, spin: sp, instances: 1, segments: 16, style: ringFlat}
	r2 := &ringMesh{name: "two", assets: a, spin: sp, instances: 1, segments: 16, style: ringQuadLit}

	dc := gg.NewContext(64, 64)
	fr := &ggbench.Frame{DC: dc, DT: 0.5}
	if err := r1.Render(fr); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := r2.Render(fr); err != nil {
		t.Fatalf("render: %v", err)
	}
	if sp.angle == 0 {
		t.Fatal("rotation did not advance")
	}

	r1.Reset()
	if *sp != (spin{}) {
		t.Errorf("Reset left shared state %+v", *sp)
	}
}

func TestRingMeshAnimates(t *testing.T) {
	sp := &spin{}
	r := &ringMesh{name: "r", assets: NewAssets(), spin: sp, instances: 1, segments: 16, style: ringPixelLit}
	dc := gg.NewContext(64, 64)

	if err := r.Render(&ggbench.Frame{DC: dc, DT: 1.0}); err != nil {
		t.Fatalf("render: %v", err)
	}
	// Pixel-lit rings spin at 30 degrees per second and orbit the lights.
	if math.Abs(sp.angle-30) > 1e-9 {
		t.Errorf("angle = %v, want 30", sp.angle)
	}
	if sp.light0 == 0 || sp.light1 == 0 {
		t.Error("light orbit did not advance")
	}
}
