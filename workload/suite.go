package workload

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggbench"
)

// ringSegments is the per-ring tessellation of the geometry tiers; the
// heavy-vertex variants multiply it by heavyVertexFactor.
const ringSegments = 3200

// Suite is the standard ggbench workload table plus the warm-up set that
// primes every texture, font and brush the table uses.
type Suite struct {
	// Workloads is the ordered benchmark table; registry index i maps to
	// Workloads[i].
	Workloads []ggbench.Workload

	// Warmup is the priming subset for ggbench.WithWarmup.
	Warmup []ggbench.Workload

	serif  text.Face
	assets *Assets
}

// NewSuite builds the thirty-scenario suite. Rings of one geometry tier
// share the animation state with every other tier, so the harness's
// per-window Reset keeps runs reproducible regardless of suite order.
func NewSuite(cfg Config) *Suite {
	assets := cfg.Assets
	if assets == nil {
		assets = NewAssets()
	}
	sp := &spin{}

	ring := func(name string, instances int, style ringStyle, heavy bool) ggbench.Workload {
		segments := ringSegments
		if heavy {
			segments *= heavyVertexFactor
		}
		return &ringMesh{
			name:      name,
			assets:    assets,
			spin:      sp,
			instances: instances,
			segments:  segments,
			style:     style,
		}
	}

	s := &Suite{serif: cfg.Serif, assets: assets}
	s.Workloads = []ggbench.Workload{
		newTextFill("Fill screen with text 1 time", cfg, 1),
		newTextFill("Fill screen with text 3 times", cfg, 3),
		newTextFill("Fill screen with text 5 times", cfg, 5),

		ring("Geo test 3.2k quads flat color", 1, ringFlat, false),
		ring("Geo test 6.4k quads flat color", 2, ringFlat, false),
		ring("Geo test 25.6k quads flat color", 8, ringFlat, false),
		ring("Geo test 3.2k quads single texture", 1, ringTextured, false),
		ring("Geo test 6.4k quads single texture", 2, ringTextured, false),
		ring("Geo test 25.6k quads single texture", 8, ringTextured, false),

		&gridMesh{name: "Full screen mesh 10 by 10", assets: assets, cols: 10, rows: 10},
		&gridMesh{name: "Full screen mesh 100 by 100", assets: assets, cols: 100, rows: 100},
		&gridMesh{name: "Full screen mesh W / 4 by H / 4", assets: assets, cell: 4},

		ring("Geo test 3.2k quads per-quad lighting", 1, ringQuadLit, false),
		ring("Geo test 6.4k quads per-quad lighting", 2, ringQuadLit, false),
		ring("Geo test 25.6k quads per-quad lighting", 8, ringQuadLit, false),

		&cascadeFill{name: "Fill screen 10x singletexture", assets: assets, count: 10},
		&cascadeFill{name: "Fill screen 10x 3tex multitexture", assets: assets, count: 10, multi: true},
		&cascadeFill{name: "Fill screen 10x blended singletexture", assets: assets, count: 10, blend: true},
		&cascadeFill{name: "Fill screen 8x blended 3tex multitexture", assets: assets, count: 8, blend: true, multi: true},

		ring("Geo test 3.2k quads heavy fragment", 1, ringPixelLit, false),
		ring("Geo test 6.4k quads heavy fragment", 2, ringPixelLit, false),
		ring("Geo test 25.6k quads heavy fragment", 8, ringPixelLit, false),
		ring("Geo test 12.8k quads heavy fragment heavy vertex", 1, ringPixelLit, true),
		ring("Geo test 25.6k quads heavy fragment heavy vertex", 2, ringPixelLit, true),
		ring("Geo test 102.4k quads heavy fragment heavy vertex", 8, ringPixelLit, true),

		&iconGrid{name: "UI test with icon display 10 by 10", assets: assets, side: 10},
		&iconGrid{name: "UI test with icon display 100 by 100", assets: assets, side: 100},
		&iconPages{name: "UI test with image and text display 3 pages", assets: assets, face: cfg.Sans, cols: 7, rows: 5, pages: 3},
		&iconPages{name: "UI test with image and text display 5 pages", assets: assets, face: cfg.Sans, cols: 7, rows: 5, pages: 5},
		&listView{face: cfg.Sans, captions: assets.Captions},
	}

	// The priming set touches every font, texture, brush and tessellation
	// path the table uses, without running the expensive tiers.
	s.Warmup = []ggbench.Workload{
		newTextFill("warmup text", cfg, 5),
		&cascadeFill{name: "warmup singletex", assets: assets, count: 3, blend: true},
		&gridMesh{name: "warmup mesh 10", assets: assets, cols: 10, rows: 10},
		&gridMesh{name: "warmup mesh 100", assets: assets, cols: 100, rows: 100},
		&gridMesh{name: "warmup mesh cell", assets: assets, cell: 4},
		&cascadeFill{name: "warmup multitex", assets: assets, count: 5, blend: true, multi: true},
		ring("warmup pixel light", 1, ringPixelLit, false),
		ring("warmup pixel light heavy", 1, ringPixelLit, true),
		&iconGrid{name: "warmup icons", assets: assets, side: 10},
	}

	return s
}

// Indicator draws the warm-up splash: a cleared surface with a progress
// label, "Rendering" on the final priming frame.
func (s *Suite) Indicator(fr *ggbench.Frame, final bool) {
	dc := fr.DC
	dc.ClearWithColor(gg.RGB(0.2, 0.2, 0.2))
	if s.serif == nil {
		return
	}
	dc.SetFont(s.serif)
	dc.SetRGBA(0.9, 0.9, 0.95, 1)
	label := "Initializing"
	if final {
		label = "Rendering"
	}
	dc.DrawString(label, 50, 50)
}

// Assets exposes the suite's texture set, shared with the presenter.
func (s *Suite) Assets() *Assets { return s.assets }
