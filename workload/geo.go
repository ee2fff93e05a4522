package workload

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggbench"
)

// ringStyle selects the shading applied to the procedural ring geometry.
type ringStyle int

const (
	// ringFlat fills every quad with one constant color.
	ringFlat ringStyle = iota

	// ringTextured fills the quads through an image pattern.
	ringTextured

	// ringQuadLit computes one diffuse term per quad from the orbiting
	// lights, the per-vertex-lighting analog.
	ringQuadLit

	// ringPixelLit evaluates diffuse plus specular per pixel through a
	// custom brush, the heavy-fragment analog.
	ringPixelLit
)

// heavyVertexFactor multiplies the segment count for the heavy-vertex
// variants.
const heavyVertexFactor = 4

// ringMesh renders one or more animated rings, each tessellated into
// segments quads. The per-frame cost scales with instances * segments
// (geometry) and with the shading style (fill).
type ringMesh struct {
	name      string
	assets    *Assets
	spin      *spin
	instances int
	segments  int
	style     ringStyle
}

func (w *ringMesh) Name() string { return w.name }

// Reset clears the shared rotation and light state so the next window
// starts from the same pose.
func (w *ringMesh) Reset() { w.spin.reset() }

func (w *ringMesh) Render(fr *ggbench.Frame) error {
	dc := fr.DC

	rate := 50.0
	if w.style == ringPixelLit {
		rate = 30.0
	}
	w.spin.spinBy(rate, fr.DT)
	if w.style == ringQuadLit || w.style == ringPixelLit {
		w.spin.orbit(fr.DT)
	}

	for _, p := range ringLayout(w.instances, dc.Width(), dc.Height()) {
		if err := w.drawRing(dc, p.cx, p.cy, p.r); err != nil {
			return err
		}
	}
	return nil
}

// ringPlacement is one instance's center and outer radius.
type ringPlacement struct {
	cx, cy, r float64
}

// ringLayout mirrors the original instance arrangements: one centered
// ring, two side by side, or a 4-by-2 grid.
func ringLayout(instances, width, height int) []ringPlacement {
	w := float64(width)
	h := float64(height)
	switch instances {
	case 1:
		return []ringPlacement{{w / 2, h / 2, math.Min(w, h) * 0.35}}
	case 2:
		r := math.Min(w, h) * 0.25
		return []ringPlacement{
			{w * 0.3, h / 2, r},
			{w * 0.7, h / 2, r},
		}
	default:
		out := make([]ringPlacement, 0, instances)
		cols := 4
		rows := (instances + cols - 1) / cols
		r := math.Min(w/float64(cols), h/float64(rows)) * 0.4
		for i := range instances {
			x := i % cols
			y := i / cols
			out = append(out, ringPlacement{
				cx: w * (float64(x) + 0.5) / float64(cols),
				cy: h * (float64(y) + 0.5) / float64(rows),
				r:  r,
			})
		}
		return out
	}
}

func (w *ringMesh) drawRing(dc *gg.Context, cx, cy, outer float64) error {
	inner := outer * 0.55
	rot := radians(w.spin.angle)

	switch w.style {
	case ringFlat:
		dc.SetRGB(0.1, 0.7, 0.1)
	case ringTextured:
		pattern := dc.CreateImagePattern(w.assets.Ring, 0, 0, texSize, texSize)
		dc.SetFillPattern(pattern)
	case ringPixelLit:
		dc.SetFillBrush(w.pixelLightBrush(cx, cy, outer))
	}

	n := w.segments
	step := 2 * math.Pi / float64(n)
	for s := range n {
		a0 := rot + float64(s)*step
		a1 := a0 + step

		if w.style == ringQuadLit {
			mid := a0 + step/2
			w.setQuadLitColor(dc, mid)
		}

		dc.MoveTo(cx+inner*math.Cos(a0), cy+inner*math.Sin(a0))
		dc.LineTo(cx+outer*math.Cos(a0), cy+outer*math.Sin(a0))
		dc.LineTo(cx+outer*math.Cos(a1), cy+outer*math.Sin(a1))
		dc.LineTo(cx+inner*math.Cos(a1), cy+inner*math.Sin(a1))
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// setQuadLitColor shades one quad from the two orbiting lights using its
// outward normal angle, flat-shaded per quad.
func (w *ringMesh) setQuadLitColor(dc *gg.Context, normalAngle float64) {
	d0 := math.Max(0, math.Cos(normalAngle-radians(w.spin.light0)))
	d1 := math.Max(0, math.Cos(normalAngle-radians(w.spin.light1)))
	v := 0.15 + 0.85*math.Min(1, d0*0.9+d1*0.5)
	dc.SetRGB(0.9*v, 0.7*v, 0.7*v)
}

// pixelLightBrush evaluates two-light diffuse and specular terms at every
// covered pixel. The radial surface normal comes from the pixel's offset
// from the ring center; the specular exponent keeps the per-pixel cost
// dominated by math, as a heavy fragment stage would be.
func (w *ringMesh) pixelLightBrush(cx, cy, outer float64) gg.CustomBrush {
	l0 := radians(w.spin.light0)
	l1 := radians(w.spin.light1)
	lx0, ly0 := cx+math.Cos(l0)*outer*2, cy+math.Sin(l0)*outer*2
	lx1, ly1 := cx+math.Cos(l1)*outer*2, cy+math.Sin(l1)*outer*2

	light := func(x, y, nx, ny, lx, ly float64) (diff, spec float64) {
		dx, dy := lx-x, ly-y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			return 0, 0
		}
		d := math.Max(0, (nx*dx+ny*dy)/dist)
		return d, math.Pow(d, 25)
	}

	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		nx, ny := x-cx, y-cy
		n := math.Hypot(nx, ny)
		if n == 0 {
			return gg.RGBA{A: 1}
		}
		nx, ny = nx/n, ny/n

		d0, s0 := light(x, y, nx, ny, lx0, ly0)
		d1, s1 := light(x, y, nx, ny, lx1, ly1)

		diff := math.Min(1, d0*1.0+d1*0.7)
		spec := math.Min(1, s0*0.5+s1*0.7)
		return gg.RGBA{
			R: clamp01(0.9*diff + 0.9*spec),
			G: clamp01(0.7*diff + 0.6*spec),
			B: clamp01(0.7*diff + 0.6*spec),
			A: 1,
		}
	}).WithName("pixel_light")
}
