package workload

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggbench"
)

// cascadeFill draws count full-screen textured quads, each inset a few
// pixels from the previous so every quad stays visible and the fill rate
// cost is count times the surface area.
type cascadeFill struct {
	stateless
	name   string
	assets *Assets
	count  int
	blend  bool
	multi  bool
}

func (w *cascadeFill) Name() string { return w.name }

func (w *cascadeFill) Render(fr *ggbench.Frame) error {
	dc := fr.DC
	width := float64(dc.Width())
	height := float64(dc.Height())

	step := 5.0
	if w.multi {
		step = 10.0
	}

	for i := range w.count {
		start := step * float64(i)
		qw := width - start
		qh := height - start
		if qw <= 0 || qh <= 0 {
			break
		}
		if w.multi {
			if err := w.multitexQuad(dc, start, start, qw, qh); err != nil {
				return err
			}
			continue
		}
		opts := gg.DrawImageOptions{
			X:         start,
			Y:         start,
			DstWidth:  qw,
			DstHeight: qh,
		}
		if w.blend {
			opts.Opacity = 0.6
		}
		dc.DrawImageEx(w.assets.Opaque, opts)
	}
	return nil
}

// multitexQuad fills one quad with the three-texture combine brush:
// checker modulated by the ring texture, faded by the transparent
// texture's alpha. This is the fragment-stage analog of a three-sampler
// shader.
func (w *cascadeFill) multitexQuad(dc *gg.Context, x, y, qw, qh float64) error {
	brush := multitexBrush(w.assets, x, y, qw, qh, w.blend)
	dc.SetFillBrush(brush)
	dc.DrawRectangle(x, y, qw, qh)
	return dc.Fill()
}

func multitexBrush(a *Assets, x, y, qw, qh float64, blend bool) gg.CustomBrush {
	alpha := 1.0
	if blend {
		alpha = 0.6
	}
	return gg.NewCustomBrush(func(px, py float64) gg.RGBA {
		u := (px - x) / qw
		v := (py - y) / qh
		c0 := texSample(a.Checker, u, v)
		c1 := texSample(a.Ring, u*4, v*4)
		c2 := texSample(a.Transparent, u, v)
		return gg.RGBA{
			R: c0.R * c1.R,
			G: c0.G * c1.G,
			B: c0.B * c1.B,
			A: c2.A * alpha,
		}
	}).WithName("multitex")
}

// texSample reads a texture at normalized coordinates with wrapping.
func texSample(img *gg.ImageBuf, u, v float64) gg.RGBA {
	w, h := img.Bounds()
	x := int(u*float64(w)) % w
	y := int(v*float64(h)) % h
	if x < 0 {
		x += w
	}
	if y < 0 {
		y += h
	}
	r, g, b, a := img.GetRGBA(x, y)
	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}
