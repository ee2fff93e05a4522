package workload

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggbench"
)

// gridMesh tiles the surface with a cols-by-rows grid of textured quads,
// all sampling the same texture. cell > 0 derives the grid from the
// surface size instead (cell-pixel quads), the full-screen W/4-by-H/4
// variant.
type gridMesh struct {
	stateless
	name   string
	assets *Assets
	cols   int
	rows   int
	cell   int
}

func (w *gridMesh) Name() string { return w.name }

func (w *gridMesh) Render(fr *ggbench.Frame) error {
	dc := fr.DC
	width := float64(dc.Width())
	height := float64(dc.Height())

	cols, rows := w.cols, w.rows
	if w.cell > 0 {
		cols = max(dc.Width()/w.cell, 1)
		rows = max(dc.Height()/w.cell, 1)
	}
	qw := width / float64(cols)
	qh := height / float64(rows)

	for y := range rows {
		for x := range cols {
			dc.DrawImageEx(w.assets.Opaque, gg.DrawImageOptions{
				X:         float64(x) * qw,
				Y:         float64(y) * qh,
				DstWidth:  qw,
				DstHeight: qh,
			})
		}
	}
	return nil
}

// iconGrid blits side-by-side 50px icons from the 100-entry list, the
// launcher-screen pattern. side 100 deliberately overflows the surface;
// the offscreen clip absorbs the excess, matching the original workload's
// raw draw-call pressure.
type iconGrid struct {
	stateless
	name   string
	assets *Assets
	side   int
}

func (w *iconGrid) Name() string { return w.name }

func (w *iconGrid) Render(fr *ggbench.Frame) error {
	dc := fr.DC
	const size = 50.0
	for y := range w.side {
		for x := range w.side {
			icon := w.assets.Icons[(x+y*w.side)%len(w.assets.Icons)]
			dc.DrawImageEx(icon, gg.DrawImageOptions{
				X:         float64(x+1) * size,
				Y:         float64(y+1) * size,
				DstWidth:  size,
				DstHeight: size,
			})
		}
	}
	return nil
}

// iconPages renders pages of captioned icons side by side, the
// home-screen swipe pattern: the visible page plus pages hanging off both
// edges of the surface.
type iconPages struct {
	stateless
	name   string
	assets *Assets
	face   text.Face
	cols   int
	rows   int
	pages  int
}

func (w *iconPages) Name() string { return w.name }

func (w *iconPages) Render(fr *ggbench.Frame) error {
	dc := fr.DC
	width := float64(dc.Width())

	if w.face != nil {
		dc.SetFont(w.face)
	}

	// Pages at offsets 0, -1, +1, (-2, +2) times the surface width.
	offsets := []float64{0, -1, 1, -2, 2}
	if w.pages < len(offsets) {
		offsets = offsets[:w.pages]
	}
	for _, off := range offsets {
		w.page(dc, off*width)
	}
	return nil
}

func (w *iconPages) page(dc *gg.Context, xStart float64) {
	const (
		margin = 100.0
		xPad   = 50.0
		yPad   = 20.0
		size   = 100.0
	)
	dc.SetRGB(1, 1, 1)
	_, textH := dc.MeasureString(w.assets.Captions[0])

	for y := range w.rows {
		yPos := margin + float64(y)*(size+yPad)
		for x := range w.cols {
			xPos := xStart + margin + float64(x)*(size+xPad)
			i := (y*w.cols + x) % len(w.assets.Icons)
			dc.DrawImageEx(w.assets.Icons[i], gg.DrawImageOptions{
				X:         xPos,
				Y:         yPos,
				DstWidth:  size,
				DstHeight: size,
			})
			dc.DrawString(w.assets.Captions[i], xPos, yPos+size+yPad/2+textH)
		}
	}
}
