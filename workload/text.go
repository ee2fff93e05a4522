package workload

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggbench"
)

const sampleText = "This is a sample of small text for performance"

// Per-layer offsets and colors for the layered text fill.
var (
	textOffsets = [10]float64{0, 0, -5, -5, 5, 5, -8, -8, 8, 8}
	textColors  = [5]gg.RGBA{
		{R: 1.0, G: 1.0, B: 1.0, A: 1.0},
		{R: 0.5, G: 0.7, B: 0.5, A: 1.0},
		{R: 0.7, G: 0.5, B: 0.5, A: 1.0},
		{R: 0.5, G: 0.5, B: 0.7, A: 1.0},
		{R: 0.5, G: 0.6, B: 0.7, A: 1.0},
	}
)

// textFill tiles the whole surface with the sample string, layers times
// over, alternating faces and nudging each layer by a fixed offset so the
// rasterizer cannot reuse coverage between layers.
type textFill struct {
	stateless
	name   string
	faces  [5]text.Face
	layers int
}

func newTextFill(name string, cfg Config, layers int) *textFill {
	return &textFill{
		name:   name,
		faces:  [5]text.Face{cfg.Sans, cfg.Serif, cfg.Sans, cfg.Serif, cfg.Sans},
		layers: layers,
	}
}

func (w *textFill) Name() string { return w.name }

func (w *textFill) Render(fr *ggbench.Frame) error {
	dc := fr.DC
	width := float64(dc.Width())
	height := float64(dc.Height())

	for layer := range w.layers {
		face := w.faces[layer%len(w.faces)]
		if face == nil {
			continue
		}
		dc.SetFont(face)
		col := textColors[layer%len(textColors)]
		dc.SetRGBA(col.R, col.G, col.B, col.A)

		textW, textH := dc.MeasureString(sampleText)
		if textW <= 0 || textH <= 0 {
			continue
		}
		xOff := textOffsets[layer*2]
		yOff := textOffsets[layer*2+1]

		cols := int(width/textW) + 1
		rows := int(height / textH)
		for c := range cols {
			y := textH + yOff
			for range rows {
				dc.DrawString(sampleText, xOff+float64(c)*textW, y)
				y += textH
			}
		}
	}
	return nil
}

// listView renders caption rows separated by one-pixel dividers, the
// scrolling-list pattern of a UI shell.
type listView struct {
	stateless
	face     text.Face
	captions []string
}

func (w *listView) Name() string { return "UI test with list view" }

func (w *listView) Render(fr *ggbench.Frame) error {
	dc := fr.DC
	width := float64(dc.Width())
	height := float64(dc.Height())

	if w.face != nil {
		dc.SetFont(w.face)
	}

	const itemHeight = 80.0
	y := itemHeight
	for i := 0; ; i++ {
		if y-itemHeight > height {
			break
		}
		dc.SetRGB(1, 1, 1)
		dc.DrawRectangle(0, y-1, width, 1)
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.SetRGBA(0.9, 0.9, 0.9, 1)
		dc.DrawString(w.captions[i%len(w.captions)], 20, y-10)
		y += itemHeight
	}
	return nil
}
