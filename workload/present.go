package workload

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggbench"
)

// thumbSize is the edge length of the per-frame progress thumbnail.
const thumbSize = 8.0

// Presenter manages the offscreen render target the workloads draw into
// and mirrors progress onto the visible surface: a small thumbnail
// advancing across the screen per rendered frame, and a half-size blit
// with the test name each time a measurement window closes.
type Presenter struct {
	main *gg.Context
	off  *gg.Context
	face text.Face
	pos  float64
}

// NewPresenter creates a presenter drawing into off and mirroring onto
// main. face labels closed windows and may be nil.
func NewPresenter(main, off *gg.Context, face text.Face) *Presenter {
	return &Presenter{main: main, off: off, face: face}
}

// Begin clears the offscreen target for the next frame and returns it as
// the frame's drawing context.
func (p *Presenter) Begin() *ggbench.Frame {
	p.off.ClearWithColor(gg.RGB(0.1, 0.1, 0.1))
	return &ggbench.Frame{DC: p.off}
}

// End mirrors the finished frame: every frame leaves a thumbnail, a
// closed window additionally blits the offscreen result at half size and
// overlays the test name.
func (p *Presenter) End(st ggbench.Status) {
	buf := gg.ImageBufFromImage(p.off.Image())
	w := float64(p.main.Width())
	h := float64(p.main.Height())

	p.pos = math.Mod(p.pos+thumbSize, w)
	p.main.DrawImageEx(buf, gg.DrawImageOptions{
		X:         p.pos,
		Y:         h * 3 / 4,
		DstWidth:  thumbSize,
		DstHeight: thumbSize,
	})

	if !st.WindowClosed {
		return
	}
	p.main.DrawImageEx(buf, gg.DrawImageOptions{
		DstWidth:  w / 2,
		DstHeight: h / 2,
	})
	if p.face != nil {
		p.main.SetFont(p.face)
		p.main.SetRGB(1, 1, 1)
		p.main.DrawString(st.Name, 2, h-4)
	}
}
