package workload

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

const (
	texSize   = 256
	iconBase  = 128
	iconSize  = 64
	iconCount = 100
)

// Assets holds the procedural textures shared by the suite. All of them
// are generated once at construction so that texture upload cost is paid
// during warm-up, not inside a measured window.
type Assets struct {
	// Opaque is a smooth two-axis gradient, the workhorse fill texture.
	Opaque *gg.ImageBuf

	// Ring is a concentric-band texture used by the textured geometry
	// workloads.
	Ring *gg.ImageBuf

	// Transparent has a radial alpha falloff for blended fills.
	Transparent *gg.ImageBuf

	// Checker is an 8x8 checkerboard for the multi-texture combine.
	Checker *gg.ImageBuf

	// Icons is a 100-entry list of small hue-rotated textures, with a
	// caption per icon.
	Icons    []*gg.ImageBuf
	Captions []string
}

// NewAssets generates the full texture set.
func NewAssets() *Assets {
	a := &Assets{
		Opaque:      opaqueTexture(),
		Ring:        ringTexture(),
		Transparent: transparentTexture(),
		Checker:     checkerTexture(),
	}
	a.Icons, a.Captions = iconList()
	return a
}

func opaqueTexture() *gg.ImageBuf {
	img, _ := gg.NewImageBuf(texSize, texSize, gg.FormatRGBA8)
	for y := range texSize {
		for x := range texSize {
			r := uint8(x * 255 / texSize)
			g := uint8(y * 255 / texSize)
			b := uint8((x + y) * 128 / texSize)
			_ = img.SetRGBA(x, y, r, g, b, 255)
		}
	}
	return img
}

func ringTexture() *gg.ImageBuf {
	img, _ := gg.NewImageBuf(texSize, texSize, gg.FormatRGBA8)
	c := float64(texSize) / 2
	for y := range texSize {
		for x := range texSize {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			band := 0.5 + 0.5*math.Sin(d*0.25)
			v := uint8(55 + band*200)
			_ = img.SetRGBA(x, y, v, uint8(float64(v)*0.8), 60, 255)
		}
	}
	return img
}

func transparentTexture() *gg.ImageBuf {
	img, _ := gg.NewImageBuf(texSize, texSize, gg.FormatRGBA8)
	c := float64(texSize) / 2
	for y := range texSize {
		for x := range texSize {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			if d > 1 {
				d = 1
			}
			a := uint8((1 - d) * 255)
			_ = img.SetRGBA(x, y, 120, 160, 255, a)
		}
	}
	return img
}

func checkerTexture() *gg.ImageBuf {
	img, _ := gg.NewImageBuf(texSize, texSize, gg.FormatRGBA8)
	const cell = texSize / 8
	for y := range texSize {
		for x := range texSize {
			if (x/cell+y/cell)%2 == 0 {
				_ = img.SetRGBA(x, y, 235, 235, 235, 255)
			} else {
				_ = img.SetRGBA(x, y, 40, 40, 40, 255)
			}
		}
	}
	return img
}

// iconList derives the 100-entry icon set: a hue-rotated blob rendered at
// iconBase resolution and downscaled with Catmull-Rom resampling.
func iconList() ([]*gg.ImageBuf, []string) {
	icons := make([]*gg.ImageBuf, iconCount)
	captions := make([]string, iconCount)
	for i := range iconCount {
		hue := float64(i) * 360 / iconCount
		icons[i] = gg.ImageBufFromImage(scaleIcon(renderIconBase(hue)))
		captions[i] = fmt.Sprintf("Item %02d", i)
	}
	return icons, captions
}

// renderIconBase draws one icon at full resolution: a tinted disc with an
// off-center highlight.
func renderIconBase(hue float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, iconBase, iconBase))
	base := gg.HSL(hue, 0.7, 0.55)
	hi := gg.HSL(hue, 0.7, 0.8)
	c := float64(iconBase) / 2
	r := c * 0.9
	for y := range iconBase {
		for x := range iconBase {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			if d > r {
				continue
			}
			hd := math.Hypot(float64(x)-c*0.7, float64(y)-c*0.7) / r
			col := hi.Lerp(base, clamp01(hd))
			o := img.PixOffset(x, y)
			img.Pix[o+0] = uint8(col.R * 255)
			img.Pix[o+1] = uint8(col.G * 255)
			img.Pix[o+2] = uint8(col.B * 255)
			img.Pix[o+3] = 255
		}
	}
	return img
}

func scaleIcon(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
