package workload

import (
	"math"

	"github.com/gogpu/gg/text"
)

// Config supplies the externally loaded resources the suite needs.
// Textures are procedural, but font rendering requires real faces; with
// nil faces the text workloads degrade to no-ops (gg skips text drawing
// without a font).
type Config struct {
	// Sans is used by the text-fill, caption and list-view workloads.
	Sans text.Face

	// Serif is the alternate face for layered text fills and the
	// warm-up indicator.
	Serif text.Face

	// Assets overrides the procedural texture set. Nil generates one.
	Assets *Assets
}

// spin is the shared animation state of the geometry workloads: one
// accumulated mesh rotation plus two light orbit angles. It mirrors a
// single rotation accumulator shared across all geometry scenarios, so a
// window close must reset it to keep runs reproducible.
type spin struct {
	angle  float64 // degrees
	light0 float64
	light1 float64
}

// spinBy advances the mesh rotation by rate degrees per second.
func (s *spin) spinBy(rate, dt float64) {
	s.angle = wrap360(s.angle + rate*dt)
}

// orbit advances the two light angles in opposite directions.
func (s *spin) orbit(dt float64) {
	s.light0 = wrap360(s.light0 + 50*dt)
	s.light1 = wrap360(s.light1 - 50*dt)
}

func (s *spin) reset() { *s = spin{} }

func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// stateless provides a no-op Reset for workloads without transient state.
type stateless struct{}

func (stateless) Reset() {}
