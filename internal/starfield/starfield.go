// Package starfield draws the drifting three-layer star background.
// It knows nothing about the game and runs for as long as it is fed frames.
package starfield

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
)

// Canvas is the drawing surface the field paints on each frame.
type Canvas interface {
	Clear()
	VerticalGradient(top, bottom color.NRGBA)
	FillSquare(x, y, size, alpha float64)
}

// Backdrop gradient, top to bottom.
var (
	GradientTop    = color.NRGBA{R: 2, G: 6, B: 20, A: 153}  // alpha 0.6
	GradientBottom = color.NRGBA{R: 0, G: 0, B: 10, A: 242} // alpha 0.95
)

const (
	driftPerLayer = 0.02 // px/frame leftward drift added per layer index
	wrapTop       = -2.0
	wrapMargin    = 10.0
)

// layerSpec sets density and look of one layer. Denser layers get
// smaller, brighter, slower stars; the sparse one gets big, faint, fast stars.
type layerSpec struct {
	areaPerStar      float64
	speedMul         float64
	minSize, maxSize float64
	alphaBase        float64
}

var layers = [...]layerSpec{
	{areaPerStar: 90000, speedMul: 0.5, minSize: 0.6, maxSize: 1.6, alphaBase: 0.9},
	{areaPerStar: 120000, speedMul: 1.1, minSize: 0.9, maxSize: 2.2, alphaBase: 0.7},
	{areaPerStar: 180000, speedMul: 2.4, minSize: 1.6, maxSize: 3.2, alphaBase: 0.45},
}

// LayerCount is the number of parallax layers.
const LayerCount = len(layers)

// Position is a star's top-left corner in pixels.
type Position struct {
	X, Y float64
}

// Star holds the fixed look and motion of one star.
type Star struct {
	Size  float64
	Speed float64 // px per frame, downward
	Alpha float64
}

// Layer tags a star with its parallax layer.
type Layer struct {
	Index int
}

// Particle is a flat copy of one star, used to seed and inspect the field.
type Particle struct {
	Layer int
	X, Y  float64
	Size  float64
	Speed float64
	Alpha float64
}

// Field is the starfield. Stars live as entities in an ECS world that is
// rebuilt on every Resize.
type Field struct {
	world  *ecs.World
	stars  *ecs.Map3[Position, Star, Layer]
	filter *ecs.Filter3[Position, Star, Layer]

	w, h    float64
	rng     *rand.Rand
	stopped bool
}

// New builds a field for a w×h viewport.
func New(w, h int, seed uint64) *Field {
	f := &Field{rng: rand.New(rand.NewPCG(seed, seed>>16|3))}
	f.Resize(w, h)
	return f
}

// Resize throws away every star and regenerates the layers for the
// new viewport, with counts proportional to its area.
func (f *Field) Resize(w, h int) {
	f.w, f.h = float64(w), float64(h)
	f.world = ecs.NewWorld(256)
	f.stars = ecs.NewMap3[Position, Star, Layer](f.world)
	f.filter = ecs.NewFilter3[Position, Star, Layer](f.world)

	area := f.w * f.h
	for i, spec := range layers {
		n := int(math.Round(area / spec.areaPerStar))
		for range n {
			f.Spawn(Particle{
				Layer: i,
				X:     f.rng.Float64() * f.w,
				Y:     f.rng.Float64() * f.h,
				Size:  spec.minSize + f.rng.Float64()*(spec.maxSize-spec.minSize),
				Speed: (0.2 + f.rng.Float64()*0.9) * spec.speedMul,
				Alpha: spec.alphaBase * (0.6 + f.rng.Float64()*0.4),
			})
		}
	}
}

// Spawn adds one star.
func (f *Field) Spawn(p Particle) {
	f.stars.NewEntity(
		&Position{X: p.X, Y: p.Y},
		&Star{Size: p.Size, Speed: p.Speed, Alpha: p.Alpha},
		&Layer{Index: p.Layer},
	)
}

// Size returns the viewport the field was built for.
func (f *Field) Size() (float64, float64) { return f.w, f.h }

// Stop freezes the field; later frames draw and move nothing.
func (f *Field) Stop() { f.stopped = true }

// Frame paints one frame onto c and advances every star: down by its
// speed, left by its layer drift, wrapping at the bottom and left edges.
func (f *Field) Frame(c Canvas) {
	if f.stopped {
		return
	}
	c.Clear()
	c.VerticalGradient(GradientTop, GradientBottom)

	query := f.filter.Query()
	for query.Next() {
		pos, star, layer := query.Get()
		c.FillSquare(pos.X, pos.Y, star.Size, star.Alpha)

		pos.Y += star.Speed
		pos.X -= float64(layer.Index) * driftPerLayer
		if pos.Y > f.h {
			pos.Y = wrapTop
			pos.X = f.rng.Float64() * f.w
		}
		if pos.X < -wrapMargin {
			pos.X = f.w + wrapMargin
		}
	}
}

// Particles returns a snapshot of every star.
func (f *Field) Particles() []Particle {
	var out []Particle
	query := f.filter.Query()
	for query.Next() {
		pos, star, layer := query.Get()
		out = append(out, Particle{
			Layer: layer.Index,
			X:     pos.X, Y: pos.Y,
			Size: star.Size, Speed: star.Speed, Alpha: star.Alpha,
		})
	}
	return out
}
