package starfield

import (
	"image/color"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

type fakeCanvas struct {
	clears    int
	gradients [][2]color.NRGBA
	squares   []Particle
}

func (c *fakeCanvas) Clear() { c.clears++ }

func (c *fakeCanvas) VerticalGradient(top, bottom color.NRGBA) {
	c.gradients = append(c.gradients, [2]color.NRGBA{top, bottom})
}

func (c *fakeCanvas) FillSquare(x, y, size, alpha float64) {
	c.squares = append(c.squares, Particle{X: x, Y: y, Size: size, Alpha: alpha})
}

func countByLayer(ps []Particle) [LayerCount]int {
	var n [LayerCount]int
	for _, p := range ps {
		n[p.Layer]++
	}
	return n
}

func TestLayerGeneration(t *testing.T) {
	convey.Convey("Given a 1280x720 field", t, func() {
		f := New(1280, 720, 42)
		ps := f.Particles()

		convey.Convey("Layer counts follow the viewport area", func() {
			convey.So(countByLayer(ps), convey.ShouldResemble, [LayerCount]int{10, 8, 5})
		})

		convey.Convey("Every star is within its layer's ranges", func() {
			for _, p := range ps {
				spec := layers[p.Layer]
				convey.So(p.Size, convey.ShouldBeBetweenOrEqual, spec.minSize, spec.maxSize)
				convey.So(p.Speed, convey.ShouldBeBetweenOrEqual, 0.2*spec.speedMul, 1.1*spec.speedMul)
				convey.So(p.Alpha, convey.ShouldBeBetweenOrEqual, 0.6*spec.alphaBase, spec.alphaBase)
				convey.So(p.X, convey.ShouldBeBetweenOrEqual, 0.0, 1280.0)
				convey.So(p.Y, convey.ShouldBeBetweenOrEqual, 0.0, 720.0)
			}
		})

		convey.Convey("Resizing regenerates for the new area", func() {
			f.Resize(2560, 1440)
			convey.So(countByLayer(f.Particles()), convey.ShouldResemble, [LayerCount]int{41, 31, 20})
			w, h := f.Size()
			convey.So(w, convey.ShouldEqual, 2560.0)
			convey.So(h, convey.ShouldEqual, 1440.0)
		})
	})
}

func TestFrame(t *testing.T) {
	convey.Convey("Given an empty 200x100 field", t, func() {
		f := New(200, 100, 1)
		convey.So(f.Particles(), convey.ShouldBeEmpty)
		c := &fakeCanvas{}

		convey.Convey("A frame clears and paints the backdrop", func() {
			f.Frame(c)
			convey.So(c.clears, convey.ShouldEqual, 1)
			convey.So(c.gradients, convey.ShouldResemble, [][2]color.NRGBA{{GradientTop, GradientBottom}})
		})

		convey.Convey("A star is drawn where it is, then moves", func() {
			f.Spawn(Particle{Layer: 1, X: 50, Y: 10, Size: 2, Speed: 1.5, Alpha: 0.5})
			f.Frame(c)

			convey.So(c.squares, convey.ShouldResemble, []Particle{{X: 50, Y: 10, Size: 2, Alpha: 0.5}})
			p := f.Particles()[0]
			convey.So(p.Y, convey.ShouldAlmostEqual, 11.5)
			convey.So(p.X, convey.ShouldAlmostEqual, 49.98)
		})

		convey.Convey("A star passing the bottom wraps above the top", func() {
			f.Spawn(Particle{Layer: 0, X: 50, Y: 99.5, Size: 1, Speed: 1, Alpha: 1})
			f.Frame(c)

			p := f.Particles()[0]
			convey.So(p.Y, convey.ShouldEqual, -2.0)
			convey.So(p.X, convey.ShouldBeBetweenOrEqual, 0.0, 200.0)
		})

		convey.Convey("A star passing the left edge wraps past the right", func() {
			f.Spawn(Particle{Layer: 2, X: -9.99, Y: 10, Size: 1, Speed: 0.5, Alpha: 1})
			f.Frame(c)

			p := f.Particles()[0]
			convey.So(p.X, convey.ShouldEqual, 210.0)
			convey.So(p.Y, convey.ShouldAlmostEqual, 10.5)
		})

		convey.Convey("A stopped field neither draws nor moves", func() {
			f.Spawn(Particle{Layer: 0, X: 5, Y: 5, Size: 1, Speed: 1, Alpha: 1})
			f.Stop()
			f.Frame(c)

			convey.So(c.clears, convey.ShouldEqual, 0)
			convey.So(f.Particles()[0].Y, convey.ShouldEqual, 5.0)
		})
	})
}
