// Package debugview draws a top-down (XZ) picture of a culled scene: object
// footprints colored by cull state and the camera frustum outline.
package debugview

import (
	"errors"
	"image"
	"image/color"
	gomath "math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/Faultbox/midgard-math/internal/culling"
	"github.com/Faultbox/midgard-math/internal/scene"
	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// ErrBadSize is returned for a non-positive image size or supersample factor.
var ErrBadSize = errors.New("debugview: bad image size")

var (
	Background  = color.RGBA{24, 24, 28, 255}
	VisibleFill = color.RGBA{80, 200, 120, 255}
	CulledFill  = color.RGBA{90, 90, 100, 255}
	ShadowFill  = color.RGBA{230, 150, 60, 255}
	Outline     = color.RGBA{16, 16, 16, 255}
	FrustumLine = color.RGBA{250, 220, 70, 255}
	LabelColor  = color.RGBA{235, 235, 235, 255}
)

// Options controls Render.
type Options struct {
	Size        int     // Output width and height in pixels
	Supersample int     // Draw at Size*Supersample, then scale down
	Aspect      float64 // Viewport aspect used for the frustum outline
	Labels      bool
}

// view maps world XZ onto canvas pixels. -Z points up the image.
type view struct {
	minX, minZ float64
	scale      float64
}

func (v view) pt(p math.Vec3) (float32, float32) {
	return float32((p.X - v.minX) * v.scale), float32((p.Z - v.minZ) * v.scale)
}

func newView(extent geom.AABB, pixels int) view {
	size := extent.Size()
	span := gomath.Max(size.X, size.Z)
	if span <= 0 {
		span = 1
	}
	// Pad by 5% on each side and center the shorter axis.
	pad := span * 0.05
	span += 2 * pad
	c := extent.Center()
	return view{
		minX:  c.X - span/2,
		minZ:  c.Z - span/2,
		scale: float64(pixels) / span,
	}
}

// Render draws s with the classification in res.
func Render(s *scene.Scene, res *culling.Result, opts Options) (*image.RGBA, error) {
	if opts.Size <= 0 || opts.Supersample <= 0 {
		return nil, ErrBadSize
	}
	if opts.Aspect <= 0 {
		opts.Aspect = 1
	}

	extent, err := s.Bounds()
	if err != nil {
		return nil, err
	}
	extent = extent.Extend(s.Camera.Position)

	big := opts.Size * opts.Supersample
	canvas := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	v := newView(extent, big)
	z := vector.NewRasterizer(big, big)
	stroke := float32(opts.Supersample)

	for _, o := range res.Objects {
		z.Reset(big, big)
		x0, y0 := v.pt(o.Bounds.Min)
		x1, y1 := v.pt(o.Bounds.Max)
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		z.Draw(canvas, canvas.Bounds(), image.NewUniform(fillFor(o.Status)), image.Point{})

		z.Reset(big, big)
		rect(z, x0, y0, x1, y1, stroke)
		z.Draw(canvas, canvas.Bounds(), image.NewUniform(Outline), image.Point{})
	}

	corners, err := s.Camera.FrustumCorners(opts.Aspect)
	if err != nil {
		return nil, err
	}
	z.Reset(big, big)
	for _, e := range frustumEdges(corners) {
		ax, ay := v.pt(e[0])
		bx, by := v.pt(e[1])
		line(z, ax, ay, bx, by, stroke)
	}
	cx, cy := v.pt(s.Camera.Position)
	square(z, cx, cy, 3*stroke)
	z.Draw(canvas, canvas.Bounds(), image.NewUniform(FrustumLine), image.Point{})

	out := canvas
	if opts.Supersample > 1 {
		out = image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
		draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	}

	if opts.Labels {
		small := newView(extent, opts.Size)
		for _, o := range res.Objects {
			x, y := small.pt(o.Bounds.Center())
			label(out, o.Name, x, y)
		}
	}
	return out, nil
}

func fillFor(s culling.Status) color.Color {
	switch s {
	case culling.Visible:
		return VisibleFill
	case culling.ShadowOnly:
		return ShadowFill
	}
	return CulledFill
}

// frustumEdges returns the twelve edges of a box whose corners are indexed
// like geom.AABB.Corners.
func frustumEdges(c [8]math.Vec3) [][2]math.Vec3 {
	edges := make([][2]math.Vec3, 0, 12)
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				edges = append(edges, [2]math.Vec3{c[i], c[i|bit]})
			}
		}
	}
	return edges
}

// line adds a stroke of width w from (ax, ay) to (bx, by) as a quad.
func line(z *vector.Rasterizer, ax, ay, bx, by, w float32) {
	dx, dy := bx-ax, by-ay
	n := float32(gomath.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		return
	}
	// Perpendicular, half a stroke long.
	px, py := -dy/n*w/2, dx/n*w/2
	z.MoveTo(ax+px, ay+py)
	z.LineTo(bx+px, by+py)
	z.LineTo(bx-px, by-py)
	z.LineTo(ax-px, ay-py)
	z.ClosePath()
}

func rect(z *vector.Rasterizer, x0, y0, x1, y1, w float32) {
	line(z, x0, y0, x1, y0, w)
	line(z, x1, y0, x1, y1, w)
	line(z, x1, y1, x0, y1, w)
	line(z, x0, y1, x0, y0, w)
}

func square(z *vector.Rasterizer, x, y, half float32) {
	z.MoveTo(x-half, y-half)
	z.LineTo(x+half, y-half)
	z.LineTo(x+half, y+half)
	z.LineTo(x-half, y+half)
	z.ClosePath()
}

// label draws text centered on (x, y).
func label(dst draw.Image, text string, x, y float32) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(LabelColor),
		Face: face,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(x)) - width/2,
		Y: fixed.I(int(y) + face.Ascent/2),
	}
	d.DrawString(text)
}
