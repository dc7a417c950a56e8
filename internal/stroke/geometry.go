// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package stroke

import (
	"math"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
)

type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

func Distance(a, b models.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func PathLength(points models.Stroke) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

func Centroid(points models.Stroke) models.Point {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return models.Point{X: x / n, Y: y / n}
}

func BoundingBox(points models.Stroke) Box {
	b := Box{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// RotateBy rotates points about their centroid and returns a new stroke.
func RotateBy(points models.Stroke, radians float64) models.Stroke {
	if len(points) == 0 {
		return models.Stroke{}
	}
	c := Centroid(points)
	sin, cos := math.Sincos(radians)
	rotated := make(models.Stroke, len(points))
	for i, p := range points {
		dx := p.X - c.X
		dy := p.Y - c.Y
		rotated[i] = models.Point{
			X: dx*cos - dy*sin + c.X,
			Y: dx*sin + dy*cos + c.Y,
		}
	}
	return rotated
}

func Lerp(a, b models.Point, t float64) models.Point {
	return models.Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}
