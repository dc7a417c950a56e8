package stroke

import (
	"math"
	"testing"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5., Distance(models.Point{X: 0, Y: 0}, models.Point{X: 3, Y: 4}))
	assert.Equal(t, 0., Distance(models.Point{X: 2, Y: 2}, models.Point{X: 2, Y: 2}))
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0., PathLength(nil))
	assert.Equal(t, 0., PathLength(models.Stroke{{X: 1, Y: 1}}))
	assert.InDelta(t, 20, PathLength(models.Stroke{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}), 1e-12)
}

func TestCentroid(t *testing.T) {
	c := Centroid(models.Stroke{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}})
	assert.Equal(t, models.Point{X: 2, Y: 1}, c)
}

func TestBoundingBox(t *testing.T) {
	b := BoundingBox(models.Stroke{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 1, Y: 1}})
	assert.Equal(t, Box{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}, b)
	assert.Equal(t, 5., b.Width())
	assert.Equal(t, 5., b.Height())
}

func TestRotateByRoundTrip(t *testing.T) {
	original := zigzag()
	for _, theta := range []float64{0.1, -0.7, math.Pi / 4, math.Pi, 3} {
		back := RotateBy(RotateBy(original, theta), -theta)
		for i := range original {
			assert.InDelta(t, original[i].X, back[i].X, tolerance)
			assert.InDelta(t, original[i].Y, back[i].Y, tolerance)
		}
	}
}

func TestRotateByQuarterTurn(t *testing.T) {
	out := RotateBy(models.Stroke{{X: 1, Y: 0}, {X: -1, Y: 0}}, math.Pi/2)
	assert.InDelta(t, 0, out[0].X, 1e-12)
	assert.InDelta(t, 1, out[0].Y, 1e-12)
	assert.InDelta(t, 0, out[1].X, 1e-12)
	assert.InDelta(t, -1, out[1].Y, 1e-12)
}

func TestRotateByKeepsInput(t *testing.T) {
	in := models.Stroke{{X: 1, Y: 0}, {X: -1, Y: 0}}
	RotateBy(in, 1)
	assert.Equal(t, models.Stroke{{X: 1, Y: 0}, {X: -1, Y: 0}}, in)
	assert.Empty(t, RotateBy(nil, 1))
}

func TestLerp(t *testing.T) {
	p := Lerp(models.Point{X: 0, Y: 0}, models.Point{X: 10, Y: -10}, 0.25)
	assert.Equal(t, models.Point{X: 2.5, Y: -2.5}, p)
}
