// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package recognizer

import (
	"math"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/ThatOtherAndrew/strokebench/internal/stroke"
)

var goldenRatio = 0.5 * (-1 + math.Sqrt(5))

// DollarOneRecognizer matches index-aligned strokes at the rotation that
// minimises their mean point distance.
type DollarOneRecognizer struct {
	AngleRange     float64
	AnglePrecision float64
}

func NewDollarOne() *DollarOneRecognizer {
	return &DollarOneRecognizer{
		AngleRange:     45 * math.Pi / 180,
		AnglePrecision: 2 * math.Pi / 180,
	}
}

func (r *DollarOneRecognizer) Recognize(templates []models.Stroke, candidate models.Stroke) ([]float64, error) {
	if err := checkLengths(templates, candidate); err != nil {
		return nil, err
	}
	raw := make([]float64, len(templates))
	for i, T := range templates {
		raw[i] = r.DistanceAtBestAngle(candidate, T)
	}
	return normalizeDistances(raw), nil
}

// DistanceAtBestAngle runs a golden section search over [-AngleRange,
// AngleRange] and returns the smaller of the two final evaluations.
func (r *DollarOneRecognizer) DistanceAtBestAngle(points, T models.Stroke) float64 {
	a, b := -r.AngleRange, r.AngleRange
	x1 := goldenRatio*a + (1-goldenRatio)*b
	f1 := distanceAtAngle(points, T, x1)
	x2 := (1-goldenRatio)*a + goldenRatio*b
	f2 := distanceAtAngle(points, T, x2)
	for math.Abs(b-a) > r.AnglePrecision {
		if f1 < f2 {
			b = x2
			x2 = x1
			f2 = f1
			x1 = goldenRatio*a + (1-goldenRatio)*b
			f1 = distanceAtAngle(points, T, x1)
		} else {
			a = x1
			x1 = x2
			f1 = f2
			x2 = (1-goldenRatio)*a + goldenRatio*b
			f2 = distanceAtAngle(points, T, x2)
		}
	}
	return math.Min(f1, f2)
}

func distanceAtAngle(points, T models.Stroke, angle float64) float64 {
	return PathDistance(stroke.RotateBy(points, angle), T)
}

// PathDistance is the mean distance between index-aligned points.
func PathDistance(A, B models.Stroke) float64 {
	d := 0.0
	for i := range A {
		d += stroke.Distance(A[i], B[i])
	}
	return d / float64(len(A))
}
