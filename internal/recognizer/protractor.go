package recognizer

import (
	"math"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
)

// The angle is floored here so an exact match still scores a finite 1/angle.
const minAngle = 1e-6

// ProtractorRecognizer scores strokes by the inverse of the closed-form
// optimal angular distance between them.
type ProtractorRecognizer struct{}

func NewProtractor() *ProtractorRecognizer {
	return &ProtractorRecognizer{}
}

func (r *ProtractorRecognizer) Recognize(templates []models.Stroke, candidate models.Stroke) ([]float64, error) {
	if err := checkLengths(templates, candidate); err != nil {
		return nil, err
	}
	raw := make([]float64, len(templates))
	for i, T := range templates {
		raw[i] = 1 / OptimalAngle(candidate, T)
	}
	return normalizeRange(raw), nil
}

// OptimalAngle returns the angle between two index-aligned strokes viewed as
// vectors, floored at minAngle. Zero vectors count as orthogonal.
func OptimalAngle(a, b models.Stroke) float64 {
	var sumA, sumB, sumC float64
	for i := range a {
		sumA += a[i].X*b[i].X + a[i].Y*b[i].Y
		sumB += a[i].X*a[i].X + a[i].Y*a[i].Y
		sumC += b[i].X*b[i].X + b[i].Y*b[i].Y
	}
	denominator := math.Sqrt(sumB) * math.Sqrt(sumC)
	if denominator == 0 {
		return math.Pi / 2
	}
	cosine := math.Max(-1, math.Min(1, sumA/denominator))
	return math.Max(math.Acos(cosine), minAngle)
}
