package recognizer

import (
	"math"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/ThatOtherAndrew/strokebench/internal/stroke"
)

// DollarPRecognizer treats strokes as point clouds and matches them greedily
// from several starting offsets.
type DollarPRecognizer struct {
	Epsilon float64
}

func NewDollarP() *DollarPRecognizer {
	return &DollarPRecognizer{Epsilon: 0.5}
}

func (r *DollarPRecognizer) Recognize(templates []models.Stroke, candidate models.Stroke) ([]float64, error) {
	if err := checkLengths(templates, candidate); err != nil {
		return nil, err
	}
	raw := make([]float64, len(templates))
	for i, T := range templates {
		raw[i] = r.GreedyCloudMatch(candidate, T)
	}
	return normalizeDistances(raw), nil
}

// GreedyCloudMatch returns the smallest cloud distance over every starting
// offset, matching in both directions.
func (r *DollarPRecognizer) GreedyCloudMatch(points, T models.Stroke) float64 {
	n := len(points)
	step := max(int(math.Floor(float64(n)*(1-r.Epsilon))), 1)
	minimum := math.Inf(1)
	for i := 0; i < n; i += step {
		d1 := CloudDistance(points, T, i)
		d2 := CloudDistance(T, points, i)
		minimum = math.Min(minimum, math.Min(d1, d2))
	}
	return minimum
}

// CloudDistance walks from start around points, pairing each with its
// nearest unmatched point in T. Earlier pairs weigh more.
func CloudDistance(points, T models.Stroke, start int) float64 {
	n := len(points)
	matched := make([]bool, len(T))
	sum := 0.0
	i := start
	for {
		best, index := math.Inf(1), -1
		for j := range T {
			if matched[j] {
				continue
			}
			if d := stroke.Distance(points[i], T[j]); d < best {
				best, index = d, j
			}
		}
		if index < 0 {
			break
		}
		matched[index] = true
		weight := 1 - float64((i-start+n)%n)/float64(n)
		sum += weight * best
		i = (i + 1) % n
		if i == start {
			break
		}
	}
	return sum
}
