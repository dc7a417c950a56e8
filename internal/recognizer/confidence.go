package recognizer

import (
	"math"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
)

// Confidence rates how well candidate matches one template on an absolute
// scale, so it can be compared against a fixed threshold. Normalised scores
// cannot: the distance transform always gives the nearest template 1.
//
// Distances are mapped as 1 - d/(half the square's diagonal). $P's weighted
// cloud sum is first divided by its total weight. Protractor uses the cosine
// of the optimal angle.
func Confidence(a Algorithm, template, candidate models.Stroke, size float64) (float64, error) {
	if err := checkLengths([]models.Stroke{template}, candidate); err != nil {
		return 0, err
	}
	halfDiagonal := 0.5 * math.Sqrt(2*size*size)

	switch a {
	case DollarOne:
		d := NewDollarOne().DistanceAtBestAngle(candidate, template)
		return 1 - d/halfDiagonal, nil
	case DollarP:
		n := float64(len(candidate))
		d := NewDollarP().GreedyCloudMatch(candidate, template) / ((n + 1) / 2)
		return 1 - d/halfDiagonal, nil
	case Protractor:
		return math.Cos(OptimalAngle(candidate, template)), nil
	}
	return 0, ErrUnknownAlgorithm
}
