package recognizer

import (
	"math"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/pkg/errors"
)

var (
	ErrLengthMismatch   = errors.New("template and candidate lengths differ")
	ErrEmptyStroke      = errors.New("empty stroke")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Recognizer scores a preprocessed candidate against preprocessed templates.
// The returned slice has one entry per template, in template order.
// Implementations hold no state between calls.
type Recognizer interface {
	Recognize(templates []models.Stroke, candidate models.Stroke) ([]float64, error)
}

type Algorithm string

const (
	DollarOne  Algorithm = "dollar-one"
	DollarP    Algorithm = "dollar-p"
	Protractor Algorithm = "protractor"
)

func Algorithms() []Algorithm {
	return []Algorithm{DollarOne, DollarP, Protractor}
}

// RotateToZero reports the preprocessing mode an algorithm expects. $P keeps
// the original orientation; the others want it normalised away.
func (a Algorithm) RotateToZero() bool {
	return a != DollarP
}

func New(a Algorithm) (Recognizer, error) {
	switch a {
	case DollarOne:
		return NewDollarOne(), nil
	case DollarP:
		return NewDollarP(), nil
	case Protractor:
		return NewProtractor(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", a)
	}
}

// Best returns the index and value of the highest score, or -1 when scores
// is empty. Ties go to the lowest index.
func Best(scores []float64) (int, float64) {
	best, bestScore := -1, math.Inf(-1)
	for i, s := range scores {
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, bestScore
}

// normalizeDistances maps raw distances with (max - raw + min) / max, or 0
// everywhere when max is not positive.
func normalizeDistances(raw []float64) []float64 {
	lo, hi := bounds(raw)
	scores := make([]float64, len(raw))
	if !(hi > 0) {
		return scores
	}
	for i, r := range raw {
		scores[i] = (hi - r + lo) / hi
	}
	return scores
}

// normalizeRange is plain min-max normalisation, 1 everywhere when all raw
// scores are equal.
func normalizeRange(raw []float64) []float64 {
	lo, hi := bounds(raw)
	span := hi - lo
	scores := make([]float64, len(raw))
	for i, r := range raw {
		if span > 0 {
			scores[i] = (r - lo) / span
		} else {
			scores[i] = 1
		}
	}
	return scores
}

func bounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func checkLengths(templates []models.Stroke, candidate models.Stroke) error {
	if len(candidate) == 0 {
		return ErrEmptyStroke
	}
	for i, t := range templates {
		if len(t) != len(candidate) {
			return errors.Wrapf(ErrLengthMismatch, "template %d has %d points, candidate has %d", i, len(t), len(candidate))
		}
	}
	return nil
}
