package recognizer

import (
	"math"
	"testing"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/ThatOtherAndrew/strokebench/internal/stroke"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawShapes() map[string]models.Stroke {
	circle := make(models.Stroke, 0, 60)
	for i := 0; i < 60; i++ {
		a := 2 * math.Pi * float64(i) / 59
		circle = append(circle, models.Point{X: 50 * math.Cos(a), Y: 50 * math.Sin(a)})
	}
	return map[string]models.Stroke{
		"circle":   circle,
		"triangle": {{X: 0, Y: 0}, {X: 50, Y: 90}, {X: 100, Y: 0}, {X: 0, Y: 0}},
		"check":    {{X: 0, Y: 40}, {X: 20, Y: 0}, {X: 80, Y: 100}},
		"zigzag":   {{X: 0, Y: 0}, {X: 20, Y: 40}, {X: 40, Y: 0}, {X: 60, Y: 40}, {X: 80, Y: 0}},
		"caret":    {{X: 0, Y: 0}, {X: 40, Y: 80}, {X: 80, Y: 0}},
	}
}

var shapeOrder = []string{"circle", "triangle", "check", "zigzag", "caret"}

func templates(t *testing.T, rotate bool) []models.Stroke {
	t.Helper()
	shapes := rawShapes()
	out := make([]models.Stroke, len(shapeOrder))
	for i, name := range shapeOrder {
		p, err := stroke.Preprocess(shapes[name], rotate)
		require.NoError(t, err)
		out[i] = p
	}
	return out
}

func TestSelfMatchScoresBest(t *testing.T) {
	for _, algorithm := range Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			r, err := New(algorithm)
			require.NoError(t, err)

			tmpls := templates(t, algorithm.RotateToZero())
			for k, candidate := range tmpls {
				scores, err := r.Recognize(tmpls, candidate)
				require.NoError(t, err)
				require.Len(t, scores, len(tmpls))

				best, score := Best(scores)
				assert.Equal(t, k, best, "template %s", shapeOrder[k])
				assert.InDelta(t, 1, score, 1e-9)
			}
		})
	}
}

func TestScoreVectorLength(t *testing.T) {
	for _, algorithm := range Algorithms() {
		r, err := New(algorithm)
		require.NoError(t, err)

		tmpls := templates(t, algorithm.RotateToZero())
		for n := 0; n <= len(tmpls); n++ {
			scores, err := r.Recognize(tmpls[:n], tmpls[0])
			require.NoError(t, err)
			assert.Len(t, scores, n)
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	tmpls := templates(t, true)
	short := tmpls[1][:10]
	for _, algorithm := range Algorithms() {
		r, err := New(algorithm)
		require.NoError(t, err)

		_, err = r.Recognize(tmpls, short)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLengthMismatch))

		_, err = r.Recognize(tmpls, nil)
		assert.True(t, errors.Is(err, ErrEmptyStroke))
	}
}

func TestNewUnknownAlgorithm(t *testing.T) {
	_, err := New("dollar-q")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestRotateToZeroMode(t *testing.T) {
	assert.True(t, DollarOne.RotateToZero())
	assert.True(t, Protractor.RotateToZero())
	assert.False(t, DollarP.RotateToZero())
}

func TestBest(t *testing.T) {
	i, s := Best(nil)
	assert.Equal(t, -1, i)
	assert.Equal(t, 0., s)

	i, s = Best([]float64{0.2, 0.9, 0.9, -1})
	assert.Equal(t, 1, i)
	assert.Equal(t, 0.9, s)

	i, _ = Best([]float64{-3, -2})
	assert.Equal(t, 1, i)
}

func TestNormalizeDistances(t *testing.T) {
	tests := []struct {
		name string
		raw  []float64
		want []float64
	}{
		{"spread", []float64{2, 4, 6}, []float64{1, 4. / 6, 2. / 6}},
		{"all zero", []float64{0, 0, 0}, []float64{0, 0, 0}},
		{"uniform positive", []float64{3, 3}, []float64{1, 1}},
		{"min large relative to max", []float64{8, 10}, []float64{1, 0.8}},
		{"empty", nil, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeDistances(tt.raw)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-12)
			}
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name string
		raw  []float64
		want []float64
	}{
		{"spread", []float64{1, 2, 3}, []float64{0, 0.5, 1}},
		{"uniform", []float64{7, 7, 7}, []float64{1, 1, 1}},
		{"single", []float64{0.3}, []float64{1}},
		{"empty", nil, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeRange(tt.raw)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-12)
			}
		})
	}
}
