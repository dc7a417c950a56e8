package bench

import (
	"time"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/ThatOtherAndrew/strokebench/internal/recognizer"
)

// Confusion counts one variant's predictions. Rows are actual gestures and
// columns the template with the best score. The matrix is square, sized to
// cover every gesture and template index seen.
func Confusion(comparisons []models.Comparison, variant string) [][]int {
	n := 0
	for _, c := range comparisons {
		if c.Variant == variant {
			n = max(n, c.Gesture+1, len(c.Scores))
		}
	}

	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}
	for _, c := range comparisons {
		if c.Variant != variant {
			continue
		}
		if predicted, _ := recognizer.Best(c.Scores); predicted >= 0 {
			matrix[c.Gesture][predicted]++
		}
	}
	return matrix
}

// Timings holds the mean elapsed time per gesture (rows) and variant
// (columns). A zero entry means no comparison was recorded for that cell.
type Timings struct {
	Variants []string
	Gestures []string
	Mean     [][]time.Duration
}

func GestureTimings(comparisons []models.Comparison) Timings {
	var t Timings
	column := map[string]int{}
	rows := 0
	for _, c := range comparisons {
		if _, ok := column[c.Variant]; !ok {
			column[c.Variant] = len(t.Variants)
			t.Variants = append(t.Variants, c.Variant)
		}
		rows = max(rows, c.Gesture+1)
	}

	t.Gestures = make([]string, rows)
	t.Mean = make([][]time.Duration, rows)
	counts := make([][]int, rows)
	for g := range t.Mean {
		t.Mean[g] = make([]time.Duration, len(t.Variants))
		counts[g] = make([]int, len(t.Variants))
	}

	for _, c := range comparisons {
		v := column[c.Variant]
		t.Gestures[c.Gesture] = c.GestureName
		t.Mean[c.Gesture][v] += c.Elapsed
		counts[c.Gesture][v]++
	}
	for g := range t.Mean {
		for v, n := range counts[g] {
			if n > 0 {
				t.Mean[g][v] /= time.Duration(n)
			}
		}
	}
	return t
}
