package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/ThatOtherAndrew/strokebench/internal/recognizer"
)

// WriteCSV writes one row per comparison: the keys, one column per template
// score and the elapsed time in milliseconds.
func WriteCSV(w io.Writer, comparisons []models.Comparison) error {
	width := 0
	for _, c := range comparisons {
		width = max(width, len(c.Scores))
	}

	cw := csv.NewWriter(w)
	header := []string{"RunID", "Variant", "Gesture", "Sample"}
	for k := 0; k < width; k++ {
		header = append(header, fmt.Sprintf("Score%d", k))
	}
	header = append(header, "SpendTime")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, c := range comparisons {
		row := []string{c.RunID, c.Variant, c.GestureName, strconv.Itoa(c.Sample)}
		for k := 0; k < width; k++ {
			if k < len(c.Scores) {
				row = append(row, strconv.FormatFloat(c.Scores[k], 'f', 4, 64))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, strconv.FormatFloat(milliseconds(c.Elapsed), 'f', 4, 64))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type Summary struct {
	Variant     string
	Count       int
	Correct     int
	MeanElapsed time.Duration
}

func (s Summary) Accuracy() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Count)
}

// Summarize groups comparisons by variant, in order of first appearance. A
// comparison is correct when its best score belongs to its own gesture.
func Summarize(comparisons []models.Comparison) []Summary {
	var summaries []Summary
	index := map[string]int{}
	totals := map[string]time.Duration{}

	for _, c := range comparisons {
		i, ok := index[c.Variant]
		if !ok {
			i = len(summaries)
			index[c.Variant] = i
			summaries = append(summaries, Summary{Variant: c.Variant})
		}
		s := &summaries[i]
		s.Count++
		if best, _ := recognizer.Best(c.Scores); best == c.Gesture {
			s.Correct++
		}
		totals[c.Variant] += c.Elapsed
	}

	for i := range summaries {
		s := &summaries[i]
		s.MeanElapsed = totals[s.Variant] / time.Duration(s.Count)
	}
	return summaries
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
