package models

import "time"

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Stroke is an ordered path of points. Order matters.
type Stroke []Point

type Gesture struct {
	Name    string   `json:"name" yaml:"name"`
	Samples []Stroke `json:"samples" yaml:"samples"`
}

// Corpus is the caller-owned set of recorded gestures. Sample 0 of each
// gesture serves as its template.
type Corpus struct {
	Gestures []Gesture `json:"gestures" yaml:"gestures"`
}

// Comparison is one candidate scored against every template by one variant.
type Comparison struct {
	RunID       string
	Variant     string
	Gesture     int
	GestureName string
	Sample      int
	Scores      []float64
	Elapsed     time.Duration
}

type Result struct {
	RunID    string
	Variant  string
	Gesture  int
	Sample   int
	Template int
	Score    float64
}

func (c Comparison) Results() []Result {
	results := make([]Result, len(c.Scores))
	for i, score := range c.Scores {
		results[i] = Result{
			RunID:    c.RunID,
			Variant:  c.Variant,
			Gesture:  c.Gesture,
			Sample:   c.Sample,
			Template: i,
			Score:    score,
		}
	}
	return results
}

// Templates returns sample 0 of every gesture that has one, with the
// matching gesture names, in corpus order.
func (c Corpus) Templates() ([]Stroke, []string) {
	var templates []Stroke
	var names []string
	for _, g := range c.Gestures {
		if len(g.Samples) == 0 {
			continue
		}
		templates = append(templates, g.Samples[0])
		names = append(names, g.Name)
	}
	return templates, names
}
