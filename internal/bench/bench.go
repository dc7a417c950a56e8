package bench

import (
	"context"
	"log"
	"time"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/ThatOtherAndrew/strokebench/internal/recognizer"
	"github.com/ThatOtherAndrew/strokebench/internal/stroke"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Variant pairs an algorithm with the preprocessing mode it runs under.
type Variant struct {
	Name         string
	Algorithm    recognizer.Algorithm
	RotateToZero bool
}

// DefaultVariants are the four runs of the reference benchmark.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "dollar-one", Algorithm: recognizer.DollarOne, RotateToZero: true},
		{Name: "dollar-p", Algorithm: recognizer.DollarP, RotateToZero: false},
		{Name: "protractor", Algorithm: recognizer.Protractor, RotateToZero: true},
		{Name: "dollar-p-rotated", Algorithm: recognizer.DollarP, RotateToZero: true},
	}
}

type Options struct {
	ResampleCount int
	SquareSize    float64
	Workers       int
	Logger        *log.Logger
}

func (o Options) preprocessing(rotateToZero bool) stroke.Options {
	p := stroke.DefaultOptions(rotateToZero)
	if o.ResampleCount > 0 {
		p.ResampleCount = o.ResampleCount
	}
	if o.SquareSize > 0 {
		p.SquareSize = o.SquareSize
	}
	return p
}

type job struct {
	variant   Variant
	r         recognizer.Recognizer
	templates []models.Stroke
	opts      stroke.Options
	gesture   int
	name      string
	sample    int
	raw       models.Stroke
}

// Run scores every non-template sample of the corpus with each variant.
// Gestures without samples are ignored, so Comparison.Gesture is the index of
// the gesture's template. Results are ordered by variant, gesture and sample.
func Run(ctx context.Context, corpus models.Corpus, variants []Variant, opts Options) ([]models.Comparison, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	workers := max(opts.Workers, 1)

	var gestures []models.Gesture
	for _, g := range corpus.Gestures {
		if len(g.Samples) > 0 {
			gestures = append(gestures, g)
		}
	}

	var jobs []job
	for _, v := range variants {
		r, err := recognizer.New(v.Algorithm)
		if err != nil {
			return nil, errors.Wrapf(err, "variant %s", v.Name)
		}
		p := opts.preprocessing(v.RotateToZero)

		templates := make([]models.Stroke, len(gestures))
		for i, g := range gestures {
			templates[i], err = p.Preprocess(g.Samples[0])
			if err != nil {
				return nil, errors.Wrapf(err, "template for %s", g.Name)
			}
		}

		for i, g := range gestures {
			for s := 1; s < len(g.Samples); s++ {
				jobs = append(jobs, job{
					variant:   v,
					r:         r,
					templates: templates,
					opts:      p,
					gesture:   i,
					name:      g.Name,
					sample:    s,
					raw:       g.Samples[s],
				})
			}
		}
		logger.Printf("Variant %s: %d template(s)", v.Name, len(templates))
	}

	runID := uuid.NewString()
	slots := make([]*models.Comparison, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			candidate, err := j.opts.Preprocess(j.raw)
			if err != nil {
				logger.Printf("Skipping %s sample %d for %s: %v", j.name, j.sample, j.variant.Name, err)
				return nil
			}
			scores, err := j.r.Recognize(j.templates, candidate)
			if err != nil {
				return errors.Wrapf(err, "%s sample %d for %s", j.name, j.sample, j.variant.Name)
			}
			elapsed := time.Since(start)

			slots[i] = &models.Comparison{
				RunID:       runID,
				Variant:     j.variant.Name,
				Gesture:     j.gesture,
				GestureName: j.name,
				Sample:      j.sample,
				Scores:      scores,
				Elapsed:     elapsed,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	comparisons := make([]models.Comparison, 0, len(slots))
	for _, c := range slots {
		if c != nil {
			comparisons = append(comparisons, *c)
		}
	}
	logger.Printf("Run %s: %d comparison(s)", runID, len(comparisons))
	return comparisons, nil
}
