package stroke

import (
	"math"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/pkg/errors"
)

const (
	DefaultResampleCount = 64
	DefaultSquareSize    = 250.
)

// An axis whose extent is at most this fraction of the larger extent is
// treated as flat and left unscaled.
const flatAxisRatio = 1e-9

var ErrInvalidStroke = errors.New("invalid stroke")

type Options struct {
	ResampleCount int
	SquareSize    float64
	RotateToZero  bool
}

func DefaultOptions(rotateToZero bool) Options {
	return Options{
		ResampleCount: DefaultResampleCount,
		SquareSize:    DefaultSquareSize,
		RotateToZero:  rotateToZero,
	}
}

// Preprocess normalises a raw stroke with the default resample count and
// square size.
func Preprocess(points models.Stroke, rotateToZero bool) (models.Stroke, error) {
	return DefaultOptions(rotateToZero).Preprocess(points)
}

// Preprocess turns a raw stroke into its canonical form: finite points only,
// no repeated neighbours, ResampleCount evenly spaced points, optionally
// rotated so the first point sits at angle zero, scaled to the square and
// centred on the origin. The input is never modified.
func (o Options) Preprocess(points models.Stroke) (models.Stroke, error) {
	if o.ResampleCount < 2 {
		return nil, errors.Errorf("resample count must be at least 2, got %d", o.ResampleCount)
	}
	if !(o.SquareSize > 0) || math.IsInf(o.SquareSize, 0) {
		return nil, errors.Errorf("square size must be positive, got %v", o.SquareSize)
	}

	cleaned := RemoveDuplicates(FilterInvalid(points))

	// Step 1
	resampled, err := Resample(cleaned, o.ResampleCount)
	if err != nil {
		return nil, err
	}

	// Step 2
	if o.RotateToZero {
		resampled = RotateToZero(resampled)
	}

	// Step 3
	b := BoundingBox(resampled)
	if largest := math.Max(b.Width(), b.Height()); !isFinite(o.SquareSize / largest) {
		return nil, errors.Wrapf(ErrInvalidStroke, "extent %v cannot be scaled to %v", largest, o.SquareSize)
	}
	scaled := ScaleToSquare(resampled, o.SquareSize)
	out := TranslateToOrigin(scaled)

	// Coordinates near the float64 limits overflow the centroid sums.
	for i, p := range out {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, errors.Wrapf(ErrInvalidStroke, "point %d is not finite after normalisation", i)
		}
	}
	return out, nil
}

func FilterInvalid(points models.Stroke) models.Stroke {
	valid := make(models.Stroke, 0, len(points))
	for _, p := range points {
		if isFinite(p.X) && isFinite(p.Y) {
			valid = append(valid, p)
		}
	}
	return valid
}

func RemoveDuplicates(points models.Stroke) models.Stroke {
	if len(points) == 0 {
		return models.Stroke{}
	}
	unique := models.Stroke{points[0]}
	for i := 1; i < len(points); i++ {
		if points[i] != points[i-1] {
			unique = append(unique, points[i])
		}
	}
	return unique
}

// Resample returns n points spaced evenly along the path.
func Resample(points models.Stroke, n int) (models.Stroke, error) {
	if len(points) < 2 {
		return nil, errors.Wrapf(ErrInvalidStroke, "need at least 2 distinct points, got %d", len(points))
	}
	length := PathLength(points)
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, errors.Wrapf(ErrInvalidStroke, "path length %v", length)
	}

	I := length / float64(n-1)
	D := 0.0
	prev := points[0]
	newPoints := make(models.Stroke, 1, n)
	newPoints[0] = prev

	// prev trails the cursor and becomes each interpolated point in turn,
	// so the remainder of the current segment is measured from there.
	for i := 1; i < len(points) && len(newPoints) < n; {
		d := Distance(prev, points[i])
		if D+d >= I {
			q := Lerp(prev, points[i], (I-D)/d)
			newPoints = append(newPoints, q)
			prev = q
			D = 0
		} else {
			D += d
			prev = points[i]
			i++
		}
	}
	for len(newPoints) < n {
		newPoints = append(newPoints, points[len(points)-1])
	}
	return newPoints, nil
}

// RotateToZero rotates the stroke so that the angle from the centroid to the
// first point is zero.
func RotateToZero(points models.Stroke) models.Stroke {
	c := Centroid(points)
	angle := math.Atan2(points[0].Y-c.Y, points[0].X-c.X)
	return RotateBy(points, -angle)
}

// ScaleToSquare stretches each axis independently so the bounding box becomes
// size × size. A flat axis, or one too small to scale without overflow, keeps
// a scale factor of 1.
func ScaleToSquare(points models.Stroke, size float64) models.Stroke {
	b := BoundingBox(points)
	w, h := b.Width(), b.Height()
	largest := math.Max(w, h)
	sx, sy := 1., 1.
	if f := size / w; w > largest*flatAxisRatio && isFinite(f) {
		sx = f
	}
	if f := size / h; h > largest*flatAxisRatio && isFinite(f) {
		sy = f
	}

	scaled := make(models.Stroke, len(points))
	for i, p := range points {
		scaled[i] = models.Point{
			X: (p.X - b.MinX) * sx,
			Y: (p.Y - b.MinY) * sy,
		}
	}
	return scaled
}

func TranslateToOrigin(points models.Stroke) models.Stroke {
	c := Centroid(points)
	translated := make(models.Stroke, len(points))
	for i, p := range points {
		translated[i] = models.Point{X: p.X - c.X, Y: p.Y - c.Y}
	}
	return translated
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
