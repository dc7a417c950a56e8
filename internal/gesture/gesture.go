package gestures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ErrGestureNotFound = errors.New("gesture not found")
	ErrSampleIndex     = errors.New("sample index out of range")
)

// DefaultNames are the sixteen gestures of the reference corpus, in order.
var DefaultNames = []string{
	"Triangle", "X", "Rectangle", "Circle",
	"Check", "Caret", "Question", "Arrow",
	"Left Square Bracket", "Right Square Bracket", "V", "Delete",
	"Left Curly Brace", "Right Curly Brace", "Star", "Pigtail",
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads a corpus from path. A missing file is an empty corpus.
func Load(path string) (models.Corpus, error) {
	var corpus models.Corpus

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return corpus, nil
		}
		return corpus, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &corpus)
	} else {
		err = json.Unmarshal(data, &corpus)
	}
	if err != nil {
		return corpus, errors.Wrapf(err, "parsing corpus %s", path)
	}
	return corpus, nil
}

func Save(path string, corpus models.Corpus) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(corpus)
	} else {
		data, err = json.Marshal(corpus)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PutSample stores s as sample index of the named gesture, creating the
// gesture if needed. index may be at most the current sample count.
func PutSample(path, name string, index int, s models.Stroke) error {
	corpus, err := Load(path)
	if err != nil {
		return err
	}

	found := false
	for i := range corpus.Gestures {
		g := &corpus.Gestures[i]
		if g.Name != name {
			continue
		}
		found = true
		switch {
		case index >= 0 && index < len(g.Samples):
			g.Samples[index] = s
		case index == len(g.Samples):
			g.Samples = append(g.Samples, s)
		default:
			return errors.Wrapf(ErrSampleIndex, "%s has %d sample(s), got index %d", name, len(g.Samples), index)
		}
		break
	}
	if !found {
		if index != 0 {
			return errors.Wrapf(ErrSampleIndex, "new gesture %s must start at sample 0, got %d", name, index)
		}
		corpus.Gestures = append(corpus.Gestures, models.Gesture{
			Name:    name,
			Samples: []models.Stroke{s},
		})
	}

	return Save(path, corpus)
}

func Remove(path, name string) error {
	corpus, err := Load(path)
	if err != nil {
		return err
	}

	found := false
	for i, g := range corpus.Gestures {
		if g.Name == name {
			corpus.Gestures = append(corpus.Gestures[:i], corpus.Gestures[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return errors.Wrap(ErrGestureNotFound, name)
	}

	return Save(path, corpus)
}

// ReadStroke reads a raw stroke stored as a JSON array of {"x","y"} points.
func ReadStroke(path string) (models.Stroke, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s models.Stroke
	if isYAML(path) {
		err = yaml.Unmarshal(data, &s)
	} else {
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing stroke %s", path)
	}
	return s, nil
}
