package gestures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ThatOtherAndrew/strokebench/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var line = models.Stroke{{X: 0, Y: 0}, {X: 10, Y: 5}}

func TestLoadMissingFile(t *testing.T) {
	corpus, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, corpus.Gestures)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"corpus.json", "corpus.yaml", "nested/dir/corpus.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := models.Corpus{Gestures: []models.Gesture{
				{Name: "Check", Samples: []models.Stroke{line, {{X: 1.5, Y: -2}}}},
				{Name: "V", Samples: []models.Stroke{line}},
			}}
			require.NoError(t, Save(path, want))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestPutSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	other := models.Stroke{{X: 3, Y: 3}, {X: 4, Y: 1}}

	require.NoError(t, PutSample(path, "Star", 0, line))
	require.NoError(t, PutSample(path, "Star", 1, other))
	require.NoError(t, PutSample(path, "Star", 0, other))
	require.NoError(t, PutSample(path, "Arrow", 0, line))

	err := PutSample(path, "Star", 5, line)
	assert.True(t, errors.Is(err, ErrSampleIndex))
	err = PutSample(path, "Pigtail", 1, line)
	assert.True(t, errors.Is(err, ErrSampleIndex))

	corpus, err := Load(path)
	require.NoError(t, err)
	require.Len(t, corpus.Gestures, 2)
	assert.Equal(t, "Star", corpus.Gestures[0].Name)
	assert.Equal(t, []models.Stroke{other, other}, corpus.Gestures[0].Samples)

	templates, names := corpus.Templates()
	assert.Equal(t, []string{"Star", "Arrow"}, names)
	assert.Equal(t, []models.Stroke{other, line}, templates)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, PutSample(path, "X", 0, line))
	require.NoError(t, PutSample(path, "V", 0, line))

	require.NoError(t, Remove(path, "X"))
	err := Remove(path, "X")
	assert.True(t, errors.Is(err, ErrGestureNotFound))

	corpus, err := Load(path)
	require.NoError(t, err)
	require.Len(t, corpus.Gestures, 1)
	assert.Equal(t, "V", corpus.Gestures[0].Name)
}

func TestReadStroke(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stroke.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"x":1,"y":2},{"x":3.5,"y":-4}]`), 0644))

	s, err := ReadStroke(path)
	require.NoError(t, err)
	assert.Equal(t, models.Stroke{{X: 1, Y: 2}, {X: 3.5, Y: -4}}, s)

	_, err = ReadStroke(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDefaultNames(t *testing.T) {
	assert.Len(t, DefaultNames, 16)
}
