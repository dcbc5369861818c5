package config_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/config"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// TestLoad_Linspace maps a start/stop/n domain and four sets.
func TestLoad_Linspace(t *testing.T) {
	doc, err := config.Load(filepath.Join("testdata", "ages.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, doc.Domain)
	require.Len(t, doc.Sets, 4)
	assert.Equal(t, fuzzy.KindTrapezoidal, doc.Sets[0].Kind())
	assert.Equal(t, fuzzy.KindGaussian, doc.Sets[2].Kind())
	assert.Equal(t, fuzzy.KindSShape, doc.Sets[3].Kind())

	old, ok := doc.Set("old")
	require.True(t, ok)
	assert.Equal(t, []float64{55, 75}, old.Params())
	_, ok = doc.Set("ancient")
	assert.False(t, ok)
}

// TestLoad_MatchesDirectConstruction checks a parsed union equals one built
// from constructors.
func TestLoad_MatchesDirectConstruction(t *testing.T) {
	doc, err := config.Load(filepath.Join("testdata", "points.yaml"))
	require.NoError(t, err)

	young, err := fuzzy.NewTrapezoidal("young", 0, 0, 10, 15)
	require.NoError(t, err)
	youngPlus, err := fuzzy.NewTrapezoidal("young+", 10, 15, 25, 30)
	require.NoError(t, err)

	want, err := fuzzy.Union([]float64{10, 20, 30}, young, youngPlus)
	require.NoError(t, err)
	got, err := fuzzy.Union(doc.Domain, doc.Sets...)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestLoad_ConstructorRejects surfaces the fuzzy error and the field path.
func TestLoad_ConstructorRejects(t *testing.T) {
	path := filepath.Join("testdata", "invalid_params.yaml")
	_, err := config.Load(path)
	require.Error(t, err)

	assert.ErrorIs(t, err, config.ErrInvalidDocument)
	assert.ErrorIs(t, err, fuzzy.ErrInvalidParameters)
	assert.Contains(t, err.Error(), "sets[1].params")
	assert.Contains(t, err.Error(), path)

	var de *config.DocumentError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "sets[1].params", de.Field)
}

// TestLoad_MissingFile keeps the fs error reachable.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "nope.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestParse_Errors covers decode and mapping failures.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"empty", "", ""},
		{"unknown key", "domain: {points: [1]}\nsets: []\ncolour: red\n", ""},
		{"no sets", "domain: {points: [1]}\n", "sets"},
		{"no domain", "sets: [{title: a, kind: gaussian, params: [0, 1]}]\n", "domain"},
		{"points and bounds", "domain: {points: [1], start: 0}\nsets: [{title: a, kind: gaussian, params: [0, 1]}]\n", "domain.points"},
		{"n and step", "domain: {start: 0, stop: 1, n: 3, step: 0.5}\nsets: [{title: a, kind: gaussian, params: [0, 1]}]\n", "domain"},
		{"neither n nor step", "domain: {start: 0, stop: 1}\nsets: [{title: a, kind: gaussian, params: [0, 1]}]\n", "domain"},
		{"bad n", "domain: {start: 0, stop: 1, n: -2}\nsets: [{title: a, kind: gaussian, params: [0, 1]}]\n", "domain.n"},
		{"bad step", "domain: {start: 0, stop: 1, step: -1}\nsets: [{title: a, kind: gaussian, params: [0, 1]}]\n", "domain.step"},
		{"bad precision", "domain: {start: 0, stop: 1, n: 3, precision: 99}\nsets: [{title: a, kind: gaussian, params: [0, 1]}]\n", "domain.precision"},
		{"missing title", "domain: {points: [1]}\nsets: [{kind: gaussian, params: [0, 1]}]\n", "sets[0].title"},
		{"duplicate title", "domain: {points: [1]}\nsets: [{title: a, kind: gaussian, params: [0, 1]}, {title: a, kind: gaussian, params: [1, 1]}]\n", "sets[1].title"},
		{"param count", "domain: {points: [1]}\nsets: [{title: a, kind: bell, params: [1, 2]}]\n", "sets[0].params"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidDocument)

			var de *config.DocumentError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

// TestParse_UnknownKind wraps ErrUnknownKind.
func TestParse_UnknownKind(t *testing.T) {
	_, err := config.Parse([]byte("domain: {points: [1]}\nsets: [{title: a, kind: hexagon, params: [1]}]\n"))
	assert.ErrorIs(t, err, config.ErrUnknownKind)
	assert.ErrorIs(t, err, config.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "sets[0].kind")
}

// TestParse_DomainOptions applies endpoint and precision.
func TestParse_DomainOptions(t *testing.T) {
	doc, err := config.Parse([]byte(`
domain: {start: 0, stop: 1, n: 3, endpoint: false, precision: 3}
sets: [{title: a, kind: triangular, params: [0, 0.5, 1]}]
`))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.333, 0.667}, doc.Domain)

	doc, err = config.Parse([]byte(`
domain: {start: 0, stop: 1, step: 0.25}
sets: [{title: a, kind: triangular, params: [0, 0.5, 1]}]
`))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, doc.Domain)
}

// TestParamNames covers every kind.
func TestParamNames(t *testing.T) {
	for _, k := range fuzzy.Kinds() {
		names, ok := config.ParamNames(k)
		require.True(t, ok, k.String())
		assert.NotEmpty(t, names)
	}
	_, ok := config.ParamNames(fuzzy.Kind(99))
	assert.False(t, ok)
}
