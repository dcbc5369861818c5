package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

var agesPath = filepath.Join("testdata", "ages.yaml")

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestUnionCommand(t *testing.T) {
	out, _, err := run(t, "union", "-c", agesPath, "--set", "young,young+")
	require.NoError(t, err)
	assert.Contains(t, out, "young ∪ young+")
	assert.Contains(t, out, "30")
}

func TestIntersectCommand(t *testing.T) {
	out, _, err := run(t, "intersect", "-c", agesPath, "-s", "young", "-s", "young+")
	require.NoError(t, err)
	assert.Contains(t, out, "young ∪ young+")
}

func TestMergeCommand(t *testing.T) {
	out, _, err := run(t, "merge", "-c", agesPath, "--op", "algebraic-product", "-s", "young,adult")
	require.NoError(t, err)
	assert.Contains(t, out, "young · adult")

	_, _, err = run(t, "merge", "-c", agesPath, "--op", "xor")
	assert.ErrorContains(t, err, `unknown operator "xor"`)
}

func TestEvalCommand(t *testing.T) {
	out, _, err := run(t, "eval", "-c", agesPath, "--digits", "2")
	require.NoError(t, err)
	for _, title := range []string{"young", "young+", "adult", "middle", "hot"} {
		assert.Contains(t, out, title)
	}
}

func TestComplementCommand(t *testing.T) {
	out, _, err := run(t, "complement", "-c", agesPath, "--set", "adult")
	require.NoError(t, err)
	assert.Contains(t, out, "complement adult")

	_, _, err = run(t, "complement", "-c", agesPath, "--set", "nobody")
	assert.ErrorContains(t, err, `no set titled "nobody"`)
}

func TestCutCommand(t *testing.T) {
	out, _, err := run(t, "cut", "-c", agesPath, "--set", "adult", "--alpha", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "[18, 65]")
	assert.Contains(t, out, "[25, 55]")
	assert.Contains(t, out, "[21.5, 60]")

	out, _, err = run(t, "cut", "-c", agesPath, "--set", "middle")
	require.NoError(t, err)
	assert.Contains(t, out, "unsupported")

	out, _, err = run(t, "cut", "-c", agesPath, "--set", "hot")
	require.NoError(t, err)
	assert.Contains(t, out, "empty")

	_, _, err = run(t, "cut", "-c", agesPath, "--set", "adult", "--alpha", "1.5")
	assert.ErrorIs(t, err, fuzzy.ErrInvalidAlpha)
}

func TestKindsCommand(t *testing.T) {
	out, _, err := run(t, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "combined-gaussian")
	assert.Contains(t, out, "leftFoot")
}

func TestConfigFromEnvironment(t *testing.T) {
	_, _, err := run(t, "union")
	assert.ErrorIs(t, err, errNoConfig)

	t.Setenv("LVFUZZY_CONFIG", agesPath)
	out, _, err := run(t, "union", "-s", "young")
	require.NoError(t, err)
	assert.Contains(t, out, "young")
}

func TestDebugLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "union", "-c", agesPath, "--debug")
	require.NoError(t, err)
	assert.NotContains(t, out, "loaded definitions")
	assert.Contains(t, errOut, "loaded definitions")

	_, errOut, err = run(t, "union", "-c", agesPath)
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestNegativeDigitsRejected(t *testing.T) {
	_, _, err := run(t, "eval", "-c", agesPath, "--digits=-1")
	assert.ErrorContains(t, err, "--digits")
}

func TestBindPersistentFlags(t *testing.T) {
	a := &app{v: viper.New()}
	cmd := &cobra.Command{Use: "x"}
	cmd.PersistentFlags().Int(keyDigits, defaultDigits, "")

	require.NoError(t, a.bindPersistentFlags(cmd, keyDigits))
	assert.Equal(t, defaultDigits, a.v.GetInt(keyDigits))

	err := a.bindPersistentFlags(cmd, keyDigits, "missing")
	assert.ErrorContains(t, err, "--missing")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   string
	}{
		{0.5, 4, "0.5"},
		{1, 4, "1"},
		{0.88249690258, 4, "0.8825"},
		{-0.00001, 2, "0"},
		{100, -1, "100"},
		{0.1, -1, "0.1"},
		{1234, 0, "1234"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, formatNumber(tc.v, tc.digits), "%v/%d", tc.v, tc.digits)
	}
}
