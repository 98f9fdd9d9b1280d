package commands_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/codata/internal/cli"
	"github.com/leapstack-labs/codata/internal/cli/config"
	"github.com/leapstack-labs/codata/internal/describe"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Chdir(t.TempDir())

	root := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestList_Markdown(t *testing.T) {
	out, err := execute(t, "list", "--output", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Constants")
	assert.Contains(t, out, "## PlanckConstant")
	assert.Contains(t, out, "- **Symbol**: h")
	assert.Contains(t, out, "CODATA 2014")
}

func TestList_JSON(t *testing.T) {
	out, err := execute(t, "list", "--output", "json")
	require.NoError(t, err)

	var payload struct {
		Constants []describe.Info `json:"constants"`
		Total     int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.GreaterOrEqual(t, payload.Total, 29)
	assert.Len(t, payload.Constants, payload.Total)
}

func TestList_ExactOnly(t *testing.T) {
	out, err := execute(t, "list", "--exact", "--output", "json")
	require.NoError(t, err)

	var payload struct {
		Constants []describe.Info `json:"constants"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.NotEmpty(t, payload.Constants)
	for _, info := range payload.Constants {
		assert.True(t, info.Exact, info.Name)
	}
}

func TestShow_BySymbol(t *testing.T) {
	out, err := execute(t, "show", "c", "--output", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "Speed of light in vacuum (c)")
	assert.Contains(t, out, "2.99792458e+08 m s^-1")
	assert.Contains(t, out, "(exact)")
}

func TestShow_MeasuredConstant(t *testing.T) {
	out, err := execute(t, "show", "PlanckConstant", "--output", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "6.62607004e-34")
	assert.Contains(t, out, "Standard uncertainty")
	assert.Contains(t, out, "8.1e-42")
	assert.Contains(t, out, "Relative standard uncertainty")
}

func TestShow_WideUsesConfiguredPrecision(t *testing.T) {
	out, err := execute(t, "show", "hbar", "--wide", "-p", "512", "--output", "json")
	require.NoError(t, err)

	var info describe.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, uint(512), info.Precision)
	assert.True(t, info.Derived)
	// 512 bits carry about 154 decimal digits.
	assert.Greater(t, len(info.Value), 100)
}

func TestShow_UnknownConstant(t *testing.T) {
	_, err := execute(t, "show", "Nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nonexistent")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "codata v")
}

func TestRoot_RejectsBadPrecision(t *testing.T) {
	_, err := execute(t, "list", "-p", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the minimum")
}
