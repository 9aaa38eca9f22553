package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/barrier-pricer/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPriceCommandDefaultsToReferenceRun(t *testing.T) {
	out, _, err := execute(t, "price", "--paths", "500")
	require.NoError(t, err)

	assert.Contains(t, out, "Price of the up-and-out barrier call: ")
	assert.Contains(t, out, "out of 500\n")
	assert.Contains(t, out, "Standard deviation of the price: ")
	assert.Equal(t, 5+3, strings.Count(out, "\n")-strings.Count(out, "barrier reached"))
}

func TestPriceCommandIsReproducible(t *testing.T) {
	first, _, err := execute(t, "price", "--paths", "300", "--seed", "11")
	require.NoError(t, err)
	second, _, err := execute(t, "price", "--paths", "300", "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPriceCommandJSON(t *testing.T) {
	out, _, err := execute(t, "price", "--paths", "200", "--format", "json", "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `"barrierHits"`)
	assert.Contains(t, out, `"price"`)
	assert.NotContains(t, out, `"trajectories"`)
}

func TestPriceCommandValidationRejectsBarrierBelowSpot(t *testing.T) {
	_, _, err := execute(t, "price", "--barrier", "90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "barrier must be above spot")
}

func TestPriceCommandSkipValidationAllowsDegenerateRun(t *testing.T) {
	out, _, err := execute(t, "price", "--barrier", "90", "--paths", "50", "--skip-validation", "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Price of the up-and-out barrier call: nan")
	assert.Contains(t, out, "Paths exceeding the barrier: 50 out of 50")
}

func TestPriceCommandStrictFailsAfterPrinting(t *testing.T) {
	out, stderr, err := execute(t, "price", "--barrier", "90", "--paths", "50", "--skip-validation", "--strict", "--trajectories", "0")
	require.ErrorIs(t, err, calculation.ErrInsufficientSurvivors)
	assert.Contains(t, out, "Paths exceeding the barrier: 50 out of 50")
	assert.Contains(t, stderr, "surviving paths")
}

func TestPriceCommandSkipValidationAppliesToConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "degenerate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("option:\n  barrier: 90\n  num_paths: 20\n"), 0644))

	_, _, err := execute(t, "price", "--config", cfgPath, "--trajectories", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "barrier must be above spot")

	out, _, err := execute(t, "price", "--config", cfgPath, "--skip-validation", "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Paths exceeding the barrier: 20 out of 20")
}

func TestPriceCommandConfigValidatedAfterFlagOverrides(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "degenerate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("option:\n  barrier: 90\n"), 0644))

	out, _, err := execute(t, "price", "--config", cfgPath, "--barrier", "140", "--paths", "30", "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "out of 30\n")
}

func TestPriceCommandSteps(t *testing.T) {
	_, _, err := execute(t, "price", "--paths", "10", "--steps", "-5", "--skip-validation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be at least 0")

	_, _, err = execute(t, "price", "--paths", "10", "--steps", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be at least 1")

	out, _, err := execute(t, "price", "--paths", "10", "--steps", "0", "--skip-validation", "--trajectories", "1")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	var trajectory string
	for _, l := range lines {
		if strings.HasPrefix(l, "Trajectory 1: ") && !strings.Contains(l, "barrier reached") {
			trajectory = l
		}
	}
	require.NotEmpty(t, trajectory)
	assert.LessOrEqual(t, strings.Count(strings.TrimPrefix(trajectory, "Trajectory 1: "), " "), 100)
	assert.Greater(t, strings.Count(strings.TrimPrefix(trajectory, "Trajectory 1: "), " "), 0)
}

func TestPriceCommandConfigFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pricing.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("option:\n  num_paths: 120\n"), 0644))

	out, _, err := execute(t, "price", "--config", cfgPath, "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "out of 120\n")

	out, _, err = execute(t, "price", "--config", cfgPath, "--paths", "80", "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "out of 80\n")
}

func TestPriceCommandOutputDir(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "price", "--paths", "100", "--format", "csv", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to ")

	matches, err := filepath.Glob(filepath.Join(dir, "barrier_price_*.csv"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestPriceCommandUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "price", "--paths", "10", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestPriceCommandVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "price", "--paths", "10", "--verbose", "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "component=pricer")
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestPriceCommandVolatilityFromHistory(t *testing.T) {
	dir := t.TempDir()
	history := filepath.Join(dir, "closes.csv")
	require.NoError(t, os.WriteFile(history, []byte("date,close\n"+
		"2025-01-02,100\n2025-01-03,102\n2025-01-06,99\n2025-01-07,101\n"), 0644))

	out, _, err := execute(t, "price", "--paths", "100", "--format", "json", "--trajectories", "0", "--volatility-from", history)
	require.NoError(t, err)

	series, err := calculation.LoadHistoricalPrices(history)
	require.NoError(t, err)
	var decoded struct {
		Option struct {
			Volatility float64 `json:"volatility"`
		} `json:"option"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, series.RealizedVolatility(calculation.TradingDaysPerYear), decoded.Option.Volatility, 1e-12)

	_, _, err = execute(t, "price", "--volatility", "0.3", "--volatility-from", history)
	require.Error(t, err)

	_, _, err = execute(t, "price", "--volatility-from", filepath.Join(dir, "missing.csv"))
	assert.ErrorContains(t, err, "load price history")
}

func TestExampleConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, _, err := execute(t, "example-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "barrier: 130")
	assert.Contains(t, string(data), "seed: 42")

	out, _, err = execute(t, "price", "--config", path, "--paths", "50", "--trajectories", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "out of 50")
}

func TestFormatsCommand(t *testing.T) {
	out, _, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "  trajectories-csv\n")
	assert.Contains(t, out, "  verbose -> summary\n")
}
