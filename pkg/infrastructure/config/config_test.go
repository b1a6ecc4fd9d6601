package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "npisim.yaml")
	body := `
simulation:
  minimum_delivery_days: 7
fuzzy:
  output_step: 0.05
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Simulation.MinimumDeliveryDays)
	require.Equal(t, 0.05, cfg.Fuzzy.OutputStep)
	// Untouched defaults survive the overlay.
	require.Equal(t, 1.50, cfg.Simulation.MinimumPrice)
	require.Len(t, cfg.Fuzzy.DueTime.Terms, 3)
}

func TestLoad_RejectsBrokenOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "npisim.yaml")
	body := `
fuzzy:
  output_step: -1
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_GuardMustContainUniverse(t *testing.T) {
	cfg := Default()
	cfg.Fuzzy.Spend.GuardMax = cfg.Fuzzy.Spend.UniverseMax - 1
	require.Error(t, cfg.Validate())
}

func TestValidate_TermBreakpointsOrdered(t *testing.T) {
	cfg := Default()
	cfg.Fuzzy.DueTime.Terms[0].Points = [4]float64{60, 30, 0, 0}
	require.Error(t, cfg.Validate())
}
