package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
batch:
  countries: [DEU, KEN]
  weather_year: 2018
  output_dir: out
scenarios:
  - name: baseline
    days_scarcity: 3
    days_surplus: 2
    weeks_scarcity: 1
    num_aggregated_ts: 16
  - name: classical
    num_aggregated_ts: 48
    create_plot: true
`)

	provider := NewYAMLProvider(path)
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Batch.Countries) != 2 || cfg.Batch.Countries[0] != "DEU" {
		t.Errorf("countries = %v", cfg.Batch.Countries)
	}
	if cfg.Batch.WeatherYear != 2018 {
		t.Errorf("weather year = %d, want 2018", cfg.Batch.WeatherYear)
	}
	// Defaults applied to unset fields
	if cfg.Batch.CoverageCeiling != 10 {
		t.Errorf("coverage ceiling default = %v, want 10", cfg.Batch.CoverageCeiling)
	}
	if cfg.Batch.SyntheticDemandGWh != 100000 {
		t.Errorf("synthetic demand default = %v, want 100000", cfg.Batch.SyntheticDemandGWh)
	}

	if len(cfg.Scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(cfg.Scenarios))
	}
	baseline := cfg.Scenarios[0]
	if baseline.Name != "baseline" || baseline.DaysScarcity != 3 || baseline.WeeksScarcity != 1 {
		t.Errorf("baseline scenario = %+v", baseline)
	}
	classical := cfg.Scenarios[1]
	if classical.NumAggregatedTS != 48 || !classical.CreatePlot {
		t.Errorf("classical scenario = %+v", classical)
	}

	if !provider.IsReadOnly() {
		t.Error("YAML provider should be read-only")
	}
}

func TestYAMLProviderValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			"no countries",
			"batch: {countries: []}\nscenarios: [{name: a, num_aggregated_ts: 16}]",
		},
		{
			"no scenarios",
			"batch: {countries: [DEU]}\nscenarios: []",
		},
		{
			"unnamed scenario",
			"batch: {countries: [DEU]}\nscenarios: [{num_aggregated_ts: 16}]",
		},
		{
			"negative count",
			"batch: {countries: [DEU]}\nscenarios: [{name: a, days_scarcity: -1, num_aggregated_ts: 16}]",
		},
		{
			"duplicate scenario names",
			"batch: {countries: [DEU]}\nscenarios: [{name: a, num_aggregated_ts: 16}, {name: a, num_aggregated_ts: 16}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewYAMLProvider(writeTempConfig(t, tt.contents))
			defer provider.Close()
			if _, err := provider.LoadConfig(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	provider := NewYAMLProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := provider.LoadConfig(); err == nil {
		t.Error("expected error for missing file")
	}
}
