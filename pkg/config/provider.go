// Package config loads batch settings and named stress-period scenarios from
// pluggable backends. The engine itself never sees the storage format, only
// the normalized records.
package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// Provider defines the interface for scenario configuration sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetBatch() (*BatchData, error)
	GetScenarios() ([]ScenarioData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Batch     BatchData      `json:"batch"`
	Scenarios []ScenarioData `json:"scenarios"`
}

// BatchData holds the settings of one batch run: which countries to process,
// where inputs come from and where artifacts go.
type BatchData struct {
	Countries   []string `json:"countries" validate:"min=1"`
	WeatherYear int      `json:"weather_year" default:"2018" validate:"gte=1950,lte=2100"`

	// DatasetDSN is the Postgres DSN of the country dataset. Empty selects
	// the synthetic in-memory source (demo and test runs).
	DatasetDSN string `json:"dataset_dsn"`

	// ResultsDSN is the Postgres DSN for persisted run artifacts; empty
	// disables persistence.
	ResultsDSN string `json:"results_dsn"`

	OutputDir string `json:"output_dir" default:"out"`

	// CoverageCeiling caps the coverage ratio on zero-demand hours.
	CoverageCeiling float64 `json:"coverage_ceiling" default:"10" validate:"gt=0"`

	// SyntheticDemandGWh sizes the synthetic source's annual demand.
	SyntheticDemandGWh float64 `json:"synthetic_demand_gwh" default:"100000" validate:"gt=0"`
}

// ScenarioData is one named stress-period scenario row. Count semantics are
// validated here structurally; availability against the actual statistics is
// the selector's job.
type ScenarioData struct {
	Name            string `json:"name" validate:"required"`
	DaysScarcity    int    `json:"days_scarcity" validate:"gte=0"`
	DaysSurplus     int    `json:"days_surplus" validate:"gte=0"`
	DaysVolatility  int    `json:"days_volatility" validate:"gte=0"`
	WeeksScarcity   int    `json:"weeks_scarcity" validate:"gte=0"`
	WeeksSurplus    int    `json:"weeks_surplus" validate:"gte=0"`
	WeeksVolatility int    `json:"weeks_volatility" validate:"gte=0"`
	// NumAggregatedTS has no default: zero is meaningful (pure-stress
	// scenarios) so the value must be explicit in the source.
	NumAggregatedTS int    `json:"num_aggregated_ts" validate:"gte=0"`
	CreatePlot      bool   `json:"create_plot"`
}

var validate = validator.New()

// normalize applies defaults and structural validation to a loaded config.
func normalize(cfg *ConfigData) error {
	if err := defaults.Set(&cfg.Batch); err != nil {
		return fmt.Errorf("applying batch defaults: %w", err)
	}
	if err := validate.Struct(&cfg.Batch); err != nil {
		return fmt.Errorf("invalid batch config: %w", err)
	}

	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios configured")
	}
	seen := make(map[string]bool)
	for i := range cfg.Scenarios {
		if err := defaults.Set(&cfg.Scenarios[i]); err != nil {
			return fmt.Errorf("applying scenario defaults: %w", err)
		}
		if err := validate.Struct(&cfg.Scenarios[i]); err != nil {
			return fmt.Errorf("invalid scenario %q: %w", cfg.Scenarios[i].Name, err)
		}
		if seen[cfg.Scenarios[i].Name] {
			return fmt.Errorf("duplicate scenario name %q", cfg.Scenarios[i].Name)
		}
		seen[cfg.Scenarios[i].Name] = true
	}
	return nil
}
