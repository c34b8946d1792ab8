package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// batchYAML and scenarioYAML carry the YAML tags; they are converted to the
// backend-neutral ConfigData records after unmarshaling.
type batchYAML struct {
	Countries          []string `yaml:"countries"`
	WeatherYear        int      `yaml:"weather_year"`
	DatasetDSN         string   `yaml:"dataset_dsn"`
	ResultsDSN         string   `yaml:"results_dsn"`
	OutputDir          string   `yaml:"output_dir"`
	CoverageCeiling    float64  `yaml:"coverage_ceiling"`
	SyntheticDemandGWh float64  `yaml:"synthetic_demand_gwh"`
}

type scenarioYAML struct {
	Name            string `yaml:"name"`
	DaysScarcity    int    `yaml:"days_scarcity"`
	DaysSurplus     int    `yaml:"days_surplus"`
	DaysVolatility  int    `yaml:"days_volatility"`
	WeeksScarcity   int    `yaml:"weeks_scarcity"`
	WeeksSurplus    int    `yaml:"weeks_surplus"`
	WeeksVolatility int    `yaml:"weeks_volatility"`
	NumAggregatedTS int    `yaml:"num_aggregated_ts"`
	CreatePlot      bool   `yaml:"create_plot"`
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var yamlConfig struct {
		Batch     batchYAML      `yaml:"batch"`
		Scenarios []scenarioYAML `yaml:"scenarios"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	config := &ConfigData{
		Batch: BatchData{
			Countries:          yamlConfig.Batch.Countries,
			WeatherYear:        yamlConfig.Batch.WeatherYear,
			DatasetDSN:         yamlConfig.Batch.DatasetDSN,
			ResultsDSN:         yamlConfig.Batch.ResultsDSN,
			OutputDir:          yamlConfig.Batch.OutputDir,
			CoverageCeiling:    yamlConfig.Batch.CoverageCeiling,
			SyntheticDemandGWh: yamlConfig.Batch.SyntheticDemandGWh,
		},
		Scenarios: make([]ScenarioData, len(yamlConfig.Scenarios)),
	}

	for i, s := range yamlConfig.Scenarios {
		config.Scenarios[i] = ScenarioData{
			Name:            s.Name,
			DaysScarcity:    s.DaysScarcity,
			DaysSurplus:     s.DaysSurplus,
			DaysVolatility:  s.DaysVolatility,
			WeeksScarcity:   s.WeeksScarcity,
			WeeksSurplus:    s.WeeksSurplus,
			WeeksVolatility: s.WeeksVolatility,
			NumAggregatedTS: s.NumAggregatedTS,
			CreatePlot:      s.CreatePlot,
		}
	}

	if err := normalize(config); err != nil {
		return nil, err
	}

	y.config = config
	return config, nil
}

// GetBatch returns the batch section, loading the file if needed
func (y *YAMLProvider) GetBatch() (*BatchData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Batch, nil
}

// GetScenarios returns the scenario records, loading the file if needed
func (y *YAMLProvider) GetScenarios() ([]ScenarioData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config.Scenarios, nil
}

// IsReadOnly returns true: YAML files are not managed through the provider
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML files
func (y *YAMLProvider) Close() error {
	return nil
}
