package config

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements Provider for SQLite scenario databases, the
// format batch configuration workbooks are converted into.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	batch, err := s.GetBatch()
	if err != nil {
		return nil, fmt.Errorf("failed to load batch config: %w", err)
	}

	scenarios, err := s.GetScenarios()
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	config := &ConfigData{
		Batch:     *batch,
		Scenarios: scenarios,
	}
	if err := normalize(config); err != nil {
		return nil, err
	}
	return config, nil
}

// GetBatch returns the batch settings row from the database
func (s *SQLiteProvider) GetBatch() (*BatchData, error) {
	query := `
		SELECT countries, weather_year, dataset_dsn, results_dsn, output_dir,
		       coverage_ceiling, synthetic_demand_gwh
		FROM batch
		WHERE name = 'default'
	`

	var batch BatchData
	var countries string
	err := s.db.QueryRow(query).Scan(
		&countries,
		&batch.WeatherYear,
		&batch.DatasetDSN,
		&batch.ResultsDSN,
		&batch.OutputDir,
		&batch.CoverageCeiling,
		&batch.SyntheticDemandGWh,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch settings: %w", err)
	}

	for _, c := range strings.Split(countries, ",") {
		if c = strings.TrimSpace(c); c != "" {
			batch.Countries = append(batch.Countries, c)
		}
	}
	return &batch, nil
}

// GetScenarios returns the scenario rows from the database
func (s *SQLiteProvider) GetScenarios() ([]ScenarioData, error) {
	query := `
		SELECT name, days_scarcity, days_surplus, days_volatility,
		       weeks_scarcity, weeks_surplus, weeks_volatility,
		       num_aggregated_ts, create_plot
		FROM scenarios
		ORDER BY name
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []ScenarioData
	for rows.Next() {
		var sc ScenarioData
		err := rows.Scan(
			&sc.Name,
			&sc.DaysScarcity,
			&sc.DaysSurplus,
			&sc.DaysVolatility,
			&sc.WeeksScarcity,
			&sc.WeeksSurplus,
			&sc.WeeksVolatility,
			&sc.NumAggregatedTS,
			&sc.CreatePlot,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		scenarios = append(scenarios, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scenario rows: %w", err)
	}

	return scenarios, nil
}

// IsReadOnly returns false: the SQLite backend can be managed in place
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
