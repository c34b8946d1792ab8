// Package app wires the batch run together: configuration, data source,
// supply builder, timeslice pipeline, persistence and export.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/database"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/export"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/log"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/source"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/supply"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
	"github.com/vanditkanudia/vervestacks-timeslice/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// App represents the batch application
type App struct {
	provider config.Provider
	logger   *zap.SugaredLogger
}

// New creates a new application instance
func New(provider config.Provider, logger *zap.SugaredLogger) *App {
	return &App{
		provider: provider,
		logger:   logger,
	}
}

// Run executes every (country, scenario) pair of the batch. Runs are fully
// independent, so they execute concurrently with no shared mutable state;
// the batch fails if any run fails, after all runs finished.
func (a *App) Run(ctx context.Context) error {
	cfg, err := a.provider.LoadConfig()
	if err != nil {
		return err
	}

	src, err := a.openSource(cfg.Batch)
	if err != nil {
		return err
	}
	defer src.Close()

	var store *database.Client
	if cfg.Batch.ResultsDSN != "" {
		store = database.NewClient(cfg.Batch.ResultsDSN, a.logger)
		if err := store.Connect(); err != nil {
			return err
		}
		defer store.Close()
	}

	pipeline := timeslice.NewPipeline(a.logger, cfg.Batch.CoverageCeiling)
	builder := supply.NewBuilder(a.logger)

	type runError struct {
		country, scenario string
		err               error
	}

	var wg sync.WaitGroup
	errCh := make(chan runError, len(cfg.Batch.Countries)*len(cfg.Scenarios))

	for _, country := range cfg.Batch.Countries {
		for _, scenario := range cfg.Scenarios {
			wg.Add(1)
			go func(country string, scenario config.ScenarioData) {
				defer wg.Done()
				if err := a.runOne(ctx, src, store, builder, pipeline, cfg.Batch, country, scenario); err != nil {
					errCh <- runError{country: country, scenario: scenario.Name, err: err}
				}
			}(country, scenario)
		}
	}

	wg.Wait()
	close(errCh)

	var failures []string
	for re := range errCh {
		a.logger.Errorw("run failed", "country", re.country, "scenario", re.scenario, "error", re.err)
		failures = append(failures, fmt.Sprintf("%s/%s: %v", re.country, re.scenario, re.err))
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d runs failed: %s",
			len(failures), len(cfg.Batch.Countries)*len(cfg.Scenarios), strings.Join(failures, "; "))
	}

	log.Infof("batch complete: %d runs", len(cfg.Batch.Countries)*len(cfg.Scenarios))
	return nil
}

// runOne executes a single country-scenario run end to end.
func (a *App) runOne(
	ctx context.Context,
	src source.DataSource,
	store *database.Client,
	builder *supply.Builder,
	pipeline *timeslice.Pipeline,
	batch config.BatchData,
	country string,
	scenario config.ScenarioData,
) error {
	demand, err := src.DemandSeries(ctx, country)
	if err != nil {
		return fmt.Errorf("loading demand: %w", err)
	}

	var cells []supply.Cell
	for _, tech := range []supply.Technology{supply.TechnologySolar, supply.TechnologyWind} {
		techCells, err := src.ResourceCells(ctx, country, tech)
		if err != nil {
			return fmt.Errorf("loading %s cells: %w", tech, err)
		}
		cells = append(cells, techCells...)
	}

	mix, err := src.HistoricalMix(ctx, country)
	if err != nil {
		return fmt.Errorf("loading generation mix: %w", err)
	}

	supplySeries, err := builder.Build(demand, cells, mix)
	if err != nil {
		return fmt.Errorf("building supply: %w", err)
	}

	result, err := pipeline.Run(supplySeries, demand, scenarioConfig(scenario))
	if err != nil {
		return err
	}

	runID := ""
	if store != nil {
		runID, err = store.SaveRun(ctx, country, batch.WeatherYear, scenario.Name, result)
		if err != nil {
			return fmt.Errorf("persisting run: %w", err)
		}
	}

	return a.export(batch, country, scenario, runID, result)
}

// export writes the run's CSV tables and msgpack snapshot.
func (a *App) export(batch config.BatchData, country string, scenario config.ScenarioData, runID string, result *timeslice.Result) error {
	dir := filepath.Join(batch.OutputDir, country, scenario.Name)

	if err := export.WriteAssignmentCSV(filepath.Join(dir, "assignment.csv"), result.Assignment); err != nil {
		return err
	}
	if err := export.WriteDayStatsCSV(filepath.Join(dir, "day_stats.csv"), result.DayStats); err != nil {
		return err
	}
	if err := export.WriteWeekStatsCSV(filepath.Join(dir, "week_stats.csv"), result.WeekStats); err != nil {
		return err
	}
	if scenario.CreatePlot {
		if err := export.WriteCoverageCSV(filepath.Join(dir, "coverage.csv"), result.Coverage); err != nil {
			return err
		}
	}
	return export.WriteSnapshot(filepath.Join(dir, "run.msgpack"), country, batch.WeatherYear, scenario.Name, runID, result)
}

// openSource picks the dataset backend: Postgres when a DSN is configured,
// the deterministic synthetic source otherwise.
func (a *App) openSource(batch config.BatchData) (source.DataSource, error) {
	if batch.DatasetDSN == "" {
		log.Info("no dataset DSN configured, using synthetic source")
		return source.NewSyntheticSource(batch.Countries, batch.SyntheticDemandGWh), nil
	}

	db, err := gorm.Open(postgres.Open(batch.DatasetDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to dataset database: %w", err)
	}
	return source.NewPostgresSource(db), nil
}

// scenarioConfig converts a provider record to the engine's config type.
func scenarioConfig(s config.ScenarioData) timeslice.StressPeriodConfig {
	return timeslice.StressPeriodConfig{
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
