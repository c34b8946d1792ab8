package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/log"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// Client holds the connection to the results database
type Client struct {
	dsn    string
	DB     *gorm.DB // Exported so it can be accessed from other packages
	logger *zap.SugaredLogger
}

// NewClient creates a new results database client
func NewClient(dsn string, logger *zap.SugaredLogger) *Client {
	return &Client{
		dsn:    dsn,
		logger: logger,
	}
}

// Connect connects to the results database and migrates the run tables
func (c *Client) Connect() error {
	var err error

	// Create a logger for gorm
	dbLogger := gormlogger.New(
		zap.NewStdLog(log.GetZapLogger()),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	config := &gorm.Config{
		Logger: dbLogger,
	}

	log.Info("connecting to results database...")
	c.DB, err = gorm.Open(postgres.Open(c.dsn), config)
	if err != nil {
		log.Warn("warning: unable to create a results database connection:", err)
		return err
	}
	log.Info("results database connection successful")

	return c.DB.AutoMigrate(&RunRecord{}, &DayStatRow{}, &WeekStatRow{}, &AssignmentRow{})
}

// SaveRun persists one run's statistics and assignment in a single
// transaction and returns the assigned run id.
func (c *Client) SaveRun(ctx context.Context, country string, weatherYear int, scenario string, result *timeslice.Result) (string, error) {
	runID := uuid.NewString()

	run := RunRecord{
		RunID:          runID,
		Country:        country,
		WeatherYear:    weatherYear,
		Scenario:       scenario,
		StressPeriods:  len(result.Periods),
		DistinctLabels: result.Assignment.DistinctLabels(),
		CreatedAt:      time.Now().UTC(),
	}

	dayRows := make([]DayStatRow, len(result.DayStats))
	for i, ds := range result.DayStats {
		dayRows[i] = DayStatRow{
			RunID:        runID,
			Day:          ds.Day,
			Month:        ds.Month,
			DayOfMonth:   ds.DayOfMonth,
			MeanCoverage: ds.MeanCoverage,
			MinCoverage:  ds.MinCoverage,
			MaxCoverage:  ds.MaxCoverage,
			StdCoverage:  ds.StdCoverage,
		}
	}

	weekRows := make([]WeekStatRow, len(result.WeekStats))
	for i, ws := range result.WeekStats {
		weekRows[i] = WeekStatRow{
			RunID:        runID,
			Week:         ws.Week,
			Hours:        ws.Hours,
			MeanCoverage: ws.MeanCoverage,
			MinCoverage:  ws.MinCoverage,
			MaxCoverage:  ws.MaxCoverage,
			StdCoverage:  ws.StdCoverage,
		}
	}

	table := result.Assignment.Table()
	assignmentRows := make([]AssignmentRow, len(table))
	for i, row := range table {
		assignmentRows[i] = AssignmentRow{
			RunID:     runID,
			Hour:      row.Hour,
			Month:     row.Month,
			Day:       row.Day,
			HourOfDay: row.HourOfDay,
			Label:     row.Label,
		}
	}

	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("inserting run record: %w", err)
		}
		if err := tx.CreateInBatches(dayRows, 365).Error; err != nil {
			return fmt.Errorf("inserting day stats: %w", err)
		}
		if err := tx.CreateInBatches(weekRows, 52).Error; err != nil {
			return fmt.Errorf("inserting week stats: %w", err)
		}
		if err := tx.CreateInBatches(assignmentRows, 1000).Error; err != nil {
			return fmt.Errorf("inserting assignment rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	c.logger.Infow("run persisted", "run_id", runID, "country", country, "scenario", scenario)
	return runID, nil
}

// Close closes the underlying connection pool
func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
