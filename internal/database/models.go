package database

import "time"

// RunRecord is one persisted country-scenario run, keyed by a uuid assigned
// at save time.
type RunRecord struct {
	RunID          string    `gorm:"column:run_id;primaryKey"`
	Country        string    `gorm:"column:country;index"`
	WeatherYear    int       `gorm:"column:weather_year"`
	Scenario       string    `gorm:"column:scenario;index"`
	StressPeriods  int       `gorm:"column:stress_periods"`
	DistinctLabels int       `gorm:"column:distinct_labels"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// TableName implements the GORM table naming for runs.
func (RunRecord) TableName() string { return "timeslice_runs" }

// DayStatRow is one persisted daily coverage statistic.
type DayStatRow struct {
	RunID        string  `gorm:"column:run_id;index"`
	Day          int     `gorm:"column:day"`
	Month        int     `gorm:"column:month"`
	DayOfMonth   int     `gorm:"column:day_of_month"`
	MeanCoverage float64 `gorm:"column:mean_coverage"`
	MinCoverage  float64 `gorm:"column:min_coverage"`
	MaxCoverage  float64 `gorm:"column:max_coverage"`
	StdCoverage  float64 `gorm:"column:std_coverage"`
}

// TableName implements the GORM table naming for day stats.
func (DayStatRow) TableName() string { return "timeslice_day_stats" }

// WeekStatRow is one persisted weekly coverage statistic.
type WeekStatRow struct {
	RunID        string  `gorm:"column:run_id;index"`
	Week         int     `gorm:"column:week"`
	Hours        int     `gorm:"column:hours"`
	MeanCoverage float64 `gorm:"column:mean_coverage"`
	MinCoverage  float64 `gorm:"column:min_coverage"`
	MaxCoverage  float64 `gorm:"column:max_coverage"`
	StdCoverage  float64 `gorm:"column:std_coverage"`
}

// TableName implements the GORM table naming for week stats.
func (WeekStatRow) TableName() string { return "timeslice_week_stats" }

// AssignmentRow is one hour of the final hour-to-timeslice mapping.
type AssignmentRow struct {
	RunID     string `gorm:"column:run_id;index"`
	Hour      int    `gorm:"column:hour"`
	Month     int    `gorm:"column:month"`
	Day       int    `gorm:"column:day"`
	HourOfDay int    `gorm:"column:hour_of_day"`
	Label     string `gorm:"column:label"`
}

// TableName implements the GORM table naming for assignment rows.
func (AssignmentRow) TableName() string { return "timeslice_assignments" }
