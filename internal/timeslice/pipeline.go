package timeslice

import (
	"go.uber.org/zap"
)

// Result bundles every artifact of one country-scenario run. All fields are
// produced once and never mutated afterwards.
type Result struct {
	Coverage   CoverageSeries
	DayStats   []DayStat
	WeekStats  []WeekStat
	Periods    []SelectedPeriod
	Assignment *TimesliceAssignment
}

// Pipeline runs the full stress-period and timeslice-assembly chain for one
// (supply, demand, scenario) triple. Every stage is a pure in-memory
// transformation; one Pipeline may serve many concurrent runs since it holds
// no per-run state.
type Pipeline struct {
	logger          *zap.SugaredLogger
	coverageCeiling float64
}

// NewPipeline creates a pipeline. A non-positive ceiling selects
// DefaultCoverageCeiling.
func NewPipeline(logger *zap.SugaredLogger, coverageCeiling float64) *Pipeline {
	if coverageCeiling <= 0 {
		coverageCeiling = DefaultCoverageCeiling
	}
	return &Pipeline{
		logger:          logger,
		coverageCeiling: coverageCeiling,
	}
}

// Run executes coverage, statistics, stress selection, residual aggregation
// and assembly. Any failed invariant aborts the run; no partial assignment is
// ever returned.
func (p *Pipeline) Run(supply, demand HourlySeries, cfg StressPeriodConfig) (*Result, error) {
	cov, err := Coverage(supply, demand, p.coverageCeiling)
	if err != nil {
		return nil, err
	}

	dayStats, err := DailyStats(cov)
	if err != nil {
		return nil, err
	}
	weekStats, err := WeeklyStats(cov)
	if err != nil {
		return nil, err
	}

	periods, err := Select(dayStats, weekStats, cfg)
	if err != nil {
		return nil, err
	}

	claimed := make([]bool, HoursPerYear)
	claimedCount := 0
	for _, period := range periods {
		for _, h := range period.Hours {
			if !claimed[h] {
				claimed[h] = true
				claimedCount++
			}
		}
	}

	base := map[int]string{}
	if claimedCount < HoursPerYear {
		base, err = AggregateResidual(claimed, cfg.NumAggregatedTS)
		if err != nil {
			return nil, err
		}
	}

	assignment, err := Assemble(periods, base)
	if err != nil {
		return nil, err
	}

	p.logger.Infow("timeslice assembly complete",
		"scenario", cfg.Name,
		"stress_periods", len(periods),
		"stress_hours", claimedCount,
		"residual_hours", HoursPerYear-claimedCount,
		"distinct_labels", assignment.DistinctLabels(),
	)

	return &Result{
		Coverage:   cov,
		DayStats:   dayStats,
		WeekStats:  weekStats,
		Periods:    periods,
		Assignment: assignment,
	}, nil
}
