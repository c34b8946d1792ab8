package timeslice

// StressPeriodConfig is one named scenario: how many stress days and weeks to
// select per category, and how many seasonal/diurnal buckets the residual
// hours are aggregated into. How these records are stored (YAML, SQLite,
// spreadsheet) is a collaborator concern; the engine only sees this record.
type StressPeriodConfig struct {
	Name            string
	DaysScarcity    int
	DaysSurplus     int
	DaysVolatility  int
	WeeksScarcity   int
	WeeksSurplus    int
	WeeksVolatility int

	// NumAggregatedTS is the total number of residual timeslice buckets,
	// spread evenly across the four seasons. Zero is only valid for a
	// pure-stress configuration that claims all 8760 hours.
	NumAggregatedTS int

	// CreatePlot requests per-run coverage plot data alongside the assignment.
	CreatePlot bool
}

// totalDays and totalWeeks are the period counts summed across categories.
func (c StressPeriodConfig) totalDays() int {
	return c.DaysScarcity + c.DaysSurplus + c.DaysVolatility
}

func (c StressPeriodConfig) totalWeeks() int {
	return c.WeeksScarcity + c.WeeksSurplus + c.WeeksVolatility
}

// Validate applies the semantic checks that do not depend on the statistics:
// non-negative counts, per-granularity availability, and the claimed-hour
// bound. Day/week hour overlap can reduce availability further; the selector
// re-checks against the actual candidate pools.
func (c StressPeriodConfig) Validate() error {
	for _, count := range []struct {
		name string
		n    int
	}{
		{"days_scarcity", c.DaysScarcity},
		{"days_surplus", c.DaysSurplus},
		{"days_volatility", c.DaysVolatility},
		{"weeks_scarcity", c.WeeksScarcity},
		{"weeks_surplus", c.WeeksSurplus},
		{"weeks_volatility", c.WeeksVolatility},
	} {
		if count.n < 0 {
			return configErrorf("%s: %s is negative (%d)", c.Name, count.name, count.n)
		}
	}

	if c.totalDays() > DaysPerYear {
		return configErrorf("%s: %d stress days requested, only %d days exist", c.Name, c.totalDays(), DaysPerYear)
	}
	if c.totalWeeks() > WeeksPerYear {
		return configErrorf("%s: %d stress weeks requested, only %d weeks exist", c.Name, c.totalWeeks(), WeeksPerYear)
	}

	// Upper bound on claimed hours, ignoring day/week overlap (overlapping
	// days are substituted by the selector, never double-counted).
	claimed := c.totalDays()*HoursPerDay + c.totalWeeks()*HoursPerWeek
	if c.totalWeeks() == WeeksPerYear {
		claimed += lastWeekHours - HoursPerWeek
	}
	if claimed > HoursPerYear {
		return configErrorf("%s: stress periods would claim %d hours, year has %d", c.Name, claimed, HoursPerYear)
	}
	if claimed == HoursPerYear && c.NumAggregatedTS != 0 {
		return configErrorf("%s: stress periods claim the whole year but num_aggregated_ts is %d, want 0", c.Name, c.NumAggregatedTS)
	}
	if claimed < HoursPerYear && c.NumAggregatedTS == 0 {
		return configErrorf("%s: residual hours exist but num_aggregated_ts is 0", c.Name)
	}

	if c.NumAggregatedTS != 0 {
		if _, err := intradayPeriods(c.NumAggregatedTS); err != nil {
			return err
		}
	}
	return nil
}
