package timeslice

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DayStat summarizes the coverage ratio over one calendar day (24 contiguous
// hours). Std is the sample standard deviation (Bessel's correction), matching
// gonum's stat.StdDev.
type DayStat struct {
	Day          int // day-of-year, 0..364
	Month        int // 1..12
	DayOfMonth   int // 1..31
	Hours        int // always 24
	MeanCoverage float64
	MinCoverage  float64
	MaxCoverage  float64
	StdCoverage  float64
}

// WeekStat summarizes the coverage ratio over one week. Weeks 0..50 span 168
// hours; week 51 absorbs the year's 24 remainder hours and spans 192.
type WeekStat struct {
	Week         int // 0..51
	Hours        int // 168, or 192 for the last week
	MeanCoverage float64
	MinCoverage  float64
	MaxCoverage  float64
	StdCoverage  float64
}

// DailyStats partitions the coverage series into 365 contiguous 24-hour
// blocks and summarizes each. Deterministic and pure.
func DailyStats(cov CoverageSeries) ([]DayStat, error) {
	if err := cov.Validate(); err != nil {
		return nil, err
	}

	stats := make([]DayStat, DaysPerYear)
	for d := 0; d < DaysPerYear; d++ {
		start, end := DayHours(d)
		block := []float64(cov[start:end])
		month, dayOfMonth, _ := MonthDayHour(start)

		stats[d] = DayStat{
			Day:          d,
			Month:        month,
			DayOfMonth:   dayOfMonth,
			Hours:        HoursPerDay,
			MeanCoverage: stat.Mean(block, nil),
			MinCoverage:  floats.Min(block),
			MaxCoverage:  floats.Max(block),
			StdCoverage:  stat.StdDev(block, nil),
		}
	}
	return stats, nil
}

// WeeklyStats partitions the coverage series into 52 blocks of 168 hours,
// with the last block absorbing the 24 remainder hours, and summarizes each.
func WeeklyStats(cov CoverageSeries) ([]WeekStat, error) {
	if err := cov.Validate(); err != nil {
		return nil, err
	}

	stats := make([]WeekStat, WeeksPerYear)
	for w := 0; w < WeeksPerYear; w++ {
		start, end := WeekHours(w)
		block := []float64(cov[start:end])

		stats[w] = WeekStat{
			Week:         w,
			Hours:        end - start,
			MeanCoverage: stat.Mean(block, nil),
			MinCoverage:  floats.Min(block),
			MaxCoverage:  floats.Max(block),
			StdCoverage:  stat.StdDev(block, nil),
		}
	}
	return stats, nil
}
