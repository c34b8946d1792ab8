package timeslice

import "fmt"

// supportedIntraday lists the intraday period counts that divide the 24-hour
// day evenly. num_aggregated_ts must be 4 seasons times one of these.
var supportedIntraday = []int{1, 2, 3, 4, 6, 8, 12, 24}

// intradayPeriods maps num_aggregated_ts to the per-season intraday period
// count N, requiring num = 4*N with N a supported divisor of 24.
func intradayPeriods(numAggregated int) (int, error) {
	if numAggregated <= 0 || numAggregated%4 != 0 {
		return 0, configErrorf("num_aggregated_ts %d is not a multiple of the 4 seasons", numAggregated)
	}
	n := numAggregated / 4
	for _, s := range supportedIntraday {
		if n == s {
			return n, nil
		}
	}
	return 0, configErrorf("num_aggregated_ts %d needs %d intraday periods, supported: 4,8,12,16,24,32,48,96", numAggregated, n)
}

// baseLabel derives the stable residual-timeslice label from the bucket
// coordinates. N=2 keeps the classical day (07-18) / night naming; other
// period counts use equal contiguous blocks labeled P01..PN.
func baseLabel(season Season, periods, hourOfDay int) string {
	switch periods {
	case 1:
		return season.Code()
	case 2:
		if hourOfDay >= 7 && hourOfDay <= 18 {
			return season.Code() + "_DAY"
		}
		return season.Code() + "_NIGHT"
	default:
		return fmt.Sprintf("%s_P%02d", season.Code(), hourOfDay/(HoursPerDay/periods)+1)
	}
}

// AggregateResidual assigns a seasonal/diurnal timeslice label to every hour
// not claimed by a stress period. claimed[h] marks hour h as taken; with an
// all-false claimed slice this is the classical pure-clustering mode covering
// the whole year in numAggregated buckets.
func AggregateResidual(claimed []bool, numAggregated int) (map[int]string, error) {
	if len(claimed) != HoursPerYear {
		return nil, dataErrorf("claimed mask has %d entries, want %d", len(claimed), HoursPerYear)
	}

	periods, err := intradayPeriods(numAggregated)
	if err != nil {
		return nil, err
	}

	labels := make(map[int]string)
	for h := 0; h < HoursPerYear; h++ {
		if claimed[h] {
			continue
		}
		month, _, hourOfDay := MonthDayHour(h)
		labels[h] = baseLabel(SeasonOfMonth(month), periods, hourOfDay)
	}
	return labels, nil
}
