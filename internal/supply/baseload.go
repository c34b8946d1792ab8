package supply

import (
	"fmt"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// Mix is the country's historical baseload generation, monthly where
// available. Monthly slices are 12 values in GWh; a nil monthly slice falls
// back to the annual total spread flat across the year. HydroProxyShare is a
// regional similar-country monthly distribution used when the country has an
// annual hydro total but no monthly data of its own.
type Mix struct {
	HydroMonthlyGWh   []float64
	HydroAnnualGWh    float64
	NuclearMonthlyGWh []float64
	NuclearAnnualGWh  float64
	HydroProxyShare   []float64
}

// DataIntegrityError mirrors the core taxonomy for malformed supply inputs.
type DataIntegrityError = timeslice.DataIntegrityError

func dataErrorf(format string, args ...interface{}) error {
	return &DataIntegrityError{Reason: fmt.Sprintf(format, args...)}
}

func (m Mix) validate() error {
	for _, s := range []struct {
		name   string
		values []float64
	}{
		{"hydro monthly", m.HydroMonthlyGWh},
		{"nuclear monthly", m.NuclearMonthlyGWh},
		{"hydro proxy share", m.HydroProxyShare},
	} {
		if s.values != nil && len(s.values) != 12 {
			return dataErrorf("%s has %d values, want 12", s.name, len(s.values))
		}
		for i, v := range s.values {
			if v < 0 {
				return dataErrorf("%s month %d is negative (%v)", s.name, i+1, v)
			}
		}
	}
	if m.HydroAnnualGWh < 0 || m.NuclearAnnualGWh < 0 {
		return dataErrorf("annual baseload totals must be non-negative")
	}
	return nil
}

// monthlyEnergy resolves the per-month GWh for one baseload source: monthly
// data verbatim, otherwise the annual total distributed by the proxy share,
// otherwise the annual total spread flat over the year's hours.
func monthlyEnergy(monthly []float64, annual float64, proxyShare []float64) [12]float64 {
	var out [12]float64
	if monthly != nil {
		copy(out[:], monthly)
		return out
	}
	if annual == 0 {
		return out
	}
	if proxyShare != nil {
		total := 0.0
		for _, v := range proxyShare {
			total += v
		}
		if total > 0 {
			for m := 0; m < 12; m++ {
				out[m] = annual * proxyShare[m] / total
			}
			return out
		}
	}
	for m := 1; m <= 12; m++ {
		start, end := timeslice.MonthHours(m)
		out[m-1] = annual * float64(end-start) / float64(timeslice.HoursPerYear)
	}
	return out
}

// baseloadSeries builds the combined hydro+nuclear hourly series in MW.
// Within each month, hydro follows the demand profile (reservoir dispatch
// tracks load) while nuclear runs flat.
func baseloadSeries(demand timeslice.HourlySeries, mix Mix) []float64 {
	hydro := monthlyEnergy(mix.HydroMonthlyGWh, mix.HydroAnnualGWh, mix.HydroProxyShare)
	nuclear := monthlyEnergy(mix.NuclearMonthlyGWh, mix.NuclearAnnualGWh, nil)

	series := make([]float64, timeslice.HoursPerYear)
	for m := 1; m <= 12; m++ {
		start, end := timeslice.MonthHours(m)
		monthHours := float64(end - start)

		monthDemand := 0.0
		for h := start; h < end; h++ {
			monthDemand += demand[h]
		}

		hydroMWh := hydro[m-1] * 1000.0
		nuclearMW := nuclear[m-1] * 1000.0 / monthHours

		for h := start; h < end; h++ {
			if monthDemand > 0 {
				series[h] += hydroMWh * demand[h] / monthDemand
			} else {
				series[h] += hydroMWh / monthHours
			}
			series[h] += nuclearMW
		}
	}
	return series
}
