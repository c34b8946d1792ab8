package source

import (
	"context"
	"fmt"
	"math"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/supply"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// MemorySource serves fixed per-country inputs from memory. Used by tests
// and by the CLI's synthetic demo mode.
type MemorySource struct {
	Demand map[string]timeslice.HourlySeries
	Cells  map[string][]supply.Cell
	Mixes  map[string]supply.Mix
}

// NewMemorySource creates an empty in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		Demand: make(map[string]timeslice.HourlySeries),
		Cells:  make(map[string][]supply.Cell),
		Mixes:  make(map[string]supply.Mix),
	}
}

// DemandSeries returns the stored demand series for the country.
func (m *MemorySource) DemandSeries(_ context.Context, country string) (timeslice.HourlySeries, error) {
	demand, ok := m.Demand[country]
	if !ok {
		return nil, fmt.Errorf("no demand series for country %q", country)
	}
	return demand, nil
}

// ResourceCells returns the stored cells of one technology for the country.
func (m *MemorySource) ResourceCells(_ context.Context, country string, tech supply.Technology) ([]supply.Cell, error) {
	var cells []supply.Cell
	for _, c := range m.Cells[country] {
		if c.Technology == tech {
			cells = append(cells, c)
		}
	}
	return cells, nil
}

// HistoricalMix returns the stored mix for the country. A country with no
// recorded mix gets a zero mix, which is valid (no baseload).
func (m *MemorySource) HistoricalMix(_ context.Context, country string) (supply.Mix, error) {
	return m.Mixes[country], nil
}

// Close is a no-op for the in-memory source.
func (m *MemorySource) Close() error {
	return nil
}

// NewSyntheticSource builds a self-contained demo source for the given
// countries: a double-peaked daily demand profile with seasonal swing, one
// cheap and one expensive cell per technology, and a modest hydro/nuclear
// baseload. Deterministic, no randomness.
func NewSyntheticSource(countries []string, annualDemandGWh float64) *MemorySource {
	src := NewMemorySource()

	for _, country := range countries {
		demand := make([]float64, timeslice.HoursPerYear)
		for h := 0; h < timeslice.HoursPerYear; h++ {
			day := h / timeslice.HoursPerDay
			hourOfDay := h % timeslice.HoursPerDay
			seasonal := 1.0 + 0.2*math.Cos(2*math.Pi*float64(day)/365.0)
			diurnal := 1.0 + 0.3*math.Sin(2*math.Pi*float64(hourOfDay-6)/24.0)
			demand[h] = seasonal * diurnal
		}
		total := 0.0
		for _, v := range demand {
			total += v
		}
		scale := annualDemandGWh * 1000.0 / total
		for h := range demand {
			demand[h] *= scale
		}
		src.Demand[country] = demand

		solarShape := make([]float64, timeslice.HoursPerYear)
		windShape := make([]float64, timeslice.HoursPerYear)
		for h := 0; h < timeslice.HoursPerYear; h++ {
			day := h / timeslice.HoursPerDay
			hourOfDay := h % timeslice.HoursPerDay
			if hourOfDay >= 6 && hourOfDay <= 19 {
				solarShape[h] = math.Sin(math.Pi * float64(hourOfDay-6) / 13.0)
			}
			windShape[h] = 0.6 + 0.4*math.Sin(2*math.Pi*float64(day)/365.0+math.Pi)
		}

		src.Cells[country] = []supply.Cell{
			{Technology: supply.TechnologySolar, LCOE: 38, Shape: solarShape, PotentialGWh: annualDemandGWh * 0.4},
			{Technology: supply.TechnologySolar, LCOE: 55, Shape: solarShape, PotentialGWh: annualDemandGWh * 0.6},
			{Technology: supply.TechnologyWind, LCOE: 44, Shape: windShape, PotentialGWh: annualDemandGWh * 0.5},
			{Technology: supply.TechnologyWind, LCOE: 70, Shape: windShape, PotentialGWh: annualDemandGWh * 0.7},
		}
		src.Mixes[country] = supply.Mix{
			HydroAnnualGWh:   annualDemandGWh * 0.15,
			NuclearAnnualGWh: annualDemandGWh * 0.10,
		}
	}
	return src
}
