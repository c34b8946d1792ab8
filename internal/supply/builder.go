package supply

import (
	"go.uber.org/zap"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// Builder assembles the hourly supply series for one country-year:
// demand-shaped hydro and flat nuclear baseload, plus economically-selected
// solar and wind resource cells covering the residual demand.
type Builder struct {
	logger *zap.SugaredLogger
}

// NewBuilder creates a supply builder.
func NewBuilder(logger *zap.SugaredLogger) *Builder {
	return &Builder{logger: logger}
}

// Build constructs the supply series in MW. An empty cell collection is a
// valid real-world case (hydro-dominated countries) and yields the baseload
// series without error.
func (b *Builder) Build(demand timeslice.HourlySeries, cells []Cell, mix Mix) (timeslice.HourlySeries, error) {
	if err := demand.Validate(); err != nil {
		return nil, err
	}
	if err := mix.validate(); err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := c.validate(); err != nil {
			return nil, err
		}
	}

	series := baseloadSeries(demand, mix)

	baseloadGWh := 0.0
	for _, v := range series {
		baseloadGWh += v / 1000.0
	}
	demandGWh := demand.AnnualTotal() / 1000.0

	residualGWh := demandGWh - baseloadGWh
	if residualGWh <= 0 {
		b.logger.Debugw("baseload meets annual demand, no renewable build-out",
			"demand_gwh", demandGWh, "baseload_gwh", baseloadGWh)
		return timeslice.NewHourlySeries(series)
	}

	byTech := map[Technology][]Cell{}
	for _, c := range cells {
		byTech[c.Technology] = append(byTech[c.Technology], c)
	}

	relevant := map[Technology][]Cell{
		TechnologySolar: relevantCells(byTech[TechnologySolar], residualGWh),
		TechnologyWind:  relevantCells(byTech[TechnologyWind], residualGWh),
	}
	scores := map[Technology]float64{
		TechnologySolar: technologyScore(relevant[TechnologySolar]),
		TechnologyWind:  technologyScore(relevant[TechnologyWind]),
	}

	totalScore := scores[TechnologySolar] + scores[TechnologyWind]
	if totalScore == 0 {
		b.logger.Debugw("no viable resource cells, returning baseload-only supply",
			"residual_gwh", residualGWh)
		return timeslice.NewHourlySeries(series)
	}

	for _, tech := range []Technology{TechnologySolar, TechnologyWind} {
		budgetGWh := residualGWh * scores[tech] / totalScore
		allocated := b.fillBudget(series, relevant[tech], budgetGWh)
		b.logger.Debugw("allocated technology budget",
			"technology", tech,
			"budget_gwh", budgetGWh,
			"allocated_gwh", allocated,
			"relevant_cells", len(relevant[tech]),
		)
	}

	return timeslice.NewHourlySeries(series)
}

// fillBudget selects cheapest-first cells until the budget is met, pro-rating
// the final cell, and adds each selected cell's hourly generation (annual
// energy times its normalized shape fraction) to the series. Returns the
// energy actually allocated in GWh.
func (b *Builder) fillBudget(series []float64, relevant []Cell, budgetGWh float64) float64 {
	remaining := budgetGWh
	allocated := 0.0

	for _, c := range relevant {
		if remaining <= 0 {
			break
		}
		takeGWh := c.PotentialGWh
		if takeGWh > remaining {
			takeGWh = remaining
		}

		annualMWh := takeGWh * 1000.0
		for h, fraction := range c.shapeFractions() {
			series[h] += annualMWh * fraction
		}

		remaining -= takeGWh
		allocated += takeGWh
	}
	return allocated
}
