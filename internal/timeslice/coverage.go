package timeslice

// DefaultCoverageCeiling caps the coverage ratio for hours whose demand is
// zero while supply is positive. Without the cap a single zero-demand hour
// blows up every downstream statistic; 10.0 is a modeling choice meaning
// "supply at least ten times demand", not an observed ratio.
const DefaultCoverageCeiling = 10.0

// Coverage divides supply by demand hour-by-hour. Where demand is zero the
// ratio is undefined: it is set to 0 when supply is also zero, otherwise it
// is treated as unbounded surplus and capped at ceiling. Pure function, no
// side effects.
func Coverage(supply, demand HourlySeries, ceiling float64) (CoverageSeries, error) {
	if err := supply.Validate(); err != nil {
		return nil, err
	}
	if err := demand.Validate(); err != nil {
		return nil, err
	}
	if ceiling <= 0 {
		return nil, configErrorf("coverage ceiling must be positive, got %v", ceiling)
	}

	allZero := true
	for h := 0; h < HoursPerYear; h++ {
		if supply[h] < 0 {
			return nil, dataErrorf("supply has negative value %v at hour %d", supply[h], h)
		}
		if demand[h] < 0 {
			return nil, dataErrorf("demand has negative value %v at hour %d", demand[h], h)
		}
		if demand[h] != 0 {
			allZero = false
		}
	}
	if allZero {
		return nil, dataErrorf("demand series is uniformly zero")
	}

	cov := make(CoverageSeries, HoursPerYear)
	for h := 0; h < HoursPerYear; h++ {
		switch {
		case demand[h] != 0:
			cov[h] = supply[h] / demand[h]
		case supply[h] == 0:
			cov[h] = 0
		default:
			cov[h] = ceiling
		}
	}
	return cov, nil
}
