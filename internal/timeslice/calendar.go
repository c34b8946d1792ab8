package timeslice

// The engine runs on a fixed 365-day reference year (no leap day). Every
// hourly series is indexed 0..8759 and maps implicitly to (month,
// day-of-month, hour-of-day) through this calendar.

const (
	HoursPerYear = 8760
	DaysPerYear  = 365
	WeeksPerYear = 52
	HoursPerDay  = 24
	HoursPerWeek = 168

	// Week 51 (zero-based) absorbs the 8760 - 52*168 = 24 remainder hours.
	lastWeekHours = HoursPerYear - (WeeksPerYear-1)*HoursPerWeek
)

// monthDays holds days per month for the reference year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// monthStartDay[m] is the zero-based day-of-year on which month m+1 begins.
var monthStartDay = func() [12]int {
	var starts [12]int
	day := 0
	for m := 0; m < 12; m++ {
		starts[m] = day
		day += monthDays[m]
	}
	return starts
}()

// Season identifies one of the four meteorological seasons.
type Season int

const (
	SeasonWinter Season = iota
	SeasonSpring
	SeasonSummer
	SeasonAutumn
)

var seasonCodes = [4]string{"WIN", "SPR", "SUM", "AUT"}

// Code returns the stable three-letter season code used in timeslice labels.
func (s Season) Code() string {
	return seasonCodes[s]
}

// SeasonOfMonth maps a month (1..12) to its meteorological season
// (DJF, MAM, JJA, SON).
func SeasonOfMonth(month int) Season {
	switch month {
	case 12, 1, 2:
		return SeasonWinter
	case 3, 4, 5:
		return SeasonSpring
	case 6, 7, 8:
		return SeasonSummer
	default:
		return SeasonAutumn
	}
}

// MonthOfDay returns the month (1..12) containing the given day-of-year (0..364).
func MonthOfDay(day int) int {
	for m := 11; m >= 0; m-- {
		if day >= monthStartDay[m] {
			return m + 1
		}
	}
	return 1
}

// MonthDayHour decomposes an hour index (0..8759) into month (1..12),
// day-of-month (1..31) and hour-of-day (0..23).
func MonthDayHour(hour int) (month, day, hourOfDay int) {
	dayOfYear := hour / HoursPerDay
	hourOfDay = hour % HoursPerDay
	month = MonthOfDay(dayOfYear)
	day = dayOfYear - monthStartDay[month-1] + 1
	return month, day, hourOfDay
}

// MonthHours returns the half-open hour range [start, end) of a month (1..12).
func MonthHours(month int) (start, end int) {
	start = monthStartDay[month-1] * HoursPerDay
	end = start + monthDays[month-1]*HoursPerDay
	return start, end
}

// DayHours returns the half-open hour range [start, end) of a day-of-year (0..364).
func DayHours(day int) (start, end int) {
	start = day * HoursPerDay
	return start, start + HoursPerDay
}

// WeekHours returns the half-open hour range [start, end) of a week (0..51).
// The last week runs 192 hours instead of 168.
func WeekHours(week int) (start, end int) {
	start = week * HoursPerWeek
	if week == WeeksPerYear-1 {
		return start, start + lastWeekHours
	}
	return start, start + HoursPerWeek
}
