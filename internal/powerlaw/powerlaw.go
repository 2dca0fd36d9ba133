package powerlaw

import (
	"math"
	"time"

	"franceMiningCounter/internal/domain"
)

const (
	// DefaultExponent is the slope of the log-log price trend.
	DefaultExponent = 5.8
	// DefaultYearsAhead is how far the projection extends past today.
	DefaultYearsAhead = 5
	// StepDays is the spacing between projected points.
	StepDays = 30
	// GenesisYear anchors the fractional-year axis of the projection.
	GenesisYear = 2009
	daysPerYear = 365.25
)

// Genesis is the calendar date of the Bitcoin genesis block.
var Genesis = time.Date(2009, time.January, 3, 0, 0, 0, 0, time.UTC)

// DaysSinceGenesis counts whole days from Genesis to the calendar date of t,
// taken in t's own location.
func DaysSinceGenesis(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Genesis).Hours() / 24)
}

// Fit calibrates A so that the curve passes through (days, price).
func Fit(days int, price, exponent float64) domain.PowerLaw {
	return domain.PowerLaw{
		A:        price / math.Pow(float64(days), exponent),
		Exponent: exponent,
	}
}

// At evaluates the curve at the given day count.
func At(pl domain.PowerLaw, day int) float64 {
	return pl.A * math.Pow(float64(day), pl.Exponent)
}

// Project fits the curve on (days, price) and returns one point every
// StepDays from days up to days + yearsAhead*365 inclusive.
func Project(days int, price, exponent float64, yearsAhead int) ([]domain.Point, domain.PowerLaw) {
	pl := Fit(days, price, exponent)
	horizon := yearsAhead * 365
	points := make([]domain.Point, 0, horizon/StepDays+1)
	for i := 0; i <= horizon; i += StepDays {
		day := days + i
		points = append(points, domain.Point{
			X: GenesisYear + float64(day)/daysPerYear,
			Y: At(pl, day),
		})
	}
	return points, pl
}
