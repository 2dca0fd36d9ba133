package history

import (
	"time"

	"github.com/jinzhu/now"

	"franceMiningCounter/internal/domain"
)

const (
	// WeeklyStride keeps one daily sample in seven.
	WeeklyStride = 7
	// MonthlyStride keeps one daily sample in thirty.
	MonthlyStride = 30
)

// RangeStart is the first instant of the historical series (2018-01-01 UTC).
var RangeStart = time.Unix(1514764800, 0).UTC()

// RangeEnd returns local midnight of the day containing t.
func RangeEnd(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// FractionalYear maps the calendar date of t to year + (yday-1)/365.25.
func FractionalYear(t time.Time) float64 {
	return float64(t.Year()) + float64(t.YearDay()-1)/365.25
}

// Downsample keeps samples[0], samples[stride], samples[2*stride]... and
// converts each to a chart point. A stride below 1 keeps every sample.
func Downsample(samples []domain.PriceSample, stride int) []domain.Point {
	if stride < 1 {
		stride = 1
	}
	points := make([]domain.Point, 0, len(samples)/stride+1)
	for i := 0; i < len(samples); i += stride {
		points = append(points, domain.Point{
			X: FractionalYear(samples[i].Time),
			Y: samples[i].Price,
		})
	}
	return points
}

// FallbackSeries is the two-point line drawn when the history is unavailable.
func FallbackSeries() []domain.Point {
	return []domain.Point{
		{X: 2018.0, Y: 10000},
		{X: 2025.0, Y: 97000},
	}
}
