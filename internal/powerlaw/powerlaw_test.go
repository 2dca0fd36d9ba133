package powerlaw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	pl := Fit(1000, 10000, 2)
	// 10000 / 1000^2
	assert.InDelta(t, 0.01, pl.A, 1e-15)
	assert.Equal(t, 2.0, pl.Exponent)
	assert.InDelta(t, 40000.0, At(pl, 2000), 1e-9)
}

func TestProject(t *testing.T) {
	points, pl := Project(1000, 10000, 2, 5)

	// 0, 30, ..., 1800 -> 61 points
	require.Len(t, points, 61)
	assert.InDelta(t, 10000.0, points[0].Y, 1e-6)
	assert.InDelta(t, 2009+1000/365.25, points[0].X, 1e-12)

	last := points[len(points)-1]
	assert.InDelta(t, 2009+2800/365.25, last.X, 1e-12)
	assert.InDelta(t, At(pl, 2800), last.Y, 1e-6)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].X, points[i-1].X, "x must increase at %d", i)
	}
}

func TestProject_ZeroHorizon(t *testing.T) {
	points, _ := Project(6000, 97304, DefaultExponent, 0)
	require.Len(t, points, 1)
	assert.InDelta(t, 97304.0, points[0].Y, 1e-6)
}

func TestDaysSinceGenesis(t *testing.T) {
	assert.Equal(t, 0, DaysSinceGenesis(Genesis))
	assert.Equal(t, 1, DaysSinceGenesis(time.Date(2009, 1, 4, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 6113, DaysSinceGenesis(time.Date(2025, 9, 29, 12, 0, 0, 0, time.UTC)))

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("timezone database unavailable")
	}
	// Local calendar date counts, not the UTC instant.
	assert.Equal(t, 1, DaysSinceGenesis(time.Date(2009, 1, 4, 0, 30, 0, 0, paris)))
}
