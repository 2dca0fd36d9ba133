package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/powerlaw"
	"franceMiningCounter/internal/reward"
)

func defaultParams() Params {
	return Params{
		Share:            0.03,
		StartBlock:       499500,
		Schedule:         reward.DefaultSchedule,
		Exponent:         powerlaw.DefaultExponent,
		YearsAhead:       powerlaw.DefaultYearsAhead,
		EfficiencyJPerTH: 30,
	}
}

func TestAggregate(t *testing.T) {
	in := Inputs{
		Live:          domain.LiveData{BlockHeight: 840000, PriceEUR: 100000, HashRateTHs: 6e8},
		DaysSinceGen:  6113,
		HistoryPoints: []domain.Point{{X: 2018, Y: 10000}},
	}

	res := Aggregate(in, defaultParams())

	assert.Equal(t, 0.03, res.Share)
	assert.Equal(t, int64(840000), res.CurrentBlock)
	assert.Equal(t, int64(340500), res.Blocks)
	assert.Equal(t, 2943750.0, res.TotalMinedBTC)
	assert.InDelta(t, 88312.5, res.FranceBTC, 1e-6)
	assert.Equal(t, int64(8831250000), res.TotalEuros)
	assert.Equal(t, 100000.0, res.PriceEUR)
	assert.Equal(t, 18000.0, res.TotalMW)
	assert.Equal(t, in.HistoryPoints, res.HistPoints)

	require.NotEmpty(t, res.PowerPoints)
	assert.InDelta(t, 100000.0, res.PowerPoints[0].Y, 1e-6)
	assert.Equal(t, powerlaw.DefaultExponent, res.PowerLaw.Exponent)
}

func TestAggregate_TruncatesEuros(t *testing.T) {
	in := Inputs{
		Live:         domain.LiveData{BlockHeight: 499501, PriceEUR: 97304.99},
		DaysSinceGen: 6000,
	}
	p := defaultParams()
	p.Share = 0.1

	res := Aggregate(in, p)
	// 12.5 * 0.1 = 1.25 BTC * 97304.99 = 121631.2375
	assert.Equal(t, int64(121631), res.TotalEuros)
}

func TestAggregate_TruncatesFloatProduct(t *testing.T) {
	p := defaultParams()
	p.Share = 1
	p.StartBlock = 0
	p.Schedule = reward.Schedule{{Start: 0, End: 0, Reward: 1.15}}

	res := Aggregate(Inputs{Live: domain.LiveData{BlockHeight: 1, PriceEUR: 100}, DaysSinceGen: 1}, p)
	// 1.15 * 100 is 114.99999999999999 in float64, and Math.floor gives 114 in the page.
	assert.Equal(t, 1.15, res.FranceBTC)
	assert.Equal(t, int64(114), res.TotalEuros)
}

func TestAggregate_Deterministic(t *testing.T) {
	in := Inputs{
		Live:          domain.LiveData{BlockHeight: 916944, PriceEUR: 97304, HashRateTHs: 6e8},
		DaysSinceGen:  6113,
		HistoryPoints: []domain.Point{{X: 2018, Y: 10000}, {X: 2025, Y: 97000}},
	}
	assert.Equal(t, Aggregate(in, defaultParams()), Aggregate(in, defaultParams()))
}

func TestAggregate_NilScheduleUsesDefault(t *testing.T) {
	p := defaultParams()
	p.Schedule = nil
	res := Aggregate(Inputs{Live: domain.LiveData{BlockHeight: 900000, PriceEUR: 1}, DaysSinceGen: 1}, p)
	assert.Equal(t, reward.MinedBTC(499500, 900000), res.TotalMinedBTC)
}

func TestNetworkMW(t *testing.T) {
	assert.Equal(t, 18000.0, NetworkMW(6e8, 30))
	assert.Equal(t, 0.0, NetworkMW(0, 30))
}
