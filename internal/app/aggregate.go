package app

import (
	"github.com/shopspring/decimal"

	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/powerlaw"
	"franceMiningCounter/internal/reward"
)

// Inputs are the fetched (or fallback) values a run is computed from.
type Inputs struct {
	Live          domain.LiveData
	DaysSinceGen  int
	HistoryPoints []domain.Point
}

// Params are the scenario and model settings of a run.
type Params struct {
	Share            float64
	StartBlock       int64
	Schedule         reward.Schedule
	Exponent         float64
	YearsAhead       int
	EfficiencyJPerTH float64
}

// Aggregate builds the result record. It performs no I/O, so equal inputs
// always produce equal results.
func Aggregate(in Inputs, p Params) domain.Result {
	schedule := p.Schedule
	if schedule == nil {
		schedule = reward.DefaultSchedule
	}

	totalMined := schedule.MinedBTC(p.StartBlock, in.Live.BlockHeight)
	franceBTC := totalMined * p.Share
	// Truncate the float product, as the page script does with Math.floor,
	// so the first refresh does not move the counter by one euro.
	totalEuros := decimal.NewFromFloat(franceBTC * in.Live.PriceEUR).IntPart()

	powerPoints, pl := powerlaw.Project(in.DaysSinceGen, in.Live.PriceEUR, p.Exponent, p.YearsAhead)

	return domain.Result{
		Share:         p.Share,
		StartBlock:    p.StartBlock,
		CurrentBlock:  in.Live.BlockHeight,
		Blocks:        in.Live.BlockHeight - p.StartBlock,
		TotalMinedBTC: totalMined,
		FranceBTC:     franceBTC,
		TotalEuros:    totalEuros,
		PriceEUR:      in.Live.PriceEUR,
		HashRateTHs:   in.Live.HashRateTHs,
		TotalMW:       NetworkMW(in.Live.HashRateTHs, p.EfficiencyJPerTH),
		PowerLaw:      pl,
		HistPoints:    in.HistoryPoints,
		PowerPoints:   powerPoints,
	}
}

// NetworkMW converts a hash rate in TH/s and an efficiency in J/TH to MW.
func NetworkMW(hashRateTHs, efficiencyJPerTH float64) float64 {
	return hashRateTHs * efficiencyJPerTH / 1_000_000
}
