package domain

// PowerLaw is the single-parameter curve y = A * day^Exponent.
type PowerLaw struct {
	A        float64
	Exponent float64
}

// Result is the aggregate produced once per run and handed to the renderer.
type Result struct {
	Share        float64 // Hypothetical share of global hash power, in (0,1]
	StartBlock   int64   // First block counted (approx. 2018-01-01)
	CurrentBlock int64   // Chain tip at generation time
	Blocks       int64   // CurrentBlock - StartBlock

	TotalMinedBTC float64 // BTC mined by the whole network over the range
	FranceBTC     float64 // TotalMinedBTC * Share
	TotalEuros    int64   // FranceBTC * PriceEUR, truncated to whole euros
	PriceEUR      float64 // Spot price used for the valuation

	HashRateTHs float64 // Network hash rate used for the power metric
	TotalMW     float64 // Whole-network power draw in MW

	PowerLaw    PowerLaw
	HistPoints  []Point // Downsampled historical prices
	PowerPoints []Point // Power-law projection
}
