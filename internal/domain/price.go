package domain

import "time"

// PriceSample represents a single observation of a historical price series.
type PriceSample struct {
	Time  time.Time // Sample timestamp as reported by the source
	Price float64   // BTC price in EUR
}

// LiveData holds the three live values the counter is built from.
type LiveData struct {
	BlockHeight int64   // Current chain tip height
	PriceEUR    float64 // Spot BTC/EUR price
	HashRateTHs float64 // Network hash rate in TH/s
}
