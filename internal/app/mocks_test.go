package app

import (
	"context"
	"errors"
	"time"

	"franceMiningCounter/internal/domain"
)

// Mock implementations
type mockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
	errors    []error
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.debugMsgs = append(m.debugMsgs, msg)
}

func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.warnMsgs = append(m.warnMsgs, msg)
}

func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	m.errorMsgs = append(m.errorMsgs, msg)
	m.errors = append(m.errors, err)
}

var errSource = errors.New("source unavailable")

type mockBlocks struct {
	height int64
	err    error
}

func (m *mockBlocks) BlockHeight(ctx context.Context) (int64, error) {
	return m.height, m.err
}

type mockPrices struct {
	spot     float64
	spotErr  error
	samples  []domain.PriceSample
	rangeErr error
	from, to time.Time
}

func (m *mockPrices) SpotPriceEUR(ctx context.Context) (float64, error) {
	return m.spot, m.spotErr
}

func (m *mockPrices) PriceRangeEUR(ctx context.Context, from, to time.Time) ([]domain.PriceSample, error) {
	m.from, m.to = from, to
	return m.samples, m.rangeErr
}

type mockHashes struct {
	hr  float64
	err error
}

func (m *mockHashes) HashRateTHs(ctx context.Context) (float64, error) {
	return m.hr, m.err
}

type mockFeed struct {
	height int64
	price  float64
	hr     float64
	hist   []domain.Point
}

func (m *mockFeed) BlockHeight(ctx context.Context) int64   { return m.height }
func (m *mockFeed) PriceEUR(ctx context.Context) float64    { return m.price }
func (m *mockFeed) HashRateTHs(ctx context.Context) float64 { return m.hr }
func (m *mockFeed) History(ctx context.Context, end time.Time, stride int) []domain.Point {
	return m.hist
}
