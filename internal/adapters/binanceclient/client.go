package binanceclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"

	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/ports"
)

const (
	// DefaultBaseURL is the public spot API.
	DefaultBaseURL = "https://api.binance.com"
	// DefaultSymbol is the BTC/EUR spot pair.
	DefaultSymbol = "BTCEUR"

	historyInterval = "1d"
	maxLimit        = 1000
)

// Client implements ports.PriceSource using the go-binance spot client.
// Only public market-data endpoints are used, so no API key is needed.
type Client struct {
	spotClient *binance.Client
	logger     ports.Logger
	symbol     string
}

// Config holds configuration specific to the Binance client adapter.
type Config struct {
	BaseURL string // Optional, defaults to DefaultBaseURL
	Symbol  string // Optional, defaults to DefaultSymbol
	Logger  ports.Logger
}

// New creates a new Binance client adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for Binance client")
	}

	client := binance.NewClient("", "")
	client.BaseURL = DefaultBaseURL
	if cfg.BaseURL != "" {
		client.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	symbol := cfg.Symbol
	if symbol == "" {
		symbol = DefaultSymbol
	}
	cfg.Logger.Debug(context.Background(), "Binance client configured", map[string]interface{}{"baseURL": client.BaseURL, "symbol": symbol})

	return &Client{
		spotClient: client,
		logger:     cfg.Logger,
		symbol:     symbol,
	}, nil
}

// handleError translates Binance API errors into standardized ports errors.
func (c *Client) handleError(ctx context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}

	fields := map[string]interface{}{"operation": operation, "originalError": err.Error()}

	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		fields["apiErrorCode"] = apiErr.Code
		fields["apiErrorMessage"] = apiErr.Message

		var mappedErr error
		switch apiErr.Code {
		case -1003: // Too many requests
			mappedErr = ports.ErrRateLimited
		case -1100, -1101, -1102, -1104, -1105, -1106, -1121, -1130: // Parameter/Request format errors
			mappedErr = ports.ErrInvalidRequest
		default:
			mappedErr = ports.ErrUnknown
		}
		c.logger.Debug(ctx, operation+" failed with API error", fields)
		return fmt.Errorf("%s failed: %w: %w: %w", operation, ports.ErrFetchFailed, mappedErr, err)
	}

	var mappedErr error
	switch {
	case errors.Is(err, ports.ErrMalformedPayload), errors.Is(err, ports.ErrMissingField):
		c.logger.Debug(ctx, operation+" failed", fields)
		return fmt.Errorf("%s failed: %w: %w", operation, ports.ErrFetchFailed, err)
	case errors.Is(err, context.DeadlineExceeded):
		mappedErr = ports.ErrTimeout
	case errors.Is(err, context.Canceled):
		mappedErr = ports.ErrContextCanceled
	case strings.Contains(err.Error(), "connection refused"),
		strings.Contains(err.Error(), "connection reset by peer"),
		strings.Contains(err.Error(), "no such host"):
		mappedErr = ports.ErrConnectionFailed
	default:
		mappedErr = ports.ErrUnknown
	}

	c.logger.Debug(ctx, operation+" failed", fields)
	return fmt.Errorf("%s failed: %w: %w: %w", operation, ports.ErrFetchFailed, mappedErr, err)
}

// SpotPriceEUR retrieves the last traded price of the configured pair.
func (c *Client) SpotPriceEUR(ctx context.Context) (float64, error) {
	op := "SpotPriceEUR"
	prices, err := c.spotClient.NewListPricesService().Symbol(c.symbol).Do(ctx)
	if err != nil {
		return 0, c.handleError(ctx, err, op)
	}
	for _, p := range prices {
		if p.Symbol != c.symbol {
			continue
		}
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			parseErr := fmt.Errorf("%w: could not parse price '%s': %w", ports.ErrMalformedPayload, p.Price, err)
			return 0, c.handleError(ctx, parseErr, op)
		}
		return price, nil
	}
	return 0, c.handleError(ctx, fmt.Errorf("%w: no price returned for symbol %s", ports.ErrMissingField, c.symbol), op)
}

// PriceRangeEUR pages through daily klines between from and to and returns
// one sample per day, stamped with the kline open time and its close price.
func (c *Client) PriceRangeEUR(ctx context.Context, from, to time.Time) ([]domain.PriceSample, error) {
	op := "PriceRangeEUR"
	var samples []domain.PriceSample
	cursor := from

	for {
		klines, err := c.spotClient.NewKlinesService().
			Symbol(c.symbol).
			Interval(historyInterval).
			StartTime(cursor.UnixMilli()).
			EndTime(to.UnixMilli()).
			Limit(maxLimit).
			Do(ctx)
		if err != nil {
			return nil, c.handleError(ctx, err, op)
		}
		if len(klines) == 0 {
			break
		}
		for _, k := range klines {
			sample, err := translateKline(k)
			if err != nil {
				return nil, c.handleError(ctx, err, op)
			}
			samples = append(samples, sample)
		}
		last := klines[len(klines)-1]
		cursor = time.UnixMilli(last.CloseTime + 1)
		if cursor.After(to) || len(klines) < maxLimit {
			break
		}
	}

	c.logger.Debug(ctx, op+" successful", map[string]interface{}{"symbol": c.symbol, "count": len(samples)})
	return samples, nil
}

func translateKline(k *binance.Kline) (domain.PriceSample, error) {
	if k == nil {
		return domain.PriceSample{}, fmt.Errorf("%w: received nil kline", ports.ErrMalformedPayload)
	}
	cls, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return domain.PriceSample{}, fmt.Errorf("%w: parsing close price '%s': %w", ports.ErrMalformedPayload, k.Close, err)
	}
	return domain.PriceSample{
		Time:  time.UnixMilli(k.OpenTime),
		Price: cls,
	}, nil
}
