package coingecko

import (
	"context"
	"fmt"
	"strings"
	"time"

	"franceMiningCounter/internal/adapters/webapi"
	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/ports"
)

// DefaultBaseURL is the public CoinGecko v3 API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client implements ports.PriceSource using CoinGecko.
type Client struct {
	api     *webapi.Client
	baseURL string
}

type simplePriceResponse struct {
	Bitcoin *struct {
		EUR *float64 `json:"eur"`
	} `json:"bitcoin"`
}

type marketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}

// New creates a CoinGecko client. An empty baseURL selects DefaultBaseURL.
func New(api *webapi.Client, baseURL string) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("web API client is required for CoinGecko client")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{api: api, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SpotPriceEUR retrieves bitcoin.eur from the simple price endpoint.
func (c *Client) SpotPriceEUR(ctx context.Context) (float64, error) {
	op := "SpotPriceEUR"
	var resp simplePriceResponse
	if err := c.api.GetJSON(ctx, op, c.baseURL+"/simple/price?ids=bitcoin&vs_currencies=eur", &resp); err != nil {
		return 0, err
	}
	if resp.Bitcoin == nil || resp.Bitcoin.EUR == nil {
		return 0, c.api.HandleError(ctx, fmt.Errorf("%w: bitcoin.eur", ports.ErrMissingField), op)
	}
	return *resp.Bitcoin.EUR, nil
}

// PriceRangeEUR retrieves the [epoch_ms, price] series between from and to.
func (c *Client) PriceRangeEUR(ctx context.Context, from, to time.Time) ([]domain.PriceSample, error) {
	op := "PriceRangeEUR"
	url := fmt.Sprintf("%s/coins/bitcoin/market_chart/range?vs_currency=eur&from=%d&to=%d",
		c.baseURL, from.Unix(), to.Unix())

	var resp marketChartResponse
	if err := c.api.GetJSON(ctx, op, url, &resp); err != nil {
		return nil, err
	}
	if resp.Prices == nil {
		return nil, c.api.HandleError(ctx, fmt.Errorf("%w: prices", ports.ErrMissingField), op)
	}

	samples := make([]domain.PriceSample, 0, len(resp.Prices))
	for i, pair := range resp.Prices {
		if len(pair) < 2 {
			err := fmt.Errorf("%w: prices[%d] has %d elements", ports.ErrMalformedPayload, i, len(pair))
			return nil, c.api.HandleError(ctx, err, op)
		}
		samples = append(samples, domain.PriceSample{
			Time:  time.UnixMilli(int64(pair[0])),
			Price: pair[1],
		})
	}
	return samples, nil
}
