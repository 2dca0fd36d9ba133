package blockchaininfo

import (
	"context"
	"fmt"
	"strings"

	"franceMiningCounter/internal/adapters/webapi"
	"franceMiningCounter/internal/ports"
)

// DefaultBaseURL is the public blockchain.com charts API.
const DefaultBaseURL = "https://api.blockchain.info"

// Client implements ports.HashRateSource using the hash-rate chart.
type Client struct {
	api     *webapi.Client
	baseURL string
}

type chartResponse struct {
	Values []struct {
		X int64   `json:"x"`
		Y float64 `json:"y"`
	} `json:"values"`
}

// New creates a hash rate client. An empty baseURL selects DefaultBaseURL.
func New(api *webapi.Client, baseURL string) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("web API client is required for blockchain.info client")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{api: api, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// HashRateTHs returns the y value of the last sample of the chart, in TH/s.
func (c *Client) HashRateTHs(ctx context.Context) (float64, error) {
	op := "HashRateTHs"
	var resp chartResponse
	if err := c.api.GetJSON(ctx, op, c.baseURL+"/charts/hash-rate?format=json", &resp); err != nil {
		return 0, err
	}
	if len(resp.Values) == 0 {
		return 0, c.api.HandleError(ctx, fmt.Errorf("%w: values", ports.ErrMissingField), op)
	}
	return resp.Values[len(resp.Values)-1].Y, nil
}
