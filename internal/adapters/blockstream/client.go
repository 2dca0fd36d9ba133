package blockstream

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"franceMiningCounter/internal/adapters/webapi"
	"franceMiningCounter/internal/ports"
)

// DefaultBaseURL is the public Esplora API served by Blockstream.
const DefaultBaseURL = "https://blockstream.info/api"

// Client implements ports.BlockSource against an Esplora endpoint.
type Client struct {
	api     *webapi.Client
	baseURL string
}

// New creates a block height client. An empty baseURL selects DefaultBaseURL.
func New(api *webapi.Client, baseURL string) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("web API client is required for Blockstream client")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{api: api, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// BlockHeight retrieves the current tip height as a plain-text integer.
func (c *Client) BlockHeight(ctx context.Context) (int64, error) {
	op := "BlockHeight"
	text, err := c.api.GetText(ctx, op, c.baseURL+"/blocks/tip/height")
	if err != nil {
		return 0, err
	}
	height, err := parseHeight(text)
	if err != nil {
		parseErr := fmt.Errorf("%w: could not parse height %q: %w", ports.ErrMalformedPayload, text, err)
		return 0, c.api.HandleError(ctx, parseErr, op)
	}
	return height, nil
}

// parseHeight reads a base-10 height. Leading zeros are trimmed so cast never
// sees an octal or hex prefix.
func parseHeight(text string) (int64, error) {
	if text == "" || strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("not a base-10 integer")
	}
	digits := strings.TrimLeft(text, "0")
	if digits == "" {
		return 0, nil
	}
	return cast.ToInt64E(digits)
}
