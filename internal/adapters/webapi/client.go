package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"franceMiningCounter/internal/ports"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 32 << 20

// Client performs single-shot GET requests against public JSON/text APIs.
// It does not retry and relies on the http.Client defaults for timeouts.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
	userAgent  string
}

// Config holds configuration for the shared HTTP client.
type Config struct {
	HTTPClient *http.Client // Optional, defaults to a zero-value http.Client
	Logger     ports.Logger
	UserAgent  string
}

// StatusError carries the HTTP status of a rejected request.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.Code)
}

// New creates a new HTTP client adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for web API client")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		logger:     cfg.Logger,
		userAgent:  cfg.UserAgent,
	}, nil
}

// GetText fetches url and returns the trimmed body.
func (c *Client) GetText(ctx context.Context, op, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", c.HandleError(ctx, err, op)
	}
	return strings.TrimSpace(string(body)), nil
}

// GetJSON fetches url and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, op, url string, v interface{}) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return c.HandleError(ctx, err, op)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return c.HandleError(ctx, fmt.Errorf("%w: %w", ports.ErrMalformedPayload, err), op)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json, text/plain")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug(ctx, "HTTP GET", map[string]interface{}{"url": url})
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// HandleError classifies err under ports.ErrFetchFailed and a more specific
// sentinel, then logs it at Debug level. Callers decide how loudly to report.
func (c *Client) HandleError(ctx context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}

	fields := map[string]interface{}{"operation": operation, "originalError": err.Error()}

	var mappedErr error
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		fields["status"] = statusErr.Code
		if statusErr.Code == http.StatusTooManyRequests {
			mappedErr = ports.ErrRateLimited
		} else {
			mappedErr = ports.ErrUnexpectedStatus
		}
	case errors.Is(err, ports.ErrMalformedPayload),
		errors.Is(err, ports.ErrMissingField),
		errors.Is(err, ports.ErrInvalidRequest):
		// Already classified by the caller.
		finalErr := fmt.Errorf("%s failed: %w: %w", operation, ports.ErrFetchFailed, err)
		c.logger.Debug(ctx, operation+" failed", fields)
		return finalErr
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
