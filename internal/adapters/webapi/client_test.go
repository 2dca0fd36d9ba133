package webapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franceMiningCounter/internal/adapters/logger"
	"franceMiningCounter/internal/ports"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(Config{Logger: logger.NewStdLogger(logger.LevelError, io.Discard), UserAgent: "counter-test"})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresLogger(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestGetText(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = io.WriteString(w, "  916944\n")
	}))
	defer srv.Close()

	text, err := newTestClient(t).GetText(context.Background(), "GetText", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "916944", text)
	assert.Equal(t, "counter-test", gotUA)
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"value": 42.5}`)
	}))
	defer srv.Close()

	var v struct {
		Value float64 `json:"value"`
	}
	require.NoError(t, newTestClient(t).GetJSON(context.Background(), "GetJSON", srv.URL, &v))
	assert.Equal(t, 42.5, v.Value)
}

func TestGetJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "boom", ports.ErrUnexpectedStatus},
		{"not found", http.StatusNotFound, "", ports.ErrUnexpectedStatus},
		{"rate limited", http.StatusTooManyRequests, "", ports.ErrRateLimited},
		{"malformed", http.StatusOK, "{not json", ports.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			var v map[string]interface{}
			err := newTestClient(t).GetJSON(context.Background(), "GetJSON", srv.URL, &v)
			require.Error(t, err)
			assert.ErrorIs(t, err, ports.ErrFetchFailed)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "GetJSON failed")
		})
	}
}

func TestGetText_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t).GetText(ctx, "GetText", srv.URL)
	assert.ErrorIs(t, err, ports.ErrFetchFailed)
	assert.ErrorIs(t, err, ports.ErrContextCanceled)
}

func TestGetText_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(t).GetText(context.Background(), "GetText", url)
	assert.ErrorIs(t, err, ports.ErrFetchFailed)
	assert.ErrorIs(t, err, ports.ErrConnectionFailed)
}

func TestHandleError_Nil(t *testing.T) {
	assert.NoError(t, newTestClient(t).HandleError(context.Background(), nil, "op"))
}
