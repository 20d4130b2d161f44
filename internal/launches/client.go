package launches

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"starbase/internal/constants"
	"starbase/pkg/metrics"
)

// DataSource is the outbound query surface the service depends on. The
// real implementation is Client; tests substitute their own.
type DataSource interface {
	QueryLaunches(ctx context.Context, req QueryRequest) ([]LaunchDoc, error)
}

// Client issues single, synchronous queries against the launch data API.
// It holds no mutable state beyond the embedded http.Client, so it is safe
// for concurrent use to the extent net/http is.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) QueryLaunches(ctx context.Context, query QueryRequest) ([]LaunchDoc, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	url := c.baseURL + "/" + constants.LaunchQueryPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constants.HTTPStatusOKMin || resp.StatusCode >= constants.HTTPStatusOKMax {
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("api returned status: %d", resp.StatusCode)
	}

	var result struct {
		Docs []LaunchDoc `json:"docs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("success").Inc()
	return result.Docs, nil
}
