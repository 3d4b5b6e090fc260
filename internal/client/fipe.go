package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// TransportError wraps a network or IO failure while talking to the FIPE API
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FipeClient handles communication with the FIPE API
type FipeClient struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFipeClient creates a new FIPE API client. A nil httpClient uses a
// client without timeout.
func NewFipeClient(httpClient *http.Client, logger *slog.Logger) *FipeClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FipeClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Fetch performs a single GET and returns the response body as text.
// The status code is not inspected: error bodies are returned like any other.
func (c *FipeClient) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("fipe request", "url", url, "status", resp.StatusCode, "bytes", len(body))

	return string(body), nil
}
