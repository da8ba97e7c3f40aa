// Package contact implements the contact form submission flow and the
// client that forwards submissions to the third-party form endpoint.
package contact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/metrics"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

// DefaultEndpoint is the form-handling endpoint the site posts to.
const DefaultEndpoint = "https://formspree.io/f/mlgdkdqy"

// maxErrorBody bounds how much of a rejection body is kept.
const maxErrorBody = 1024

// ClientConfig holds form endpoint configuration.
type ClientConfig struct {
	Endpoint   string       // Form endpoint URL
	HTTPClient *http.Client // Optional, defaults to a client without timeout
}

// ValidateEndpoint checks that raw is an absolute http(s) URL.
func ValidateEndpoint(raw string) error {
	if raw == "" {
		return fmt.Errorf("endpoint URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse endpoint URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("endpoint URL must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint URL must include a host")
	}
	return nil
}

// Validate validates the client configuration.
func (c *ClientConfig) Validate() error {
	return ValidateEndpoint(c.Endpoint)
}

// Client posts contact submissions to the form endpoint. It makes exactly
// one attempt per call and never retries.
type Client struct {
	mu         sync.RWMutex
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new form endpoint client.
func NewClient(cfg ClientConfig, logger *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid contact client config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// No Timeout: the request waits for the transport to settle or for
		// the caller's context to end.
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Endpoint returns the current endpoint URL.
func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// SetEndpoint swaps the endpoint URL, used on config reload.
func (c *Client) SetEndpoint(endpoint string) error {
	if err := ValidateEndpoint(endpoint); err != nil {
		return err
	}
	c.mu.Lock()
	c.endpoint = endpoint
	c.mu.Unlock()
	return nil
}

// Send posts the input as form-encoded data. It returns a *RejectedError
// for non-2xx answers and a *TransportError when no answer arrived.
func (c *Client) Send(ctx context.Context, input models.ContactInput) error {
	endpoint := c.Endpoint()
	body := input.Form().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ContactSubmissionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("transport").Inc()
		c.logger.Warn("contact submission transport failure", zap.Error(err))
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		c.logger.Warn("contact submission rejected",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(data)))
		return &RejectedError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	metrics.ContactSubmissionsTotal.WithLabelValues("success").Inc()
	c.logger.Debug("contact submission accepted",
		zap.Int("status", resp.StatusCode),
		zap.Int("message_len", len(input.Message)))
	return nil
}
