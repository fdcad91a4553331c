// Package predict implements the HTTP client for the sentiment backend.
// The backend is a black box: the client knows the /predict and /health
// routes and nothing about the model behind them.
package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Prediction is the backend's response to a classification request.
// Only Sentiment is guaranteed; the rest is diagnostic detail the demo
// UI deliberately ignores in favor of its fixed per-label confidence.
type Prediction struct {
	Sentiment     string             `json:"sentiment"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	ModelVersion  string             `json:"model_version"`
	Timestamp     string             `json:"timestamp"`
}

// Health is the backend's health report.
type Health struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Versions  map[string]string `json:"versions"`
}

// StatusError is returned when the backend responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Detail     string // backend error message, log-only
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Client talks to the sentiment backend.
type Client struct {
	base   string
	http   *http.Client
	logger zerolog.Logger
}

// New creates a client for the backend at base. A zero timeout disables
// the client-side deadline.
func New(base string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "predict").Logger(),
	}
}

// Endpoint returns the backend base URL the client was built with.
func (c *Client) Endpoint() string { return c.base }

// Predict sends the review text as a form-encoded POST to /predict and
// decodes the JSON response. No retry: one request per call.
func (c *Client) Predict(ctx context.Context, text string) (Prediction, error) {
	form := url.Values{"text": {text}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/predict", strings.NewReader(form.Encode()))
	if err != nil {
		return Prediction{}, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Prediction{}, c.statusError(resp)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return Prediction{}, fmt.Errorf("decode predict response: %w", err)
	}
	if pred.Sentiment == "" {
		return Prediction{}, fmt.Errorf("predict response missing sentiment field")
	}

	c.logger.Debug().
		Str("sentiment", pred.Sentiment).
		Float64("confidence", pred.Confidence).
		Str("model_version", pred.ModelVersion).
		Dur("elapsed", time.Since(started)).
		Msg("prediction received")

	return pred, nil
}

// CheckHealth queries the backend /health endpoint.
func (c *Client) CheckHealth(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", nil)
	if err != nil {
		return Health{}, fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Health{}, fmt.Errorf("health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Health{}, c.statusError(resp)
	}

	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, fmt.Errorf("decode health response: %w", err)
	}
	return h, nil
}

// statusError drains the error body for the log and returns a StatusError.
// The detail never reaches the user; callers surface a generic message.
func (c *Client) statusError(resp *http.Response) error {
	detail := ""
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			detail = payload.Error
		}
	}

	c.logger.Warn().
		Int("status", resp.StatusCode).
		Str("detail", detail).
		Str("url", resp.Request.URL.Path).
		Msg("backend request failed")

	return &StatusError{StatusCode: resp.StatusCode, Detail: detail}
}
