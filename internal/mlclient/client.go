// Package mlclient talks to the ML service on behalf of the gateway.
package mlclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wellness_gauntlet/internal/model"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	forecastPath        = "/forecast"
	recommendationsPath = "/recommendations"

	maxErrorBody = 4 << 10
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Recorder receives per-call metrics. A nil Recorder is allowed.
type Recorder interface {
	ObserveMLCall(endpoint string, err error, duration time.Duration)
}

// StatusError is returned when the ML service answers with a non-2xx code.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ml service returned %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL  string
	http     *http.Client
	recorder Recorder
}

func New(cfg Config, recorder Recorder) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		recorder: recorder,
	}
}

type forecastRequest struct {
	UserID string `json:"user_id"`
}

type forecastPoint struct {
	Date             string `json:"date"`
	PredictedBalance int    `json:"predicted_balance"`
}

type recommendationsRequest struct {
	UserID     string `json:"user_id"`
	WeakestGem string `json:"weakest_gem"`
}

type quest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (c *Client) Forecast(ctx context.Context, userID string) ([]model.ForecastPoint, error) {
	var resp []forecastPoint
	if err := c.post(ctx, forecastPath, forecastRequest{UserID: userID}, &resp); err != nil {
		return nil, err
	}

	out := make([]model.ForecastPoint, len(resp))
	for i, p := range resp {
		date, err := time.Parse(time.DateOnly, p.Date)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid forecast date %q", p.Date)
		}
		out[i] = model.ForecastPoint{
			Date:             date,
			PredictedBalance: p.PredictedBalance,
		}
	}
	return out, nil
}

func (c *Client) Recommendations(ctx context.Context, userID string, gem model.Gem) ([]model.Quest, error) {
	var resp []quest
	req := recommendationsRequest{UserID: userID, WeakestGem: string(gem)}
	if err := c.post(ctx, recommendationsPath, req, &resp); err != nil {
		return nil, err
	}

	out := make([]model.Quest, len(resp))
	for i, q := range resp {
		out[i] = model.Quest{
			ID:          q.ID,
			Name:        q.Name,
			Description: q.Description,
			Category:    model.Gem(q.Category),
		}
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		if c.recorder != nil {
			c.recorder.ObserveMLCall(strings.TrimPrefix(path, "/"), err, time.Since(start))
		}
	}()

	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "call %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s response", path)
	}
	return nil
}
