// Package gemini is the outbound adapter to the Gemini generateContent REST
// API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"insights-api/internal/core/domain"
	"insights-api/internal/telemetry"
)

// DefaultEndpoint is the generateContent URL used when none is configured.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

const defaultTimeout = 30 * time.Second

// Options configures a Client. A disabled client or one without an API key
// rejects every call with domain.ErrConfiguration.
type Options struct {
	Enabled  bool
	APIKey   string
	Endpoint string
	Timeout  time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *telemetry.Metrics
}

// Client implements port.TextGenerator. It performs exactly one request per
// call and never retries.
type Client struct {
	enabled  bool
	apiKey   string
	endpoint string
	http     *http.Client
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// New builds a Client from opts, filling in the default endpoint and
// timeout.
func New(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Client{
		enabled:  opts.Enabled,
		apiKey:   opts.APIKey,
		endpoint: opts.Endpoint,
		http:     opts.HTTPClient,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
}

// Enabled reports whether calls will reach the network.
func (c *Client) Enabled() bool {
	return c.enabled && c.apiKey != ""
}

// Generate sends prompt and the JSON encoding of data to the model and
// returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string, data any) (string, error) {
	if !c.Enabled() {
		c.metrics.AIGeneration(telemetry.OutcomeDisabled)
		return "", fmt.Errorf("gemini: %w", domain.ErrConfiguration)
	}

	full, err := BuildPrompt(prompt, data)
	if err != nil {
		return "", err
	}

	start := time.Now()
	text, err := c.call(ctx, full)
	if err != nil {
		outcome := telemetry.OutcomeUpstream
		if ctx.Err() != nil {
			outcome = telemetry.OutcomeCanceled
		}
		c.metrics.AIGeneration(outcome)
		c.logger.WarnContext(ctx, "gemini request failed",
			slog.Any("error", err),
			slog.Duration("elapsed", time.Since(start)))
		return "", err
	}

	c.metrics.AIGeneration(telemetry.OutcomeOK)
	c.logger.DebugContext(ctx, "gemini request completed",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("chars", len(text)))
	return text, nil
}

func (c *Client) call(ctx context.Context, prompt string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("gemini: parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	body, err := json.Marshal(newRequest(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.UpstreamError{Reason: "request failed", Err: redact(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The body stays in the log; callers may show the error to end users.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WarnContext(ctx, "gemini error response",
			slog.Int("status", resp.StatusCode),
			slog.String("body", strings.TrimSpace(string(snippet))))
		return "", &domain.UpstreamError{StatusCode: resp.StatusCode}
	}

	var out response
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &domain.UpstreamError{Reason: "malformed response", Err: err}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", &domain.UpstreamError{Reason: "malformed response: no candidate text"}
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// redact drops the request URL, which carries the API key, from transport
// errors.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
