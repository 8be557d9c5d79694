/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/docsmith/pkg/article"
	docerrors "github.com/NVIDIA/docsmith/pkg/errors"
	"github.com/NVIDIA/docsmith/pkg/retry"
)

const (
	// DefaultRequestTimeout bounds a single generative-content HTTP call.
	DefaultRequestTimeout = 120 * time.Second

	generatePath = "/v1/generate"
)

// Request is one generative-content call: a fixed system prompt plus the
// rendered user prompt carrying the grouped tool data.
type Request struct {
	SystemPrompt string `json:"system"`
	UserPrompt   string `json:"user"`
}

// Result carries the parsed content block, the raw response text for
// diagnostics, and the retry trace of the call.
type Result struct {
	Block *article.AIContentBlock

	// Raw is the unparsed model output. Populated on parse failure so the
	// caller can persist it to a side file.
	Raw string

	Trace retry.Trace
}

// Option is a functional option for configuring Client instances.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithModel sets the model identifier sent with each request.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithRetryPolicy overrides the retry policy. The retryable predicate is
// always replaced with the rate-limit classifier; only timing and attempt
// parameters are honored.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Client) {
		p.Retryable = isRateLimited
		c.policy = p
	}
}

// WithRateLimit sets a client-side request rate ceiling in requests per
// second, applied before each attempt.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// Client calls the generative-content endpoint with bounded retries.
// Credentials and endpoint reachability are assumed valid; the client does
// not implement authentication flows.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	limiter    *rate.Limiter
	policy     retry.Policy
}

// NewClient creates a Client for the given endpoint and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		policy:     retry.Default(isRateLimited),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate performs one generative-content call with retry/backoff and
// parses the JSON payload of the response. On parse failure the returned
// Result still carries the raw response text and the error is classified
// MALFORMED_JSON; parse failures are never retried.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	var raw string

	start := time.Now()
	trace, err := retry.Do(ctx, c.policy, func(ctx context.Context) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		var callErr error
		raw, callErr = c.call(ctx, req)
		return callErr
	})
	requestDuration.Observe(time.Since(start).Seconds())
	retryTotal.Add(float64(trace.Retries()))

	result := &Result{Trace: trace}
	if err != nil {
		requestTotal.WithLabelValues("error").Inc()
		return result, err
	}

	payload, err := ExtractPayload(raw)
	if err != nil {
		requestTotal.WithLabelValues("parse_error").Inc()
		result.Raw = raw
		return result, err
	}

	var block article.AIContentBlock
	if err := json.Unmarshal([]byte(payload), &block); err != nil {
		requestTotal.WithLabelValues("parse_error").Inc()
		result.Raw = raw
		return result, docerrors.Wrap(docerrors.ErrCodeMalformedJSON,
			"response payload does not match the content schema", err)
	}

	requestTotal.WithLabelValues("success").Inc()
	result.Block = &block
	return result, nil
}

// call performs a single HTTP request and returns the model output text.
func (c *Client) call(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(struct {
		Request
		Model string `json:"model,omitempty"`
	}{Request: req, Model: c.model})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", docerrors.Wrap(docerrors.ErrCodeGeneration, "generative-content call failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", docerrors.Wrap(docerrors.ErrCodeGeneration, "failed to read response body", err)
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		slog.Debug("generative-content call rejected",
			"status", resp.StatusCode,
			"code", docerrors.Code(err),
		)
		return "", err
	}

	content := gjson.GetBytes(respBody, "content")
	if !content.Exists() {
		return "", docerrors.New(docerrors.ErrCodeGeneration, "response is missing the content field")
	}
	return content.String(), nil
}

// classifyStatus maps HTTP outcomes onto the error taxonomy. Only
// rate-limit-class failures are retryable; auth failures and malformed
// requests fail immediately. The body is sniffed only on error statuses:
// a 200 is always a success, even when the generated content itself talks
// about quotas or rate limits.
func classifyStatus(status int, body []byte) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusTooManyRequests:
		return docerrors.Newf(docerrors.ErrCodeRateLimited, "rate limited (HTTP %d)", status)
	case looksRateLimited(body):
		return docerrors.Newf(docerrors.ErrCodeRateLimited, "rate limited (HTTP %d)", status)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return docerrors.Newf(docerrors.ErrCodeInvalidRequest, "authentication rejected (HTTP %d)", status)
	case status == http.StatusBadRequest:
		return docerrors.Newf(docerrors.ErrCodeInvalidRequest, "malformed request (HTTP %d)", status)
	default:
		return docerrors.Newf(docerrors.ErrCodeGeneration, "unexpected status HTTP %d", status)
	}
}

func looksRateLimited(body []byte) bool {
	lower := strings.ToLower(string(body))
	return strings.Contains(lower, "rate limit") || strings.Contains(lower, "quota")
}

func isRateLimited(err error) bool {
	return docerrors.HasCode(err, docerrors.ErrCodeRateLimited)
}
