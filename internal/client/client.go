// Package client talks to the submission API over HTTP. Client satisfies
// form.Submitter so the Form Controller can drive a remote backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"seo-audit-backend/internal/domain"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	SubmitPath     = "/v1/submissions"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts the request and decodes the Result from the body whatever the
// status code. An error means no Result could be read.
func (c *Client) Submit(ctx context.Context, sr *domain.SubmissionRequest) (domain.SubmissionResult, error) {
	payload, err := json.Marshal(sr)
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("submit encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewReader(payload))
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("submit: %w", err)
	}
	defer resp.Body.Close()

	var result domain.SubmissionResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&result); err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("submit decode (status %d): %w", resp.StatusCode, err)
	}
	return result, nil
}
