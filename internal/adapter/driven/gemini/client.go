// Package gemini implements driven.TextGenerator against the Google Gemini
// generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

const (
	// DefaultBaseURL is the public Generative Language API host.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// Model is the pinned model identifier every request uses.
	Model = "gemini-2.0-flash-exp"

	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 4 << 20
)

// Compile-time interface satisfaction check.
var _ driven.TextGenerator = (*Client)(nil)

// Client issues single generateContent requests. The bound API key may be
// swapped at any time with Configure; each call uses the key that was bound
// when it started.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	secret string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host, e.g. for tests or a proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient replaces the default HTTP client. Its Timeout bounds each call.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates an unconfigured Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure binds secret, replacing any previously bound secret.
func (c *Client) Configure(secret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = strings.TrimSpace(secret)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate sends prompt to the pinned model and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) model.GenerationResult {
	c.mu.RLock()
	secret := c.secret
	c.mu.RUnlock()

	if secret == "" {
		return model.Failed(model.ErrorKindUnconfigured, "gemini: no API key configured")
	}

	text, err := c.call(ctx, secret, prompt)
	if err != nil {
		return model.Failed(model.ErrorKindRemoteFailure, redact(err.Error(), secret))
	}
	return model.Succeeded(text, model.ProvenanceAI)
}

func (c *Client) call(ctx context.Context, secret, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, Model, url.QueryEscape(secret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	var parsed generateResponse
	parseErr := json.Unmarshal(respBody, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if parseErr == nil && parsed.Error != nil {
			return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("gemini status %d", resp.StatusCode)
	}
	if parseErr != nil {
		return "", fmt.Errorf("parse response: %w", parseErr)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}

// redact strips the API key from msg. net/http embeds the full request URL,
// query string included, in transport errors.
func redact(msg, secret string) string {
	if secret == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, url.QueryEscape(secret), "REDACTED")
	return strings.ReplaceAll(msg, secret, "REDACTED")
}
