// Package rest talks to a gallery endpoint over HTTP: it lists variations,
// reports the current one and applies a chosen config.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
	swatcherrors "github.com/alexisbeaulieu97/swatchbook/pkg/errors"
)

const (
	// DefaultTimeout applies when Options.Timeout is zero.
	DefaultTimeout = 10 * time.Second
	// UserAgentName prefixes the User-Agent header.
	UserAgentName = "swatchbook"

	variationsPath = "/variations"
	currentPath    = "/current"
	applyPath      = "/apply"
)

// Options configures a Client.
type Options struct {
	Timeout time.Duration
	// Version is appended to the User-Agent.
	Version string
	// Headers are sent with every request.
	Headers map[string]string
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client is both a VariationSource and an ApplySink for one endpoint.
type Client struct {
	base      string
	http      *http.Client
	userAgent string
	headers   map[string]string
}

var (
	_ ports.VariationSource = (*Client)(nil)
	_ ports.ApplySink       = (*Client)(nil)
)

// New creates a Client for the endpoint rooted at baseURL.
func New(baseURL string, opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	ua := UserAgentName
	if opts.Version != "" {
		ua = fmt.Sprintf("%s/%s", UserAgentName, opts.Version)
	}
	return &Client{
		base:      strings.TrimRight(baseURL, "/"),
		http:      client,
		userAgent: ua,
		headers:   opts.Headers,
	}
}

// FetchVariations GETs /variations and decodes {"variations": [...]}.
func (c *Client) FetchVariations(ctx context.Context) ([]variation.Variation, error) {
	data, err := c.do(ctx, http.MethodGet, variationsPath, nil)
	if err != nil {
		return nil, swatcherrors.NewFetchError(c.base+variationsPath, err)
	}
	vs, err := variation.DecodeRecords(c.base+variationsPath, data)
	if err != nil {
		return nil, swatcherrors.NewFetchError(c.base+variationsPath, err)
	}
	return vs, nil
}

type currentResponse struct {
	Current any `json:"current"`
}

// FetchCurrent GETs /current. A null or non-string value means no variation
// is active.
func (c *Client) FetchCurrent(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodGet, currentPath, nil)
	if err != nil {
		return "", swatcherrors.NewFetchError(c.base+currentPath, err)
	}
	var resp currentResponse
	if err := decodeJSON(data, &resp); err != nil {
		return "", swatcherrors.NewFetchError(c.base+currentPath, swatcherrors.NewParseError(currentPath, 0, err))
	}
	current, _ := resp.Current.(string)
	return current, nil
}

type applyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PostID  any    `json:"post_id"`
}

// Apply POSTs the variation's full config to /apply.
func (c *Client) Apply(ctx context.Context, v variation.Variation) (ports.ApplyResult, error) {
	raw := v.Config.Raw
	if raw == nil {
		raw = map[string]any{}
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), fmt.Errorf("encode config: %w", err))
	}

	data, err := c.do(ctx, http.MethodPost, applyPath, body)
	if err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), err)
	}

	var resp applyResponse
	if err := decodeJSON(data, &resp); err != nil {
		return ports.ApplyResult{}, swatcherrors.NewApplyError(v.Key(), fmt.Errorf("decode response: %w", err))
	}
	result := ports.ApplyResult{Success: resp.Success, Message: resp.Message}
	if resp.PostID != nil {
		result.Reference = fmt.Sprint(resp.PostID)
	}
	if !resp.Success && result.Message == "" {
		result.Message = strings.TrimSpace(string(data))
	}
	return result, nil
}

// decodeJSON keeps numeric ids exact instead of widening them to float64.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}
