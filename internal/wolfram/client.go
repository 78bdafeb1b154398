package wolfram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Querier defines the operations offered by the Wolfram|Alpha endpoints.
// It is implemented by *Client and can be used for testing.
type Querier interface {
	Simple(ctx context.Context, input string, opts SimpleOptions) (*SimpleResult, error)
	ShortAnswer(ctx context.Context, input string, opts AnswerOptions) (string, error)
	Spoken(ctx context.Context, input string, opts AnswerOptions) (string, error)
	Full(ctx context.Context, input string, opts FullOptions) (*FullResponse, error)
}

// Ensure Client implements Querier at compile time.
var _ Querier = (*Client)(nil)

// Endpoint paths relative to the base URL.
const (
	SimplePath = "/v1/simple"
	ResultPath = "/v1/result"
	SpokenPath = "/v1/spoken"
	QueryPath  = "/v2/query"
)

const (
	DefaultBaseURL   = "https://api.wolframalpha.com"
	defaultUserAgent = "wolfy/0.1"
	requestTimeout   = 30 * time.Second
)

// Client talks to the Wolfram|Alpha HTTP APIs. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	appID     string
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// Option customizes a Client.
type Option func(*Client) error

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		base, err := parseBaseURL(raw)
		if err != nil {
			return err
		}
		c.baseURL = base
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client is nil")
		}
		c.http = hc
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
		return nil
	}
}

// WithTimeout sets the local transport timeout. It does not affect the
// timeout values forwarded to the API.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("timeout must not be negative")
		}
		c.http.Timeout = d
		return nil
	}
}

// NewClient builds a Client for appID. An empty appID fails with
// ErrMissingAppID before anything touches the network.
func NewClient(appID string, opts ...Option) (*Client, error) {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return nil, ErrMissingAppID
	}
	base, err := parseBaseURL(DefaultBaseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		appID:   appID,
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("apply client option: %w", err)
		}
	}
	return c, nil
}

// Simple fetches the rendered result image for input. When the API has no
// image for the query it answers in plain text; that text is returned in
// SimpleResult.NoResult.
func (c *Client) Simple(ctx context.Context, input string, opts SimpleOptions) (*SimpleResult, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	resp, err := c.get(ctx, SimplePath, c.params("i", input, opts.record()))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if primaryContentType(contentType) == "text/plain" {
		return &SimpleResult{NoResult: string(data), ContentType: contentType}, nil
	}
	return &SimpleResult{
		Image:       data,
		ContentType: contentType,
		Ext:         imageExt(contentType),
	}, nil
}

// ShortAnswer returns the single line answer from /v1/result.
func (c *Client) ShortAnswer(ctx context.Context, input string, opts AnswerOptions) (string, error) {
	return c.text(ctx, ResultPath, input, opts)
}

// Spoken returns the spoken-form sentence from /v1/spoken.
func (c *Client) Spoken(ctx context.Context, input string, opts AnswerOptions) (string, error) {
	return c.text(ctx, SpokenPath, input, opts)
}

// Full runs a /v2/query request and decodes the JSON result.
func (c *Client) Full(ctx context.Context, input string, opts FullOptions) (*FullResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r := opts.record()
	r.Set("output", "json")
	resp, err := c.get(ctx, QueryPath, c.params("input", input, r))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var payload FullResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// RequestURL returns the URL a call to path would hit. It is exported for
// diagnostics; the appid is included.
func (c *Client) RequestURL(path string, params Params) string {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	reqURL.RawQuery = params.Encode()
	return reqURL.String()
}

// params assembles the full parameter list for an endpoint: appid, the
// input under inputKey, then the option record in declaration order.
func (c *Client) params(inputKey, input string, opts Record) Params {
	r := Record{{Key: "appid", Value: c.appID}, {Key: inputKey, Value: input}}
	for _, f := range opts {
		r.Set(f.Key, f.Value)
	}
	return EncodeRecord(r)
}

func (c *Client) text(ctx context.Context, path, input string, opts AnswerOptions) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	resp, err := c.get(ctx, path, c.params("i", input, opts.record()))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return string(data), nil
}

// get issues the request and returns the response only for success
// statuses. Failures are normalized into *APIError and the body is closed.
func (c *Client) get(ctx context.Context, path string, params Params) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(path, params), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		body, err := ReadErrorBody(resp)
		if err != nil {
			return nil, err
		}
		return nil, NewAPIError(body)
	}
	return resp, nil
}

func imageExt(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = primaryContentType(contentType)
	}
	_, sub, ok := strings.Cut(mediaType, "/")
	if !ok {
		return ""
	}
	return sub
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
