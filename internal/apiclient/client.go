package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"society-admin-svc/internal/models"
	"society-admin-svc/pkg/logger"
)

// DefaultTimeout is the request timeout used when Config.Timeout is zero
const DefaultTimeout = 120 * time.Second

// Config holds the client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Envelope is the undecoded { message, result } wrapper of a response
type Envelope = models.Envelope[json.RawMessage]

// Request describes one call to the society API. Form takes precedence over Body.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Form   *MultipartForm
}

// Client is the shared HTTP client of the society API
type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    Storage
	navigator  Navigator
	logger     *logger.Logger
}

// Option configures a Client
type Option func(*Client)

// WithStorage sets the default session storage
func WithStorage(storage Storage) Option {
	return func(c *Client) {
		c.storage = storage
	}
}

// WithNavigator sets the default navigator
func WithNavigator(navigator Navigator) Option {
	return func(c *Client) {
		c.navigator = navigator
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// New creates a new society API client
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and decodes the envelope result into out when out is not nil.
// Transport and response failures are returned as *APIError. A 401 or 403 also evicts the session keys
// from storage and navigates to RootPath before returning.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) (*Envelope, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	storage, navigator := c.session(ctx)
	if token := c.token(ctx, storage); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		observe(httpReq.Method, 0, started)
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"method": httpReq.Method,
			"path":   req.Path,
		}).Error("Society API request failed")
		return nil, &APIError{Message: DefaultErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	observe(httpReq.Method, resp.StatusCode, started)
	if err != nil {
		return nil, &APIError{Message: DefaultErrorMessage, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.WithFields(map[string]interface{}{
		"method":      httpReq.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("Society API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newResponseError(resp.StatusCode, body)
		if apiErr.IsAuthFailure() {
			c.logger.WithField("status_code", resp.StatusCode).Warn("Society API rejected the session, logging out")
			c.teardown(ctx, storage, navigator)
		}
		return nil, apiErr
	}

	envelope := &Envelope{}
	if len(bytes.TrimSpace(body)) == 0 {
		return envelope, nil
	}
	if err := json.Unmarshal(body, envelope); err != nil {
		return nil, &APIError{
			Message: DefaultErrorMessage,
			Status:  resp.StatusCode,
			Data:    string(body),
			Err:     fmt.Errorf("failed to parse response envelope: %w", err),
		}
	}

	if out != nil && len(envelope.Result) > 0 && string(envelope.Result) != "null" {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return nil, &APIError{
				Message: DefaultErrorMessage,
				Status:  resp.StatusCode,
				Data:    string(envelope.Result),
				Err:     fmt.Errorf("failed to parse response result: %w", err),
			}
		}
	}

	return envelope, nil
}

// Get sends a GET request
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post sends a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Put sends a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Patch sends a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

// Delete sends a DELETE request
func (c *Client) Delete(ctx context.Context, path string, out interface{}) (*Envelope, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

// Upload sends a multipart/form-data request
func (c *Client) Upload(ctx context.Context, method, path string, form *MultipartForm, out interface{}) (*Envelope, error) {
	return c.Do(ctx, Request{Method: method, Path: path, Form: form}, out)
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		buf, ct, err := req.Form.encode()
		if err != nil {
			return nil, fmt.Errorf("failed to encode multipart body: %w", err)
		}
		body, contentType = buf, ct
	case req.Body != nil:
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}

// session returns the storage and navigator bound to ctx, falling back to the defaults
func (c *Client) session(ctx context.Context) (Storage, Navigator) {
	storage, navigator := c.storage, c.navigator
	if binding, ok := ctx.Value(sessionContextKey{}).(sessionBinding); ok {
		if binding.storage != nil {
			storage = binding.storage
		}
		if binding.navigator != nil {
			navigator = binding.navigator
		}
	}
	return storage, navigator
}

func (c *Client) token(ctx context.Context, storage Storage) string {
	if storage == nil {
		return ""
	}
	raw, err := storage.Get(ctx, KeyToken)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to read token from session storage")
		return ""
	}
	return NormalizeToken(raw)
}

func (c *Client) teardown(ctx context.Context, storage Storage, navigator Navigator) {
	if storage != nil {
		if err := storage.Remove(ctx, SessionKeys...); err != nil {
			c.logger.WithError(err).Error("Failed to clear session storage")
		}
	}
	if navigator != nil {
		navigator.Navigate(ctx, RootPath)
	}
}
