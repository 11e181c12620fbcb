package wiki

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

	"github.com/jrsteele09/go-wiki-client/app"
	"github.com/jrsteele09/go-wiki-client/interceptor"
	"github.com/jrsteele09/go-wiki-client/router"
	"github.com/jrsteele09/go-wiki-client/sessions"
	"github.com/rs/zerolog/log"
)

const defaultMaxErrorBodyBytes int64 = 1 << 20 // 1 MB

// Client is the wiki backend API client. Every call runs through the
// application's interception pipeline.
type Client struct {
	baseURL    string
	app        *app.Context
	httpClient *http.Client

	timeout    time.Duration
	transport  http.RoundTripper
	middleware []interceptor.Middleware
	maxErrBody int64
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds each call, including reading the response.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithTransport replaces the base transport beneath the pipeline.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.transport = rt }
}

// WithMiddleware adds middleware outside the interception pipeline.
func WithMiddleware(mw ...interceptor.Middleware) Option {
	return func(c *Client) { c.middleware = append(c.middleware, mw...) }
}

// WithMaxErrorBodyBytes limits how much of an error body is read.
func WithMaxErrorBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxErrBody = n
		}
	}
}

// New creates a new API client bound to appCtx.
func New(baseURL string, appCtx *app.Context, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		app:        appCtx,
		timeout:    30 * time.Second,
		maxErrBody: defaultMaxErrorBodyBytes,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.transport == nil {
		c.transport = NewTransport()
	}

	mw := append([]interceptor.Middleware{}, c.middleware...)
	mw = append(mw, appCtx.Middleware(interceptor.WithMaxBodyBytes(c.maxErrBody))...)
	c.httpClient = &http.Client{
		Timeout:   c.timeout,
		Transport: interceptor.Chain(c.transport, mw...),
	}
	return c
}

// Login exchanges credentials for a token and makes it the active session.
func (c *Client) Login(ctx context.Context, username, password string) (sessions.Session, error) {
	var resp loginResponse
	if err := c.post(ctx, router.APIUserLogin, LoginRequest{Username: username, Password: password}, &resp); err != nil {
		return sessions.Session{}, fmt.Errorf("wiki.Login: %w", err)
	}

	session, err := sessions.FromToken(resp.Token)
	if err != nil {
		return sessions.Session{}, fmt.Errorf("wiki.Login: %w", err)
	}
	if err := c.app.Sessions.Set(session); err != nil {
		return sessions.Session{}, fmt.Errorf("wiki.Login: %w", err)
	}

	log.Info().Str("user", session.User).Time("expires_at", session.ExpiresAt).Msg("Logged in")
	return session, nil
}

// Logout drops the active session. The backend keeps no session state.
func (c *Client) Logout() {
	c.app.Sessions.Clear()
}

// GetPage fetches a page rendered to HTML.
func (c *Client) GetPage(ctx context.Context, path string) (*Page, error) {
	var page Page
	if err := c.get(ctx, pagePath(path), &page); err != nil {
		return nil, fmt.Errorf("wiki.GetPage: %w", err)
	}
	return &page, nil
}

// GetRawPage fetches a page's markdown source.
func (c *Client) GetRawPage(ctx context.Context, path string) (*Page, error) {
	params := url.Values{}
	params.Set("format", "no-render")

	var page Page
	if err := c.get(ctx, pagePath(path)+"?"+params.Encode(), &page); err != nil {
		return nil, fmt.Errorf("wiki.GetRawPage: %w", err)
	}
	return &page, nil
}

// CreatePage creates a new page and returns the backend's confirmation.
func (c *Client) CreatePage(ctx context.Context, path, content string) (string, error) {
	var resp apiResponse
	if err := c.post(ctx, pagePath(path), pageRequest{Content: content}, &resp); err != nil {
		return "", fmt.Errorf("wiki.CreatePage: %w", err)
	}
	return resp.Message, nil
}

// UpdatePage replaces an existing page's content.
func (c *Client) UpdatePage(ctx context.Context, path, content string) (string, error) {
	var resp apiResponse
	if err := c.doRequest(ctx, http.MethodPut, pagePath(path), pageRequest{Content: content}, &resp); err != nil {
		return "", fmt.Errorf("wiki.UpdatePage: %w", err)
	}
	return resp.Message, nil
}

// Preview renders markdown without saving it.
func (c *Client) Preview(ctx context.Context, content string) (string, error) {
	var page Page
	if err := c.post(ctx, router.APIPreview, pageRequest{Content: content}, &page); err != nil {
		return "", fmt.Errorf("wiki.Preview: %w", err)
	}
	return page.Content, nil
}

// pagePath escapes each segment of a wiki path under the page API.
func pagePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return router.APIPage + strings.Join(segments, "/")
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if interceptor.Classify(resp.StatusCode) != interceptor.Success {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, c.maxErrBody))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr apiResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
