package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/nftconsole/internal/logging"
)

const (
	RequestIDHeader  = "X-Request-Id"
	defaultUserAgent = "nftconsole"
	maxErrorBody     = 64 << 10
)

var (
	ErrInvalidBaseURL = errors.New("invalid base url")
	errEmptyBody      = errors.New("empty body")
)

type Client struct {
	baseURL   string
	http      *http.Client
	timeout   time.Duration
	log       logging.Logger
	userAgent string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each round trip, including reading the body. It is
// applied to whichever *http.Client the other options leave in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New binds a Client to baseURL. The address is validated and frozen here.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		log:       logging.Discard(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	c.log = c.log.With("component", "transport")
	return c, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) resolve(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Send performs req and decodes a successful JSON response into out.
// out may be nil to discard the body. A 204 leaves out as is; any other
// empty success body is a DecodeError.
func (c *Client) Send(ctx context.Context, req Request, out any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target := c.resolve(req.Path)

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, target, err)
	}

	mp, isMultipart := req.Body.(*Multipart)
	isMultipart = isMultipart && mp != nil
	if contentType != "" && !isMultipart {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for name, values := range req.Header {
		if isMultipart && http.CanonicalHeaderKey(name) == "Content-Type" {
			continue
		}
		httpReq.Header.Del(name)
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}
	if isMultipart {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	requestID := uuid.NewString()
	httpReq.Header.Set(RequestIDHeader, requestID)

	log := c.log.With("method", method, "path", httpReq.URL.Path, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn(ctx, "outbound request failed", "duration", time.Since(start), "error", err)
		return &NetworkError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	log.Debug(ctx, "outbound request", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		line := statusLine(resp.StatusCode, resp.Status)
		data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := line
		if readErr == nil {
			msg = extractMessage(data, line)
		}
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", msg)
		return &StatusError{Method: method, URL: target, Status: resp.StatusCode, Message: msg}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "response body interrupted", "error", err)
		return &NetworkError{Method: method, URL: target, Err: err}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		log.Warn(ctx, "response body empty", "status", resp.StatusCode)
		return &DecodeError{Method: method, URL: target, Status: resp.StatusCode, Err: errEmptyBody}
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn(ctx, "response not decodable", "status", resp.StatusCode, "error", err)
		return &DecodeError{Method: method, URL: target, Status: resp.StatusCode, Err: err}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, header http.Header, out any) error {
	return c.Send(ctx, Request{Method: http.MethodGet, Path: path, Header: header}, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, header http.Header, out any) error {
	return c.Send(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Header: header}, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, header http.Header, out any) error {
	return c.Send(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Header: header}, out)
}

func (c *Client) Delete(ctx context.Context, path string, header http.Header, out any) error {
	return c.Send(ctx, Request{Method: http.MethodDelete, Path: path, Header: header}, out)
}
