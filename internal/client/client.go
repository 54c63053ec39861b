// ABOUTME: HTTP client for the FilmFit API
// ABOUTME: One shared client with fixed 75s timeouts dispatching through the endpoint table

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the address of the FilmFit API
	DefaultBaseURL = "https://9db1-77-47-209-103.ngrok-free.app"

	// Timeout applies separately to connect, each read and each write
	Timeout = 75 * time.Second

	// ProxyBypassHeader is sent to skip the development proxy's browser warning page
	ProxyBypassHeader = "ngrok-skip-browser-warning"

	// maxBodySize bounds the response bytes read from the server
	maxBodySize = 16 << 20
)

// Client is the API client for the FilmFit backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(Timeout),
	}
}

// BaseURL returns the address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newHTTPClient builds a client whose connections time out per operation:
// connect, each read and each write get their own deadline
func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			return &deadlineConn{Conn: conn, readTimeout: timeout, writeTimeout: timeout}, nil
		},
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: transport}
}

// deadlineConn refreshes the read or write deadline before every operation
type deadlineConn struct {
	net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func (c *deadlineConn) Read(b []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(b)
}

func (c *deadlineConn) Write(b []byte) (int, error) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return 0, err
	}
	return c.Conn.Write(b)
}

// request describes one call through an endpoint
type request struct {
	token  string
	pathID int64
	query  url.Values
	body   any
}

// do performs the call and returns the raw body of a 2xx response
func (c *Client) do(ctx context.Context, ep Endpoint, r request) ([]byte, error) {
	if ep.Auth && r.token == "" {
		return nil, fmt.Errorf("%s: %w", ep.Name, ErrNoSession)
	}

	fullURL := c.baseURL + ep.expandPath(r.pathID)
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to marshal request: %w", ep.Name, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", ep.Name, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ep.Auth {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if ep.ProxyBypass {
		req.Header.Set(ProxyBypassHeader, "true")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, ep, requestID, err)
	}
	defer resp.Body.Close()

	slog.Debug("API call completed",
		"op", ep.Name,
		"method", ep.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleErrorResponse(ep, resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, c.handleRequestError(ctx, ep, requestID, err)
	}
	return data, nil
}

// handleRequestError classifies transport failures; cancellation keeps its identity
func (c *Client) handleRequestError(ctx context.Context, ep Endpoint, requestID string, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%s: %w", ep.Name, context.Canceled)
	}
	if ctx.Err() != nil {
		err = ctx.Err()
	}

	slog.Error("API call failed",
		"op", ep.Name,
		"method", ep.Method,
		"path", ep.Path,
		"request_id", requestID,
		"error", err,
	)
	return &TransportError{Op: ep.Name, BaseURL: c.baseURL, Err: err}
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(ep Endpoint, resp *http.Response) error {
	statusErr := &StatusError{Op: ep.Name, StatusCode: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil {
		statusErr.Message = errResp.Error
		if statusErr.Message == "" {
			statusErr.Message = errResp.Message
		}
	}

	slog.Warn("API call rejected",
		"op", ep.Name,
		"status", resp.StatusCode,
		"message", statusErr.Message,
	)
	return statusErr
}
