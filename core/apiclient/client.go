package apiclient

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

	"github.com/flashlingo/flashlingo-go/core/logger"
	"github.com/flashlingo/flashlingo-go/core/signal"
)

// TokenSource supplies the bearer token attached to API requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Config holds the API client configuration, loadable via core/config.
type Config struct {
	BaseURL string        `env:"FLASHLINGO_API_URL" envDefault:"https://api.flashlingo.app"`
	Timeout time.Duration `env:"FLASHLINGO_HTTP_TIMEOUT" envDefault:"30s"`
}

// Client talks to the FlashLingo REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	bus        *signal.Bus
	log        *slog.Logger
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger enables structured request logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates an API client. tokens may be nil for a client that only calls
// public endpoints; bus may be nil when no invalidation signaling is wanted
// (tests, one-shot scripts).
func New(cfg Config, tokens TokenSource, bus *signal.Bus, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		bus:        bus,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError mirrors the API's error body.
type apiError struct {
	Detail string `json:"detail"`
}

// do executes one API request. A JSON body is marshaled from in when non-nil;
// a 2xx response body is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send attaches auth headers, executes the request, and maps the response.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(req.Context(), "api request finished",
		logger.Method(req.Method),
		logger.Path(req.URL.Path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start))

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
		return nil
	}

	return c.mapError(req, resp)
}

func (c *Client) mapError(req *http.Request, resp *http.Response) error {
	var detail apiError
	_ = json.NewDecoder(resp.Body).Decode(&detail)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Credential rejected: tell the session store to clear itself. The
		// publish is fire-and-forget; delivery failure must not mask the 401.
		if c.bus != nil {
			if err := c.bus.Publish(req.Context(), signal.KindSessionInvalidated,
				req.Method+" "+req.URL.Path); err != nil {
				c.log.DebugContext(req.Context(), "failed to publish session-invalidated",
					logger.Error(err))
			}
		}
		return c.withDetail(ErrUnauthorized, detail)
	case http.StatusForbidden:
		return c.withDetail(ErrForbidden, detail)
	case http.StatusNotFound:
		return c.withDetail(ErrNotFound, detail)
	default:
		if detail.Detail != "" {
			return fmt.Errorf("%w: %d: %s", ErrRequestFailed, resp.StatusCode, detail.Detail)
		}
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
}

func (c *Client) withDetail(sentinel error, detail apiError) error {
	if detail.Detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail.Detail)
}
