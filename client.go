// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package checktica

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/checktica/checktica-go/internal/retry"
)

const (
	// DefaultBaseURL is the production Checktica API.
	DefaultBaseURL = "https://api.checktica.com"

	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultLimitMessage is reported for HTTP 429 responses whose body does
	// not carry a detail message.
	DefaultLimitMessage = "Rate limit has been exceeded. Try again later."

	// EnvAPIURL overrides DefaultBaseURL when WithBaseURL is not given.
	EnvAPIURL = "CHECKTICA_API_URL"

	apiVersion        = 1
	detectionEndpoint = "/is_ai"
	sdkVersion        = "0.1.0"
)

// HTTPDoer performs a single HTTP round trip. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryConfig controls how failed attempts are repeated. Rate-limit errors
// are never retried regardless of this configuration.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialInterval is the wait after the first failure.
	InitialInterval time.Duration

	// MaxInterval caps every wait.
	MaxInterval time.Duration

	// Multiplier grows the wait after each further failure. Zero means 2.
	Multiplier float64
}

// DefaultRetryConfig returns three attempts with waits starting at one
// second and capped at ten.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
		Multiplier:      2,
	}
}

// Client calls the Checktica detection API. A Client is immutable after New
// and safe for concurrent use; each Detect call is independent.
type Client struct {
	endpoint     string
	timeout      time.Duration
	httpClient   HTTPDoer
	logger       *slog.Logger
	policy       retry.Policy
	limitMessage string
	userAgent    string
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL      string
	timeout      time.Duration
	httpClient   HTTPDoer
	logger       *slog.Logger
	retry        RetryConfig
	limitMessage string
	userAgent    string
}

// WithBaseURL points the client at a different API host, for example a
// staging deployment or a test server.
func WithBaseURL(u string) Option {
	return func(c *clientConfig) {
		c.baseURL = u
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the HTTP transport.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *clientConfig) {
		c.httpClient = doer
	}
}

// WithLogger sets the logger that receives failure reports. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithRetry replaces the retry configuration.
func WithRetry(rc RetryConfig) Option {
	return func(c *clientConfig) {
		c.retry = rc
	}
}

// WithLimitMessage sets the message reported for rate-limit responses that
// carry no detail of their own.
func WithLimitMessage(msg string) Option {
	return func(c *clientConfig) {
		c.limitMessage = msg
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// New creates a Client. It fails with KindInvalidArgument when the base URL,
// timeout, or retry configuration is unusable.
func New(opts ...Option) (*Client, error) {
	cfg := clientConfig{
		timeout:      DefaultTimeout,
		retry:        DefaultRetryConfig(),
		limitMessage: DefaultLimitMessage,
		userAgent:    "checktica-go/" + sdkVersion,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.baseURL == "" {
		cfg.baseURL = os.Getenv(EnvAPIURL)
	}
	if cfg.baseURL == "" {
		cfg.baseURL = DefaultBaseURL
	}
	endpoint, err := detectionURL(cfg.baseURL)
	if err != nil {
		return nil, newError(KindInvalidArgument, "invalid base URL", err)
	}

	if cfg.timeout <= 0 {
		return nil, newError(KindInvalidArgument, fmt.Sprintf("timeout must be positive, got %s", cfg.timeout), nil)
	}

	policy := retry.Policy{
		MaxAttempts:     cfg.retry.MaxAttempts,
		InitialInterval: cfg.retry.InitialInterval,
		MaxInterval:     cfg.retry.MaxInterval,
		Multiplier:      cfg.retry.Multiplier,
	}
	if err := policy.Validate(); err != nil {
		return nil, newError(KindInvalidArgument, "invalid retry configuration", err)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: cfg.timeout}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.limitMessage == "" {
		cfg.limitMessage = DefaultLimitMessage
	}

	c := &Client{
		endpoint:     endpoint,
		timeout:      cfg.timeout,
		httpClient:   cfg.httpClient,
		logger:       cfg.logger,
		policy:       policy,
		limitMessage: cfg.limitMessage,
		userAgent:    cfg.userAgent,
	}
	c.policy.Notify = c.logRetry
	return c, nil
}

// detectionURL builds <base>/v<version>/is_ai from the base URL.
func detectionURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q in %q", u.Scheme, base)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in %q", base)
	}
	return fmt.Sprintf("%s/v%d%s", strings.TrimRight(base, "/"), apiVersion, detectionEndpoint), nil
}

// Endpoint returns the detection URL this client posts to.
func (c *Client) Endpoint() string { return c.endpoint }

// Timeout returns the per-attempt timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// MaxAttempts returns the configured attempt cap.
func (c *Client) MaxAttempts() int { return c.policy.MaxAttempts }

type detectionRequest struct {
	Text   string `json:"text"`
	Method Method `json:"method"`
}

// Detect asks the API whether text was generated by a language model.
//
// Invalid input fails with KindInvalidArgument before any request is made.
// Connection failures, timeouts and malformed responses are retried with
// exponential backoff; a rate-limit response ends the call at once with
// KindLimitExceeded. When every attempt fails, the last error is returned.
func (c *Client) Detect(ctx context.Context, text string, method Method) (*Result, error) {
	if err := validateInput(text, method); err != nil {
		return nil, err
	}

	body, err := json.Marshal(detectionRequest{Text: text, Method: method})
	if err != nil {
		return nil, newError(KindInvalidArgument, "encoding request", err)
	}

	var result *Result
	err = retry.Do(ctx, c.policy, func(ctx context.Context, attempt int) error {
		res, err := c.attempt(ctx, body, method, attempt)
		if err != nil {
			return err
		}
		result = res
		return nil
	}, IsRetryable)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DetectDefault calls Detect with DefaultMethod.
func (c *Client) DetectDefault(ctx context.Context, text string) (*Result, error) {
	return c.Detect(ctx, text, DefaultMethod)
}

// attempt performs one POST and maps its outcome.
func (c *Client) attempt(ctx context.Context, body []byte, method Method, attempt int) (*Result, error) {
	requestID := newRequestID()
	log := c.logger.With("request_id", requestID, "attempt", attempt, "method", string(method))

	resp, err := c.post(ctx, body, requestID)
	if err == nil {
		var res *Result
		res, err = c.mapResponse(resp)
		if err == nil {
			log.Debug("checktica: detection succeeded", "status", resp.StatusCode)
			return res, nil
		}
	}

	var ce *Error
	if errors.As(err, &ce) {
		log.Warn(ce.Error(), "kind", ce.Kind.String(), "status", ce.StatusCode)
	}
	return nil, err
}

func (c *Client) logRetry(attempt int, err error, delay time.Duration) {
	c.logger.Debug("checktica: retrying after failure",
		"attempt", attempt, "delay", delay, "error", err)
}
