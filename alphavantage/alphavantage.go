// Package alphavantage retrieves daily closing prices from the Alpha Vantage API.
//
// Only the TIME_SERIES_DAILY function is used, with the full output size. The free tier
// of the API accepts a handful of requests per minute: the Client waits on a rate limiter
// before every request.
package alphavantage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/date"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co/query"
	DefaultTimeout = 30 * time.Second
	// DefaultRateLimit is the free tier quota, in requests per minute.
	DefaultRateLimit = 5
)

// Format is the payload format requested to the API.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

// Client fetches histories from Alpha Vantage. It implements stockhist.Fetcher.
type Client struct {
	apiKey     string
	baseURL    string
	format     Format
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets the http client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithRateLimit sets the maximum number of requests per minute. Zero or less disables the
// limit.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithFormat sets the payload format, CSV by default.
func WithFormat(f Format) Option {
	return func(c *Client) { c.format = f }
}

// New returns a Client authenticated with apiKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		format:     CSV,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        zerolog.Nop(),
	}
	WithRateLimit(DefaultRateLimit)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ stockhist.Fetcher = (*Client)(nil)

// FetchDailyCloses returns every daily close Alpha Vantage has for t.
func (c *Client) FetchDailyCloses(ctx context.Context, t stockhist.Ticker) (map[date.Date]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{
		"function":   {"TIME_SERIES_DAILY"},
		"symbol":     {t.String()},
		"outputsize": {"full"},
		"datatype":   {string(c.format)},
		"apikey":     {c.apiKey},
	}
	body, err := c.get(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("cannot fetch %v daily series: %w", t, err)
	}

	closes, err := c.parse(body)
	if err != nil {
		return nil, fmt.Errorf("cannot read %v daily series: %w", t, err)
	}
	return closes, nil
}

// parse reads a response body in the client format.
func (c *Client) parse(body []byte) (map[date.Date]float64, error) {
	if c.format == JSON {
		return ParseJSON(body)
	}
	return ParseCSV(body)
}

// get performs an HTTP GET request and returns the response body.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	c.log.Debug().
		Str("method", req.Method).
		Str("host", req.URL.Host).
		Str("path", req.URL.Path).
		Str("status", resp.Status).
		Msg("alphavantage")
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
