package social

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/chaekmaru/chaekmaru/internal/cache"
	"github.com/chaekmaru/chaekmaru/internal/social/naver"
)

const (
	defaultBaseURL = "https://openapi.naver.com/v1/search"
	providerName   = "naver"

	// Upstream is rate limited; every call waits its turn.
	defaultCallInterval = 100 * time.Millisecond
)

// Client is the Naver-backed social-content provider. Calls are paced by a
// rate limiter, guarded by a circuit breaker, and optionally served from the
// result cache.
type Client struct {
	httpClient   *resty.Client
	clientID     string
	clientSecret string
	store        *cache.Store
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[[]byte]
}

var _ Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithCache serves repeated queries from the given store.
func WithCache(store *cache.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithCallInterval overrides the pacing between upstream calls.
func WithCallInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// NewClient creates a social-content client authenticated with Naver open API
// credentials.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(defaultBaseURL)

	client := &Client{
		httpClient:   httpClient,
		clientID:     clientID,
		clientSecret: clientSecret,
		limiter:      rate.NewLimiter(rate.Every(defaultCallInterval), 1),
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:    providerName,
			Timeout: 30 * time.Second,
		}),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.httpClient.SetBaseURL(baseURL)
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// SearchSnippets returns up to count blog hits for the query, markup removed.
func (c *Client) SearchSnippets(ctx context.Context, query string, count int) ([]Snippet, error) {
	response, err := c.search(ctx, query, count)
	if err != nil {
		return nil, fmt.Errorf("c.search > %w", err)
	}

	snippets := make([]Snippet, 0, len(response.Items))
	for _, item := range response.Items {
		snippets = append(snippets, Snippet{
			Title:       StripTags(item.Title),
			Description: StripTags(item.Description),
			BloggerName: item.BloggerName,
			PostDate:    item.PostDate,
			Link:        item.Link,
		})
	}
	return snippets, nil
}

// CountHits returns the total hit count for the query.
func (c *Client) CountHits(ctx context.Context, query string) (int, error) {
	response, err := c.search(ctx, query, 1)
	if err != nil {
		return 0, fmt.Errorf("c.search > %w", err)
	}
	return response.Total, nil
}

func (c *Client) search(ctx context.Context, query string, display int) (*naver.SearchResponse, error) {
	params := map[string]string{
		"query":   query,
		"display": strconv.Itoa(display),
	}

	fill := func() ([]byte, error) {
		return c.breaker.Execute(func() ([]byte, error) {
			return c.call(ctx, params)
		})
	}

	var body []byte
	var err error
	if c.store != nil {
		body, err = c.store.Fetch(cache.Key(providerName, "blog", params), fill)
	} else {
		body, err = fill()
	}
	if err != nil {
		return nil, err
	}

	var response naver.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &response, nil
}

func (c *Client) call(ctx context.Context, params map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("limiter.Wait > %w", err)
	}

	res, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Naver-Client-Id", c.clientID).
		SetHeader("X-Naver-Client-Secret", c.clientSecret).
		SetQueryParams(params).
		Get("/blog.json")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("response error %d: %s", res.StatusCode(), res.String())
	}
	return res.Bytes(), nil
}
