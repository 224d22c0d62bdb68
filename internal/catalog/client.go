package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/chaekmaru/chaekmaru/internal/catalog/aladin"
)

const (
	defaultBaseURL = "https://www.aladin.co.kr/ttb/api"
	apiVersion     = "20131101"

	retryAttempts = 3
	retryDelay    = 300 * time.Millisecond
)

// Client is the Aladin-backed catalog provider.
type Client struct {
	httpClient *resty.Client
	ttbKey     string
}

var _ Provider = (*Client)(nil)

// NewClient creates a catalog client authenticated with a TTB key.
func NewClient(ttbKey string) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	return &Client{
		httpClient: client,
		ttbKey:     ttbKey,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.httpClient.SetBaseURL(baseURL)
}

// Search queries the catalog by keyword, optionally narrowed to a category
// filter understood by the upstream API.
func (c *Client) Search(ctx context.Context, query string, maxResults int, categoryFilter string) ([]Record, error) {
	params := map[string]string{
		"Query":      query,
		"QueryType":  "Keyword",
		"MaxResults": strconv.Itoa(maxResults),
	}
	if categoryFilter != "" {
		params["CategoryId"] = categoryFilter
	}

	response, err := c.call(ctx, "ItemSearch.aspx", params)
	if err != nil {
		return nil, fmt.Errorf("c.call(ItemSearch) > %w", err)
	}
	return toRecords(response.Items), nil
}

// LookupByID fetches a single record by ISBN-13. A miss returns (nil, nil).
func (c *Client) LookupByID(ctx context.Context, isbn13 string) (*Record, error) {
	response, err := c.call(ctx, "ItemLookUp.aspx", map[string]string{
		"ItemId":     isbn13,
		"ItemIdType": "ISBN13",
	})
	if err != nil {
		return nil, fmt.Errorf("c.call(ItemLookUp) > %w", err)
	}
	if len(response.Items) == 0 {
		return nil, nil
	}
	record := toRecord(response.Items[0])
	return &record, nil
}

// Bestsellers fetches the bestseller list for a category.
func (c *Client) Bestsellers(ctx context.Context, categoryID, max int) ([]Record, error) {
	response, err := c.call(ctx, "ItemList.aspx", map[string]string{
		"QueryType":  "Bestseller",
		"CategoryId": strconv.Itoa(categoryID),
		"MaxResults": strconv.Itoa(max),
	})
	if err != nil {
		return nil, fmt.Errorf("c.call(ItemList) > %w", err)
	}
	return toRecords(response.Items), nil
}

// call performs a single API round-trip with retry on transient failures.
func (c *Client) call(ctx context.Context, endpoint string, params map[string]string) (*aladin.SearchResponse, error) {
	queryParams := map[string]string{
		"ttbkey":       c.ttbKey,
		"output":       "js",
		"Version":      apiVersion,
		"SearchTarget": "Book",
	}
	for name, value := range params {
		queryParams[name] = value
	}

	var response aladin.SearchResponse
	err := retry.Do(
		func() error {
			res, err := c.httpClient.R().
				SetContext(ctx).
				SetQueryParams(queryParams).
				Get(endpoint)
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			if res.StatusCode() != http.StatusOK {
				return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
			}
			if err := json.Unmarshal(res.Body(), &response); err != nil {
				return fmt.Errorf("json.Unmarshal > %w", err)
			}
			return nil
		},
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func toRecords(items []aladin.Item) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, toRecord(item))
	}
	return records
}

func toRecord(item aladin.Item) Record {
	return Record{
		ISBN13:          item.ISBN13,
		Title:           item.Title,
		Author:          item.Author,
		Publisher:       item.Publisher,
		PubDate:         item.PubDate,
		CoverURL:        item.Cover,
		CategoryLabel:   item.CategoryName,
		Description:     item.Description,
		ListPrice:       item.PriceStandard,
		PopularityIndex: item.SalesPoint,
		ReviewRank:      item.CustomerReviewRank,
	}
}
