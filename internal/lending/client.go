package lending

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://data4library.kr/api"

// wire types: the upstream API returns numbers as strings.
type loanResponse struct {
	Response struct {
		Docs []struct {
			Doc loanDoc `json:"doc"`
		} `json:"docs"`
	} `json:"response"`
}

type loanDoc struct {
	BookName  string `json:"bookname"`
	Authors   string `json:"authors"`
	Publisher string `json:"publisher"`
	ISBN13    string `json:"isbn13"`
	LoanCount string `json:"loan_count"`
	Ranking   string `json:"ranking"`
}

// Client is the loan-popularity provider backed by the public library API.
type Client struct {
	httpClient *resty.Client
	authKey    string
}

var _ Provider = (*Client)(nil)

// NewClient creates a lending client authenticated with an API key.
func NewClient(authKey string) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	return &Client{
		httpClient: client,
		authKey:    authKey,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.httpClient.SetBaseURL(baseURL)
}

// LoanPopularity fetches up to pageSize loan-popularity docs for an age band.
func (c *Client) LoanPopularity(ctx context.Context, bracket AgeBracket, pageSize int) ([]LoanDoc, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"authKey":  c.authKey,
			"age":      string(bracket),
			"pageSize": strconv.Itoa(pageSize),
			"format":   "json",
		}).
		Get("/loanItemSrch")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var response loanResponse
	if err := json.Unmarshal(res.Body(), &response); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}

	docs := make([]LoanDoc, 0, len(response.Response.Docs))
	for _, entry := range response.Response.Docs {
		docs = append(docs, LoanDoc{
			ISBN13:    entry.Doc.ISBN13,
			Title:     entry.Doc.BookName,
			Author:    entry.Doc.Authors,
			Publisher: entry.Doc.Publisher,
			LoanCount: atoiOrZero(entry.Doc.LoanCount),
			Ranking:   atoiOrZero(entry.Doc.Ranking),
		})
	}
	return docs, nil
}

func atoiOrZero(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
