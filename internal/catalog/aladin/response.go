// Package aladin holds the wire types of the Aladin TTB open API.
package aladin

// SearchResponse is the envelope returned by ItemSearch, ItemLookUp and
// ItemList alike.
type SearchResponse struct {
	TotalResults int    `json:"totalResults"`
	StartIndex   int    `json:"startIndex"`
	ItemsPerPage int    `json:"itemsPerPage"`
	Items        []Item `json:"item"`
}

// Item is a single catalog entry.
type Item struct {
	Title              string `json:"title"`
	Author             string `json:"author"`
	Publisher          string `json:"publisher"`
	PubDate            string `json:"pubDate"`
	Description        string `json:"description"`
	ISBN13             string `json:"isbn13"`
	Cover              string `json:"cover"`
	CategoryName       string `json:"categoryName"`
	PriceStandard      int    `json:"priceStandard"`
	SalesPoint         int    `json:"salesPoint"`
	CustomerReviewRank int    `json:"customerReviewRank"`
}
