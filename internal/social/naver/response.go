// Package naver holds the wire types of the Naver open search API.
package naver

// SearchResponse is the envelope of the blog search endpoint.
type SearchResponse struct {
	Total   int    `json:"total"`
	Start   int    `json:"start"`
	Display int    `json:"display"`
	Items   []Item `json:"items"`
}

// Item is a single blog hit. Title and description carry <b> markup around
// matched terms.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	BloggerName string `json:"bloggername"`
	PostDate    string `json:"postdate"`
}
