package social

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes HTML markup from an API snippet, keeping only its text.
// The search API wraps matched terms in <b> tags and escapes entities.
func StripTags(s string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var builder strings.Builder
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}
		if tokenType == html.TextToken {
			builder.WriteString(tokenizer.Token().Data)
		}
	}
	return builder.String()
}
