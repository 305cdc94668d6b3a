package parser

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// ParseHTMLWithReadability extracts the main article text from raw HTML.
func ParseHTMLWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

// Excerpt returns s truncated to max runes with whitespace collapsed, for
// list views that only need a teaser.
func Excerpt(s string, max int) string {
	fields := strings.Fields(s)
	joined := strings.Join(fields, " ")

	rs := []rune(joined)
	if len(rs) <= max {
		return joined
	}
	return string(rs[:max])
}
