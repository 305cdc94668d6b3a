package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conmates/parser"
)

func TestParseHTMLWithReadability(t *testing.T) {
	htmlStr := `<html><head><title>Deposit rules</title></head><body>
		<article>
			<h1>Security deposit rules</h1>
			<p>Most states cap security deposits at one or two months of rent. Landlords must return the deposit within a statutory deadline after move-out, usually between 14 and 45 days depending on the state.</p>
			<p>Always document the condition of the unit with photos at move-in and move-out so deductions can be disputed with evidence.</p>
		</article>
	</body></html>`

	text, err := parser.ParseHTMLWithReadability(htmlStr)
	require.NoError(t, err)
	assert.Contains(t, text, "cap security deposits")
	assert.Contains(t, text, "document the condition")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short text", parser.Excerpt("short   text", 100))

	long := strings.Repeat("word ", 100)
	got := parser.Excerpt(long, 50)
	assert.Len(t, []rune(got), 50)
}

func TestExcerptCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", parser.Excerpt("a\n\tb\n   c", 10))
}
