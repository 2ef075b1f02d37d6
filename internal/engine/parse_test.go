package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedScenario(t *testing.T) {
	body := "<article><p>" + strings.Repeat("lorem ", 600) + "</p></article>"
	html := "<html><head><title>Foo | Site</title></head><body>" + body + "</body></html>"

	article, err := Parse("https://example.com/a/b.html", html)
	require.NoError(t, err)
	require.NotNil(t, article)

	assert.Equal(t, "Foo", article.Title)
	assert.GreaterOrEqual(t, article.Length, 3500)
	assert.Contains(t, article.TextContent, "lorem")
	assert.Equal(t, "https://example.com/a/b.html", article.URI)
}

func TestParseEmptyBodyReturnsNilArticleNoError(t *testing.T) {
	html := `<html><head><title>Empty</title></head><body></body></html>`

	article, err := Parse("https://example.com/a/b.html", html)
	require.NoError(t, err)
	assert.Nil(t, article)
}

func TestParseShortBodyBelowThresholdReturnsNilArticle(t *testing.T) {
	html := `<html><head><title>Short</title></head><body><p>too short to count as an article.</p></body></html>`

	article, err := Parse("https://example.com/a/b.html", html)
	require.NoError(t, err)
	assert.Nil(t, article)
}

func TestParseInvalidURIReturnsError(t *testing.T) {
	article, err := Parse("not-a-uri", "<html><body><p>hi</p></body></html>")
	assert.Error(t, err)
	assert.Nil(t, article)
}

func TestParseBodyAsFallbackCandidateWhenNoScoreableStructure(t *testing.T) {
	html := "<html><head><title>Plain</title></head><body>" + strings.Repeat("lorem ", 600) + "</body></html>"

	article, err := Parse("https://example.com/a/b.html", html)
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.GreaterOrEqual(t, article.Length, 3500)
	assert.Contains(t, article.Content, `id="readability-page-1"`)
}

func TestInnerTrimCollapsesWhitespaceAndTrims(t *testing.T) {
	assert.Equal(t, "a b c", innerTrim("  a\t\nb   c  "))
}

func TestInnerTrimIsIdempotent(t *testing.T) {
	once := innerTrim("  a\t\nb   c  ")
	twice := innerTrim(once)
	assert.Equal(t, once, twice)
}
