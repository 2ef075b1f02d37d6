package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetArticleTitleStripsHierarchicalSeparator(t *testing.T) {
	doc := parseFragment(t, `<html><head><title>Foo | Site</title></head><body></body></html>`)
	assert.Equal(t, "Foo", getArticleTitle(doc))
}

func TestGetArticleTitleShortSideFallsBackToOpposite(t *testing.T) {
	doc := parseFragment(t, `<html><head><title>A | Long Site Name Here</title></head><body></body></html>`)
	title := getArticleTitle(doc)
	assert.Equal(t, "Long Site Name Here", title)
}

func TestGetArticleTitleColonHeuristic(t *testing.T) {
	doc := parseFragment(t, `<html><head><title>Breaking News: Something Extremely Important Happened Today</title></head><body></body></html>`)
	assert.Equal(t, "Something Extremely Important Happened Today", getArticleTitle(doc))
}

func TestGetArticleTitleFallsBackToSingleH1(t *testing.T) {
	longTitle := "This Title Is Deliberately Long Enough To Exceed The One Hundred Fifty Character Threshold So The Heuristic Falls Back To The Single H1 On The Page instead"
	doc := parseFragment(t, `<html><head><title>`+longTitle+`</title></head><body><h1>Short Title For The Article Page</h1></body></html>`)
	assert.Equal(t, "Short Title For The Article Page", getArticleTitle(doc))
}

func TestGrabMetadataExcerptPrecedence(t *testing.T) {
	html := `<html><head>
		<title>Title</title>
		<meta property="og:description" content="og desc">
		<meta name="twitter:description" content="twitter desc">
		<meta name="description" content="plain desc">
	</head><body></body></html>`
	doc := parseFragment(t, html)
	md := grabMetadata(doc, doc.Get(0), mustParse(t, "https://example.com/a/b.html"))
	assert.Equal(t, "og desc", md.Excerpt)
}

func TestGrabMetadataFaviconFallbackChain(t *testing.T) {
	html := `<html><head>
		<link rel="icon" href="/favicon.png">
	</head><body></body></html>`
	doc := parseFragment(t, html)
	md := grabMetadata(doc, doc.Get(0), mustParse(t, "https://example.com/a/b.html"))
	assert.Equal(t, "https://example.com/favicon.png", md.FaviconURL)
}

func TestGrabMetadataAuthorSetsByline(t *testing.T) {
	html := `<html><head>
		<meta name="author" content="Jane Doe">
	</head><body></body></html>`
	doc := parseFragment(t, html)
	md := grabMetadata(doc, doc.Get(0), mustParse(t, "https://example.com/a/b.html"))
	assert.Equal(t, "Jane Doe", md.Byline)
}

func TestGrabMetadataJSONLDOverridesMetaTags(t *testing.T) {
	html := `<html><head>
		<meta name="description" content="meta desc">
		<script type="application/ld+json">
		{"@context":"https://schema.org","@type":"NewsArticle","headline":"JSON-LD Title","author":{"name":"Jane JSONLD"},"description":"jsonld desc","publisher":{"name":"Example Daily"}}
		</script>
	</head><body></body></html>`
	doc := parseFragment(t, html)
	md := grabMetadata(doc, doc.Get(0), mustParse(t, "https://example.com/a/b.html"))
	assert.Equal(t, "JSON-LD Title", md.Title)
	assert.Equal(t, "jsonld desc", md.Excerpt)
	assert.Equal(t, "Jane JSONLD", md.Byline)
	assert.Equal(t, "Example Daily", md.SiteName)
}

func TestExtractJSONLDIgnoresNonArticleType(t *testing.T) {
	doc := parseFragment(t, `<html><head><script type="application/ld+json">
		{"@context":"https://schema.org","@type":"WebSite","name":"Not An Article"}
	</script></head><body></body></html>`)
	assert.Nil(t, extractJSONLD(doc))
}
