package engine

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestGetNodeName(t *testing.T) {
	doc := parseFragment(t, `<div><p>hi</p></div>`)
	assert.Equal(t, "DIV", getNodeName(doc.Find("div")))
	assert.Equal(t, "P", getNodeName(doc.Find("p")))
	assert.Equal(t, "", getNodeName(doc.Find("nonexistent")))
}

func TestGetLinkDensity(t *testing.T) {
	doc := parseFragment(t, `<p>hello <a href="/x">world</a></p>`)
	p := doc.Find("p").First()
	density := getLinkDensity(p)
	assert.Greater(t, density, 0.0)
	assert.Less(t, density, 1.0)
}

func TestGetLinkDensityNoText(t *testing.T) {
	doc := parseFragment(t, `<p></p>`)
	assert.Equal(t, 0.0, getLinkDensity(doc.Find("p").First()))
}

func TestHasSinglePInsidePreservesInvertedPredicate(t *testing.T) {
	// Exactly one <p> child and a stray non-whitespace text node sibling:
	// the predicate is true here, matching the documented source quirk
	// rather than "this div wraps a single clean paragraph".
	doc := parseFragment(t, `<div>stray<p>content</p></div>`)
	assert.True(t, hasSinglePInside(doc.Find("div").First()))

	doc2 := parseFragment(t, `<div><p>content</p></div>`)
	assert.False(t, hasSinglePInside(doc2.Find("div").First()))
}

func TestIsElementWithoutContent(t *testing.T) {
	doc := parseFragment(t, `<div><br><hr></div>`)
	assert.True(t, isElementWithoutContent(doc.Find("div").First()))

	doc2 := parseFragment(t, `<div>text</div>`)
	assert.False(t, isElementWithoutContent(doc2.Find("div").First()))
}

func TestGetNodeAncestorsRespectsMaxDepth(t *testing.T) {
	doc := parseFragment(t, `<html><body><div><section><p>x</p></section></div></body></html>`)
	p := doc.Find("p").First()

	all := getNodeAncestors(p, 0)
	assert.GreaterOrEqual(t, len(all), 4)

	limited := getNodeAncestors(p, 2)
	assert.Len(t, limited, 2)
	assert.Equal(t, "SECTION", getNodeName(limited[0]))
	assert.Equal(t, "DIV", getNodeName(limited[1]))
}

func TestGetNextNodeDepthFirst(t *testing.T) {
	doc := parseFragment(t, `<div id="a"><p id="b">x</p></div><span id="c">y</span>`)
	a := doc.Find("#a")
	next := getNextNode(a, false)
	assert.Equal(t, "b", next.AttrOr("id", ""))

	skip := getNextNode(a, true)
	assert.Equal(t, "c", skip.AttrOr("id", ""))
}

func TestAttrIntOverflowGuard(t *testing.T) {
	doc := parseFragment(t, `<table><tr><td colspan="999999999999999999999"></td></tr></table>`)
	td := doc.Find("td").First()
	assert.Equal(t, 1, attrInt(td, "colspan", 1))

	doc2 := parseFragment(t, `<table><tr><td colspan="50000"></td></tr></table>`)
	assert.Equal(t, 10000, attrInt(doc2.Find("td").First(), "colspan", 1))
}
