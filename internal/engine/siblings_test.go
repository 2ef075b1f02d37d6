package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateSiblingsAlwaysIncludesTop(t *testing.T) {
	doc := parseFragment(t, `<html><body><div id="top"></div></body></html>`)
	top := doc.Find("#top")
	top.SetAttr(attrContentScore, "50")

	article := aggregateSiblings(doc, top)
	assert.Equal(t, 1, article.Children().Length())
	assert.Equal(t, "top", article.Children().First().AttrOr("id", ""))
}

func TestAggregateSiblingsIncludesMatchingClassBonus(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<div id="top" class="story"></div>
		<div id="also" class="story"></div>
	</body></html>`)
	top := doc.Find("#top")
	top.SetAttr(attrContentScore, "50")
	also := doc.Find("#also")
	also.SetAttr(attrContentScore, "1")

	article := aggregateSiblings(doc, top)
	assert.Equal(t, 2, article.Children().Length())
}

func TestAggregateSiblingsExcludesLowScoringUnrelatedSibling(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<div id="top"></div>
		<div id="other" class="unrelated"></div>
	</body></html>`)
	top := doc.Find("#top")
	top.SetAttr(attrContentScore, "50")
	other := doc.Find("#other")
	other.SetAttr(attrContentScore, "1")

	article := aggregateSiblings(doc, top)
	assert.Equal(t, 1, article.Children().Length())
}

func TestAggregateSiblingsIncludesLongLowDensityParagraph(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<div id="top"></div>
		<p id="para">`+strings.Repeat("word ", 30)+`</p>
	</body></html>`)
	top := doc.Find("#top")
	top.SetAttr(attrContentScore, "50")

	article := aggregateSiblings(doc, top)
	assert.Equal(t, 2, article.Children().Length())
}

func TestQualifiesAsParagraphSiblingShortSentenceEnd(t *testing.T) {
	doc := parseFragment(t, `<p>Short para. Done.</p>`)
	p := doc.Find("p").First()
	assert.True(t, qualifiesAsParagraphSibling(p))
}

func TestQualifiesAsParagraphSiblingRejectsHighDensity(t *testing.T) {
	doc := parseFragment(t, `<p><a href="/x">`+strings.Repeat("word ", 30)+`</a></p>`)
	p := doc.Find("p").First()
	assert.False(t, qualifiesAsParagraphSibling(p))
}
