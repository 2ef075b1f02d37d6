package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapLazyNoscriptImagesReplacesPlaceholderSrc(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<img data-src="placeholder.jpg">
		<noscript><img src="real.jpg"></noscript>
	</body></html>`)

	unwrapLazyNoscriptImages(doc)

	img := doc.Find("img").First()
	src, ok := img.Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "real.jpg", src)
}

func TestUnwrapLazyNoscriptImagesIgnoresMultiElementNoscript(t *testing.T) {
	doc := parseFragment(t, `<html><body>
		<img src="placeholder.jpg">
		<noscript><img src="real.jpg"><p>caption</p></noscript>
	</body></html>`)

	unwrapLazyNoscriptImages(doc)

	img := doc.Find("img").First()
	src, _ := img.Attr("src")
	assert.Equal(t, "placeholder.jpg", src)
}

func TestRemoveScriptsStripsScriptAndNoscript(t *testing.T) {
	doc := parseFragment(t, `<html><body><script>alert(1)</script><noscript>fallback</noscript><p>text</p></body></html>`)

	removeScripts(doc)

	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, 0, doc.Find("noscript").Length())
	assert.Equal(t, 1, doc.Find("p").Length())
}

func TestPrepDocumentRewritesFontAndCollapsesBrs(t *testing.T) {
	doc := parseFragment(t, `<html><body><font>hi</font><p>a<br><br>b</p></body></html>`)

	prepDocument(doc)

	assert.Equal(t, 0, doc.Find("font").Length())
	assert.Equal(t, 1, doc.Find("span").Length())
	assert.Equal(t, 0, doc.Find("br").Length())
	assert.Equal(t, 0, doc.Find("style").Length())
}
