package engine

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// Parse runs the full pipeline of §4.1–§4.12 against rawHTML, anchored
// at the given base URI, and returns the extracted article. A nil
// Article (no error) means the document had no recoverable content —
// that is a result variant, not a failure (§7). err is non-nil only
// for malformed-input API misuse: an unparseable base URI or HTML the
// parser cannot build a document from at all.
func Parse(sourceURI, rawHTML string) (*Article, error) {
	base, err := url.Parse(sourceURI)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, WrapParseError(ErrInvalidURI, "Parse")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil || doc == nil {
		return nil, WrapParseError(ErrNoDocument, "Parse")
	}

	article := runPipeline(doc, base)
	if article == nil {
		return nil, nil
	}
	return article, nil
}

// runPipeline never panics its way out: any unexpected nil navigation
// during the algorithm is recovered and treated as "no article", per
// §7's unexpected-runtime-failure category.
func runPipeline(doc *goquery.Document, base *url.URL) (article *Article) {
	defer func() {
		if recover() != nil {
			article = nil
		}
	}()

	unwrapLazyNoscriptImages(doc)
	md := grabMetadata(doc, doc.Get(0), base)

	removeScripts(doc)
	prepDocument(doc)

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil
	}
	snapshot, err := body.Html()
	if err != nil {
		return nil
	}

	flags := FlagStripUnlikelys | FlagWeightClasses | FlagCleanConditionally

	for {
		body.SetHtml(snapshot)
		body = doc.Find("body").First()

		candidates, byline := scoreDocument(doc, body, flags)
		if byline != "" && md.Byline == "" {
			md.Byline = byline
		}

		ranked := topCandidates(candidates, NTopCandidates)
		top, createdFallback := promoteTopCandidate(doc, body, ranked, flags&FlagWeightClasses != 0)
		articleContent := aggregateSiblings(doc, top)
		prepArticle(articleContent, md.Title, flags)

		textLength := len(getInnerText(articleContent, true))
		if textLength >= WordThreshold {
			return finishArticle(doc, articleContent, createdFallback, md, base)
		}

		switch {
		case flags&FlagStripUnlikelys != 0:
			flags &^= FlagStripUnlikelys
		case flags&FlagWeightClasses != 0:
			flags &^= FlagWeightClasses
		case flags&FlagCleanConditionally != 0:
			flags &^= FlagCleanConditionally
		default:
			return nil
		}
	}
}

func finishArticle(doc *goquery.Document, articleContent *goquery.Selection, createdFallback bool, md metadata, base *url.URL) *Article {
	var page *goquery.Selection
	if createdFallback {
		page = articleContent
		page.SetAttr("id", "readability-page-1")
		page.SetAttr("class", "page")
	} else {
		page = createElement("div")
		page.SetAttr("id", "readability-page-1")
		page.SetAttr("class", "page")
		articleContent.Contents().Each(func(_ int, c *goquery.Selection) {
			page.AppendSelection(c)
		})
	}

	fixRelativeURIs(doc, page, base)
	cleanIDsAndClasses(page)

	excerpt := md.Excerpt
	if excerpt == "" {
		if p := page.Find("p").First(); p.Length() > 0 {
			excerpt = strings.TrimSpace(p.Text())
		}
	}

	imageURL := md.ImageURL
	if imageURL == "" {
		if img := page.Find("img").First(); img.Length() > 0 {
			if src, ok := img.Attr("src"); ok {
				imageURL = src
			}
		}
	}

	content := getOuterHTML(page)
	textContent := getInnerText(page, false)

	return &Article{
		URI:         base.String(),
		Title:       innerTrim(md.Title),
		Byline:      innerTrim(md.Byline),
		Content:     content,
		TextContent: textContent,
		Length:      len([]rune(textContent)),
		Excerpt:     innerTrim(excerpt),
		SiteName:    md.SiteName,
		FaviconURL:  md.FaviconURL,
		ImageURL:    imageURL,
	}
}

// innerTrim composes the string to NFC, collapses runs of whitespace
// (including tabs and newlines) to a single space, and trims the ends.
func innerTrim(s string) string {
	s = norm.NFC.String(s)
	s = innerTrimWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
