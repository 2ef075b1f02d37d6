package engine

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// metadata collects the values grab-metadata pulls out of <meta>,
// <title>, JSON-LD, and the head's icon/image links (§4.4).
type metadata struct {
	Title      string
	Byline     string
	Excerpt    string
	SiteName   string
	FaviconURL string
	ImageURL   string
}

// grabMetadata implements §4.4 end to end: meta-tag scan, JSON-LD
// enrichment, the title heuristic, and the favicon/image fallback
// chains.
func grabMetadata(doc *goquery.Document, root *html.Node, base *url.URL) metadata {
	values := map[string]string{}

	doc.Find("meta").Each(func(_ int, m *goquery.Selection) {
		name, _ := m.Attr("name")
		property, _ := m.Attr("property")
		content := strings.TrimSpace(m.AttrOr("content", ""))
		if content == "" {
			return
		}

		var key string
		if metaNamePattern.MatchString(name) {
			key = normalizeMetaKey(name)
		} else if metaPropertyPattern.MatchString(property) {
			key = normalizeMetaKey(property)
		}
		if key != "" {
			values[key] = content
		}

		if strings.EqualFold(name, "author") || strings.EqualFold(property, "author") {
			values["_byline"] = content
		}
		if strings.EqualFold(property, "og:site_name") || strings.EqualFold(name, "dc:site_name") {
			values["_siteName"] = content
		}
	})

	md := metadata{
		Excerpt:  firstNonEmpty(values["ogdescription"], values["twitterdescription"], values["description"]),
		Byline:   values["_byline"],
		SiteName: values["_siteName"],
	}

	if jsonLD := extractJSONLD(doc); jsonLD != nil {
		if jsonLD.title != "" {
			values["_jsonldTitle"] = jsonLD.title
		}
		if jsonLD.author != "" {
			md.Byline = jsonLD.author
		}
		if jsonLD.description != "" {
			md.Excerpt = jsonLD.description
		}
		if jsonLD.siteName != "" {
			md.SiteName = jsonLD.siteName
		}
	}

	md.Title = getArticleTitle(doc)
	if md.Title == "" {
		md.Title = firstNonEmpty(values["_jsonldTitle"], values["ogtitle"], values["twittertitle"])
	}

	md.FaviconURL = absolutize(base, firstHeadLinkHref(root,
		`//head/link[@rel="shortcut icon"]`,
		`//head/link[@rel="icon"]`,
	))

	md.ImageURL = absolutize(base, firstHeadAttr(root, []headXPath{
		{`//head/meta[@property="og:image:secure_url"]`, "content"},
		{`//head/meta[@property="og:image:url"]`, "content"},
		{`//head/meta[@property="og:image"]`, "content"},
		{`//head/meta[@name="twitter:image"]`, "content"},
		{`//head/link[@rel="image_src"]`, "href"},
		{`//head/meta[@name="thumbnail"]`, "content"},
	}))

	return md
}

// firstHeadLinkHref walks xpaths in order against the shared html.Node
// tree and returns the first non-empty href found.
func firstHeadLinkHref(root *html.Node, xpaths ...string) string {
	for _, xp := range xpaths {
		if n := htmlquery.FindOne(root, xp); n != nil {
			if v := htmlquery.SelectAttr(n, "href"); v != "" {
				return v
			}
		}
	}
	return ""
}

// headXPath pairs an element-selecting xpath with the attribute to
// read off the first matching element.
type headXPath struct {
	xpath string
	attr  string
}

// firstHeadAttr evaluates element xpaths in order and returns the
// first non-empty named attribute found.
func firstHeadAttr(root *html.Node, candidates []headXPath) string {
	for _, c := range candidates {
		if n := htmlquery.FindOne(root, c.xpath); n != nil {
			if v := htmlquery.SelectAttr(n, c.attr); v != "" {
				return v
			}
		}
	}
	return ""
}

var metaKeyNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeMetaKey(raw string) string {
	return metaKeyNonAlnum.ReplaceAllString(strings.ToLower(raw), "")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type jsonLDData struct {
	title       string
	author      string
	description string
	siteName    string
}

// extractJSONLD scans <script type="application/ld+json"> blocks for
// an article-shaped schema.org object using targeted regexes rather
// than a full JSON parse (the spec never specifies a JSON grammar for
// arbitrary nesting, so this only trusts the flat shape actual
// publishers emit).
func extractJSONLD(doc *goquery.Document) *jsonLDData {
	var found *jsonLDData
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		body := s.Text()
		if !jsonLDContext.MatchString(body) {
			return true
		}
		typeMatch := jsonLDType.FindStringSubmatch(body)
		if typeMatch == nil || !jsonLDArticleType.MatchString(typeMatch[1]) {
			return true
		}

		data := &jsonLDData{}
		if m := jsonLDTitle.FindStringSubmatch(body); m != nil {
			data.title = m[1]
		}
		if m := jsonLDAuthor.FindStringSubmatch(body); m != nil {
			data.author = m[1]
		}
		if m := jsonLDDescription.FindStringSubmatch(body); m != nil {
			data.description = m[1]
		}
		if m := jsonLDSiteName.FindStringSubmatch(body); m != nil {
			data.siteName = m[1]
		}
		found = data
		return false
	})
	return found
}

// getArticleTitle implements the title heuristic of §4.4.
func getArticleTitle(doc *goquery.Document) string {
	orig := strings.TrimSpace(doc.Find("title").First().Text())
	cur := orig
	if cur == "" {
		return ""
	}

	hadSeparator := titleSeparator.MatchString(cur)

	if hadSeparator {
		cur = titleTrimTrailing.ReplaceAllString(orig, "$1")
		if wordCount(cur) < 3 {
			if opposite := titleTrimLeading.ReplaceAllString(orig, "$1"); wordCount(opposite) > wordCount(cur) {
				cur = opposite
			}
		}
	} else if strings.Contains(cur, ": ") {
		matchesHeading := false
		doc.Find("h1, h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
			if strings.TrimSpace(h.Text()) == cur {
				matchesHeading = true
				return false
			}
			return true
		})
		if !matchesHeading {
			if idx := strings.LastIndex(cur, ":"); idx >= 0 {
				cur = strings.TrimSpace(cur[idx+1:])
			}
			if wordCount(cur) < 3 {
				if idx := strings.Index(orig, ":"); idx >= 0 {
					if opposite := strings.TrimSpace(orig[idx+1:]); wordCount(opposite) > wordCount(cur) {
						cur = opposite
					}
				}
			}
		}
	} else if len(cur) > 150 || len(cur) < 15 {
		h1 := doc.Find("h1")
		if h1.Length() == 1 {
			cur = strings.TrimSpace(h1.Text())
		}
	}

	cur = strings.TrimSpace(cur)

	if wordCount(cur) <= 4 {
		strippedDrop := wordCount(titleSeparatorRun.ReplaceAllString(orig, "")) - wordCount(cur)
		if !hadSeparator || strippedDrop != 1 {
			cur = orig
		}
	}

	return cur
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
