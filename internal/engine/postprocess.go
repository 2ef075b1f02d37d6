package engine

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fixRelativeURIs implements §4.11: absolutize every <a href> and
// <img src>, demoting javascript: anchors to plain text.
func fixRelativeURIs(doc *goquery.Document, content *goquery.Selection, base *url.URL) {
	content.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if strings.HasPrefix(href, "javascript:") {
			text := createTextNode(a.Text())
			node := a.Get(0)
			if node.Parent != nil {
				node.Parent.InsertBefore(text, node)
				node.Parent.RemoveChild(node)
			}
			return
		}
		a.SetAttr("href", absolutize(base, href))
	})

	content.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok {
			img.SetAttr("src", absolutize(base, src))
		}
	})
}

// cleanIDsAndClasses implements §4.11: strip id unless preserved, keep
// only preserved class tokens, drop the class attribute entirely when
// nothing survives.
func cleanIDsAndClasses(s *goquery.Selection) {
	if id, ok := s.Attr("id"); ok && !contains(IDsToPreserve, id) {
		s.RemoveAttr("id")
	}

	if class, ok := s.Attr("class"); ok {
		var kept []string
		for _, token := range strings.Fields(class) {
			if contains(ClassesToPreserve, token) {
				kept = append(kept, token)
			}
		}
		if len(kept) == 0 {
			s.RemoveAttr("class")
		} else {
			s.SetAttr("class", strings.Join(kept, " "))
		}
	}

	s.Children().Each(func(_ int, c *goquery.Selection) {
		cleanIDsAndClasses(c)
	})
}
