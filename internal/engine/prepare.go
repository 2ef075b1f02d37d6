package engine

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// removeScripts strips every <script> and <noscript> element, clearing
// a script's inline content and src before detaching it (§4.3).
func removeScripts(doc *goquery.Document) {
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		s.SetText("")
		s.RemoveAttr("src")
	})
	doc.Find("script, noscript").Remove()
}

// unwrapLazyNoscriptImages replaces a lazy-loading placeholder image
// with the real image carried in an immediately-following <noscript>
// fallback, before scripts are stripped. Supplements §4.2 with the
// common `<img data-src=...><noscript><img src=...></noscript>`
// markup pattern (see SPEC_FULL.md "Noscript lazy-image unwrapping").
func unwrapLazyNoscriptImages(doc *goquery.Document) {
	doc.Find("noscript").Each(func(_ int, noscript *goquery.Selection) {
		// With scripting enabled (the parser's default) a <noscript>'s
		// content is kept as a single raw text node rather than elements.
		inner := noscript.Text()
		if noscript.Children().Length() > 0 {
			markup, err := noscript.Html()
			if err != nil {
				return
			}
			inner = markup
		}
		if strings.TrimSpace(inner) == "" {
			return
		}
		tmp, err := goquery.NewDocumentFromReader(strings.NewReader(inner))
		if err != nil {
			return
		}
		// goquery.NewDocumentFromReader wraps any fragment in an implicit
		// html/head/body, so "only an image" is checked against body's
		// own children rather than every element in the parsed tree.
		body := tmp.Find("body")
		if body.Children().Length() != 1 || strings.TrimSpace(body.Text()) != "" {
			return
		}
		newImg := body.Children().First()
		if getNodeName(newImg) != "IMG" {
			return
		}

		prev := noscript.Prev()
		var prevImg *goquery.Selection
		if getNodeName(prev) == "IMG" {
			prevImg = prev
		} else if prev.Length() == 1 && prev.Find("img").Length() == 1 {
			prevImg = prev.Find("img").First()
		}
		if prevImg == nil {
			return
		}

		for _, attr := range []string{"src", "srcset"} {
			if v, ok := newImg.Attr(attr); ok && v != "" {
				prevImg.SetAttr(attr, v)
			}
		}
	})
}

// prepDocument normalizes ad-hoc markup ahead of scoring (§4.2):
// removes <style>, rewrites <font> to <span> in place, and collapses
// <br> runs into <p> blocks.
func prepDocument(doc *goquery.Document) {
	doc.Find("style").Remove()

	doc.Find("font").Each(func(_ int, s *goquery.Selection) {
		setNodeTag(doc, s, "span")
	})

	replaceBrs(doc)
}

// replaceBrs implements §4.2's <br><br> collapsing: each <br> that is
// immediately followed (skipping whitespace text) by another <br> is
// itself removed, and if at least one sibling <br> was consumed the
// original <br> becomes a fresh <p> that absorbs the following
// siblings up to the next <br><br> run.
func replaceBrs(doc *goquery.Document) {
	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		if br.Length() == 0 || br.Get(0).Parent == nil {
			return
		}
		replaceBr(doc, br)
	})
}

func replaceBr(doc *goquery.Document, br *goquery.Selection) {
	next := nextNonWhitespaceElementSibling(br)
	removedSibling := false
	for next != nil && getNodeName(goquery.NewDocumentFromNode(next).Selection) == "BR" {
		following := nextNonWhitespaceElementSibling(goquery.NewDocumentFromNode(next).Selection)
		removeNode(next)
		removedSibling = true
		next = following
	}
	if !removedSibling {
		return
	}

	p := createElement("p")
	brNode := br.Get(0)
	parent := brNode.Parent
	parent.InsertBefore(p.Get(0), brNode)
	parent.RemoveChild(brNode)

	for {
		sib := p.Get(0).NextSibling
		if sib == nil {
			break
		}
		if sib.Type == html.ElementNode && strings.ToUpper(sib.Data) == "BR" {
			afterBr := nextNonWhitespaceSiblingNode(sib)
			if afterBr != nil && afterBr.Type == html.ElementNode && strings.ToUpper(afterBr.Data) == "BR" {
				break
			}
		}
		parent.RemoveChild(sib)
		p.Get(0).AppendChild(sib)
	}
}

// nextNonWhitespaceElementSibling returns the next sibling node of s
// that is not a whitespace-only text node, or nil. The result may be a
// text node with content, not only an element.
func nextNonWhitespaceElementSibling(s *goquery.Selection) *html.Node {
	if s == nil || s.Length() == 0 {
		return nil
	}
	return nextNonWhitespaceSiblingNode(s.Get(0))
}

func nextNonWhitespaceSiblingNode(n *html.Node) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.TextNode && strings.TrimSpace(sib.Data) == "" {
			continue
		}
		return sib
	}
	return nil
}

func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
