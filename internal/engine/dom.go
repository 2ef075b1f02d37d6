package engine

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// getNodeName returns the uppercase tag name of a selection's first
// node, or "" for an empty or text selection.
func getNodeName(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	node := s.Get(0)
	if node == nil || node.Type != html.ElementNode {
		return ""
	}
	return strings.ToUpper(node.Data)
}

// getOuterHTML serializes a selection's first node and its subtree.
func getOuterHTML(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	out, err := goquery.OuterHtml(s)
	if err != nil {
		return ""
	}
	return out
}

// isSameNode compares two selections by underlying node identity.
func isSameNode(a, b *goquery.Selection) bool {
	if a == nil || b == nil || a.Length() == 0 || b.Length() == 0 {
		return false
	}
	return a.Get(0) == b.Get(0)
}

// contains reports whether s is present in slice, case-sensitively.
func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// getNextNode implements the depth-first "next node" walk of §4.1:
// first child if not ignoring, else next sibling, else the first
// ancestor with a next sibling. Returns nil at the end of the tree.
func getNextNode(s *goquery.Selection, ignoreSelfAndKids bool) *goquery.Selection {
	if s == nil || s.Length() == 0 {
		return nil
	}

	if !ignoreSelfAndKids {
		if kids := s.Children(); kids.Length() > 0 {
			return kids.First()
		}
	}

	if next := s.Next(); next.Length() > 0 {
		return next
	}

	parent := s.Parent()
	for parent.Length() > 0 {
		if next := parent.Next(); next.Length() > 0 {
			return next
		}
		parent = parent.Parent()
	}

	return nil
}

// removeAndGetNext detaches node from the tree and returns the node
// that getNextNode would have returned before the removal — computed
// first because the removal invalidates sibling/parent links.
func removeAndGetNext(s *goquery.Selection) *goquery.Selection {
	next := getNextNode(s, true)
	if s != nil && s.Length() > 0 {
		s.Remove()
	}
	return next
}

// getNodeAncestors returns s's ancestors starting at the immediate
// parent. maxDepth == 0 means unlimited.
func getNodeAncestors(s *goquery.Selection, maxDepth int) []*goquery.Selection {
	var ancestors []*goquery.Selection
	parent := s.Parent()
	for i := 0; parent.Length() > 0; i++ {
		ancestors = append(ancestors, parent)
		if maxDepth > 0 && i+1 >= maxDepth {
			break
		}
		parent = parent.Parent()
	}
	return ancestors
}

// getInnerText returns the trimmed, optionally whitespace-normalized
// text of a selection's descendants.
func getInnerText(s *goquery.Selection, normalizeSpaces bool) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	text := strings.TrimSpace(s.Text())
	if normalizeSpaces {
		text = normalizeWhitespace.ReplaceAllString(text, " ")
	}
	return text
}

// getCharCount counts occurrences of delimiter in s's normalized text.
func getCharCount(s *goquery.Selection, delimiter string) int {
	text := getInnerText(s, true)
	if text == "" {
		return 0
	}
	return strings.Count(text, delimiter)
}

// getLinkDensity is the ratio of anchor inner-text length to total
// inner-text length of e, 0 when e carries no text at all.
func getLinkDensity(e *goquery.Selection) float64 {
	textLength := len(getInnerText(e, true))
	if textLength == 0 {
		return 0
	}

	var linkLength int
	e.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLength += len(getInnerText(a, true))
	})

	return float64(linkLength) / float64(textLength)
}

// hasAncestorTag walks parents looking for tagName within maxDepth
// (unlimited when maxDepth < 0), optionally constrained by filter.
func hasAncestorTag(s *goquery.Selection, tagName string, maxDepth int, filter func(*goquery.Selection) bool) bool {
	if s == nil || s.Length() == 0 {
		return false
	}
	tagName = strings.ToUpper(tagName)

	parent := s.Parent()
	for depth := 0; parent.Length() > 0; depth++ {
		if maxDepth >= 0 && depth >= maxDepth {
			return false
		}
		if getNodeName(parent) == tagName && (filter == nil || filter(parent)) {
			return true
		}
		parent = parent.Parent()
	}
	return false
}

// isElementWithoutContent reports whether n has no non-whitespace text
// and either has no element children or only <br>/<hr> children.
func isElementWithoutContent(n *goquery.Selection) bool {
	if n == nil || n.Length() == 0 {
		return true
	}
	if strings.TrimSpace(n.Text()) != "" {
		return false
	}
	children := n.Children()
	if children.Length() == 0 {
		return true
	}
	brHr := n.Find("br").Length() + n.Find("hr").Length()
	return children.Length() == brHr
}

// hasSinglePInside reports whether e has exactly one element child,
// that child is a <p>, and e also has a text-node child carrying
// non-whitespace content. This intentionally preserves the reference
// implementation's inverted predicate noted in spec.md §9 rather than
// the "no extra text" semantics its name would suggest.
func hasSinglePInside(e *goquery.Selection) bool {
	if e == nil || e.Length() == 0 {
		return false
	}
	children := e.Children()
	if children.Length() != 1 || getNodeName(children.First()) != "P" {
		return false
	}

	hasText := false
	e.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		node := c.Get(0)
		if node != nil && node.Type == html.TextNode && strings.TrimSpace(node.Data) != "" {
			hasText = true
			return false
		}
		return true
	})
	return hasText
}

// hasChildBlockElement reports whether e has any descendant whose
// uppercase tag appears in DivToPElems.
func hasChildBlockElement(e *goquery.Selection) bool {
	for _, tag := range DivToPElems {
		if e.Find(strings.ToLower(tag)).Length() > 0 {
			return true
		}
	}
	return false
}

// setNodeTag replaces s's first node with a freshly-created element of
// tagName carrying the same attributes and children, and returns a
// selection wrapping the new node.
func setNodeTag(doc *goquery.Document, s *goquery.Selection, tagName string) *goquery.Selection {
	if s == nil || s.Length() == 0 {
		return s
	}
	old := s.Get(0)

	newNode := &html.Node{
		Type: html.ElementNode,
		Data: strings.ToLower(tagName),
		Attr: append([]html.Attribute(nil), old.Attr...),
	}

	for child := old.FirstChild; child != nil; {
		next := child.NextSibling
		old.RemoveChild(child)
		newNode.AppendChild(child)
		child = next
	}

	if old.Parent != nil {
		old.Parent.InsertBefore(newNode, old)
		old.Parent.RemoveChild(old)
	}

	return goquery.NewDocumentFromNode(newNode).Selection
}

// createElement builds a standalone element node with no parent,
// attached to its own single-node document so goquery operations
// (AppendSelection, SetAttr, ...) work on it before it is spliced in.
func createElement(tagName string) *goquery.Selection {
	node := &html.Node{
		Type: html.ElementNode,
		Data: strings.ToLower(tagName),
	}
	return goquery.NewDocumentFromNode(node).Selection
}

// createTextNode builds a standalone text node.
func createTextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// attrInt reads an attribute as an integer, defaulting when absent or
// unparseable — used for table rowspan/colspan (§4.10 step 2), which
// the spec calls out as a possible source of overflow if parsed
// carelessly from attacker-controlled markup.
func attrInt(s *goquery.Selection, name string, def int) int {
	v, ok := s.Attr(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return def
	}
	if n > 10000 {
		n = 10000
	}
	return n
}
