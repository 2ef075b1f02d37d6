package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// prepArticle implements §4.10's ordered cleanup passes over a freshly
// aggregated article container.
func prepArticle(articleContent *goquery.Selection, title string, flags int) {
	cleanStyles(articleContent)
	markDataTables(articleContent)

	cleanConditionally(articleContent, "form", flags)
	cleanConditionally(articleContent, "fieldset", flags)
	clean(articleContent, "object")
	clean(articleContent, "embed")
	clean(articleContent, "h1")
	clean(articleContent, "footer")

	articleContent.Children().Each(func(_ int, child *goquery.Selection) {
		cleanMatchedNodes(child, shareElements)
	})

	h2s := articleContent.Find("h2")
	if h2s.Length() == 1 {
		h2Text := strings.TrimSpace(h2s.First().Text())
		if title != "" && len(h2Text) > 0 {
			lengthSimilar := absInt(len(h2Text)-len(title)) < len(title)/2
			contains := strings.Contains(h2Text, title) || strings.Contains(title, h2Text)
			if lengthSimilar && contains {
				clean(articleContent, "h2")
			}
		}
	}

	clean(articleContent, "iframe")
	clean(articleContent, "input")
	clean(articleContent, "textarea")
	clean(articleContent, "select")
	clean(articleContent, "button")
	cleanHeaders(articleContent, flags)

	cleanConditionally(articleContent, "table", flags)
	cleanConditionally(articleContent, "ul", flags)
	cleanConditionally(articleContent, "div", flags)

	removeEmptyParagraphs(articleContent)
	removeBrsBeforeParagraphs(articleContent)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// cleanStyles recursively strips presentational attributes, skipping
// <svg> subtrees and anything already marked readability-styled.
func cleanStyles(s *goquery.Selection) {
	if getNodeName(s) == "SVG" {
		return
	}
	if class, _ := s.Attr("class"); class == readabilityStyledClass {
		return
	}

	for _, attr := range PresentationalAttributes {
		s.RemoveAttr(attr)
	}
	if contains(DeprecatedSizeAttributeElems, getNodeName(s)) {
		s.RemoveAttr("width")
		s.RemoveAttr("height")
	}

	s.Children().Each(func(_ int, c *goquery.Selection) {
		cleanStyles(c)
	})
}

// markDataTables classifies every <table> as data or presentation
// (§4.10 step 2) and records the verdict in the data-table scratch
// attribute so clean-conditionally can consult it later.
func markDataTables(root *goquery.Selection) {
	root.Find("table").Each(func(_ int, table *goquery.Selection) {
		isData := classifyTable(table)
		table.SetAttr(attrDataTable, strconv.FormatBool(isData))
	})
}

func classifyTable(table *goquery.Selection) bool {
	if role, ok := table.Attr("role"); ok && role == "presentation" {
		return false
	}
	if dt, ok := table.Attr("datatable"); ok && dt == "0" {
		return false
	}
	if summary, ok := table.Attr("summary"); ok && strings.TrimSpace(summary) != "" {
		return true
	}
	caption := table.Find("caption").First()
	if caption.Length() > 0 && caption.Children().Length() > 0 {
		return true
	}
	for _, tag := range []string{"col", "colgroup", "tfoot", "thead", "th"} {
		if table.Find(tag).Length() > 0 {
			return true
		}
	}
	if table.Find("table").Length() > 0 {
		return false
	}

	rows, cols := tableDimensions(table)
	if rows >= 10 || cols > 4 {
		return true
	}
	return rows*cols > 10
}

func tableDimensions(table *goquery.Selection) (rows, cols int) {
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		rowSpan := attrInt(tr, "rowspan", 1)
		rows += rowSpan

		colCount := 0
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			colCount += attrInt(td, "colspan", 1)
		})
		if colCount > cols {
			cols = colCount
		}
	})
	return rows, cols
}

// clean removes every descendant of tag under e, except for media
// embeds (object/embed/iframe) whose data-* attribute values or inner
// HTML name a recognized video provider.
func clean(e *goquery.Selection, tag string) {
	isMediaTag := tag == "object" || tag == "embed" || tag == "iframe"
	e.Find(tag).Each(func(_ int, el *goquery.Selection) {
		if isMediaTag && isVideoEmbed(el) {
			return
		}
		el.Remove()
	})
}

func isVideoEmbed(el *goquery.Selection) bool {
	var attrValues strings.Builder
	for _, a := range el.Get(0).Attr {
		if strings.HasPrefix(a.Key, "data-") {
			attrValues.WriteString(a.Val)
			attrValues.WriteString(" ")
		}
	}
	if videos.MatchString(attrValues.String()) {
		return true
	}
	inner, err := el.Html()
	return err == nil && videos.MatchString(inner)
}

// cleanMatchedNodes removes every descendant of e (depth-first, not
// descending into removed subtrees) whose class+id matches pattern.
func cleanMatchedNodes(e *goquery.Selection, pattern *regexp.Regexp) {
	endOfSearch := getNextNode(e, true)
	node := getNextNode(e, false)
	for node != nil && !isSameNode(node, endOfSearch) {
		matchString := node.AttrOr("class", "") + " " + node.AttrOr("id", "")
		if pattern.MatchString(matchString) {
			node = removeAndGetNext(node)
		} else {
			node = getNextNode(node, false)
		}
	}
}

// cleanHeaders removes <h1>/<h2> elements whose class weight is
// negative, when the weight-classes flag is active.
func cleanHeaders(e *goquery.Selection, flags int) {
	weightClasses := flags&FlagWeightClasses != 0
	for _, tag := range []string{"h1", "h2"} {
		var toRemove []*goquery.Selection
		e.Find(tag).Each(func(_ int, h *goquery.Selection) {
			if getClassWeight(h, weightClasses) < 0 {
				toRemove = append(toRemove, h)
			}
		})
		for _, h := range toRemove {
			h.Remove()
		}
	}
}

// cleanConditionally applies the heuristic removal criteria of §4.10
// to every descendant of tag, only when the clean-conditionally flag
// is active.
func cleanConditionally(e *goquery.Selection, tag string, flags int) {
	if flags&FlagCleanConditionally == 0 {
		return
	}
	weightClasses := flags&FlagWeightClasses != 0

	isList := tag == "ul" || tag == "ol"

	var toRemove []*goquery.Selection
	e.Find(tag).Each(func(_ int, node *goquery.Selection) {
		if hasDataTableAncestor(node) {
			return
		}

		weight := getClassWeight(node, weightClasses)
		if weight < 0 {
			toRemove = append(toRemove, node)
			return
		}

		if getCharCount(node, ",") >= 10 {
			return
		}

		p := node.Find("p").Length()
		img := node.Find("img").Length()
		li := node.Find("li").Length() - 100
		input := node.Find("input").Length()
		embedCount := countNonVideoEmbeds(node)
		linkDensity := getLinkDensity(node)
		textLen := len(getInnerText(node, true))
		hasFigureAncestor := hasAncestorTag(node, "figure", -1, nil)

		remove := false
		switch {
		case img > 1 && float64(p)/float64(img) < 0.5 && !hasFigureAncestor:
			remove = true
		case !isList && li > p:
			remove = true
		case input > p/3:
			remove = true
		case !isList && textLen < 25 && (img == 0 || img > 2) && !hasFigureAncestor:
			remove = true
		case !isList && weight < 25 && linkDensity > 0.2:
			remove = true
		case weight >= 25 && linkDensity > 0.5:
			remove = true
		case (embedCount == 1 && textLen < 75) || embedCount > 1:
			remove = true
		}
		if remove {
			toRemove = append(toRemove, node)
		}
	})

	for _, node := range toRemove {
		node.Remove()
	}
}

func hasDataTableAncestor(node *goquery.Selection) bool {
	for _, a := range getNodeAncestors(node, 0) {
		if getNodeName(a) != "TABLE" {
			continue
		}
		if v, ok := a.Attr(attrDataTable); ok && v == "true" {
			return true
		}
	}
	return false
}

func countNonVideoEmbeds(node *goquery.Selection) int {
	count := 0
	node.Find("object, embed, iframe").Each(func(_ int, el *goquery.Selection) {
		if !isVideoEmbed(el) {
			count++
		}
	})
	return count
}

func removeEmptyParagraphs(e *goquery.Selection) {
	var toRemove []*goquery.Selection
	e.Find("p").Each(func(_ int, p *goquery.Selection) {
		media := p.Find("img").Length() + p.Find("embed").Length() + p.Find("object").Length() + p.Find("iframe").Length()
		if media == 0 && strings.TrimSpace(p.Text()) == "" {
			toRemove = append(toRemove, p)
		}
	})
	for _, p := range toRemove {
		p.Remove()
	}
}

func removeBrsBeforeParagraphs(e *goquery.Selection) {
	var toRemove []*goquery.Selection
	e.Find("br").Each(func(_ int, br *goquery.Selection) {
		next := nextNonWhitespaceElementSibling(br)
		if next != nil && next.Type == html.ElementNode && strings.ToUpper(next.Data) == "P" {
			toRemove = append(toRemove, br)
		}
	})
	for _, br := range toRemove {
		br.Remove()
	}
}
