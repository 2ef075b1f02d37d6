package engine

import (
	"github.com/PuerkitoBio/goquery"
)

// aggregateSiblings implements §4.9: build the article container from
// top's well-scored siblings, retagging any included sibling that is
// not a DIV, ARTICLE, SECTION or P to DIV before moving it in.
func aggregateSiblings(doc *goquery.Document, top *goquery.Selection) *goquery.Selection {
	articleContent := createElement("div")

	topScore, _ := contentScoreAttr(top)
	threshold := topScore * SiblingScoreMultiplier
	if threshold < MinSiblingThreshold {
		threshold = MinSiblingThreshold
	}

	topClass, _ := top.Attr("class")
	parent := top.Parent()
	if parent.Length() == 0 {
		articleContent.AppendSelection(top)
		return articleContent
	}

	var siblings []*goquery.Selection
	parent.Children().Each(func(_ int, s *goquery.Selection) {
		siblings = append(siblings, s)
	})

	for _, sibling := range siblings {
		include := false

		if isSameNode(sibling, top) {
			include = true
		} else {
			var bonus float64
			siblingScore, hasScore := contentScoreAttr(sibling)

			if topClass != "" {
				if siblingClass, _ := sibling.Attr("class"); siblingClass == topClass {
					bonus = topScore * SiblingScoreMultiplier
				}
			}

			switch {
			case bonus > 0 && siblingScore+bonus >= threshold:
				include = true
			case hasScore && siblingScore+bonus >= threshold:
				include = true
			case getNodeName(sibling) == "P":
				include = qualifiesAsParagraphSibling(sibling)
			}
		}

		if !include {
			continue
		}

		if !contains(AlterToDivExceptions, getNodeName(sibling)) {
			sibling = setNodeTag(doc, sibling, "div")
		}
		articleContent.AppendSelection(sibling)
	}

	return articleContent
}

func qualifiesAsParagraphSibling(p *goquery.Selection) bool {
	text := getInnerText(p, true)
	length := len(text)
	density := getLinkDensity(p)

	if length > ShortParagraphMaxLen && density < 0.25 {
		return true
	}
	if length > 0 && length < ShortParagraphMaxLen && density == 0 && sentenceEndSpace.MatchString(text) {
		return true
	}
	return false
}
