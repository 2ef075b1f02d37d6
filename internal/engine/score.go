package engine

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var headingTags = map[string]bool{"H1": true, "H2": true, "H3": true, "H4": true, "H5": true, "H6": true}

// candidateRegistry tracks one candidate per underlying *html.Node so
// repeated ancestor visits during scoring accumulate onto the same
// record instead of creating duplicates.
type candidateRegistry struct {
	byNode map[*html.Node]*candidate
	order  []*candidate
}

func newCandidateRegistry() *candidateRegistry {
	return &candidateRegistry{byNode: map[*html.Node]*candidate{}}
}

func (r *candidateRegistry) get(s *goquery.Selection) *candidate {
	return r.byNode[s.Get(0)]
}

func (r *candidateRegistry) put(s *goquery.Selection, c *candidate) {
	r.byNode[s.Get(0)] = c
	r.order = append(r.order, c)
}

func (r *candidateRegistry) list() []*candidate {
	return r.order
}

// scoreDocument is the content-scorer hot loop (§4.6): a single
// depth-first pass that prunes unlikely chrome, collects scoreable
// elements, normalizes DIV structure, and hands back the scored
// candidates discovered along the way.
func scoreDocument(doc *goquery.Document, body *goquery.Selection, flags int) (candidates []*candidate, articleByline string) {
	stripUnlikelys := flags&FlagStripUnlikelys != 0
	weightClasses := flags&FlagWeightClasses != 0

	var elementsToScore []*goquery.Selection

	node := body
	for node != nil {
		name := getNodeName(node)
		matchString := node.AttrOr("class", "") + " " + node.AttrOr("id", "")

		if articleByline == "" {
			rel, _ := node.Attr("rel")
			if rel == "author" || byline.MatchString(matchString) {
				text := strings.TrimSpace(getInnerText(node, true))
				if len(text) > 0 && len(text) < ByLineMaxLen {
					articleByline = text
					node = removeAndGetNext(node)
					continue
				}
			}
		}

		if stripUnlikelys {
			if unlikelyCandidates.MatchString(matchString) && !okMaybeItsACandidate.MatchString(matchString) &&
				name != "BODY" && name != "A" {
				node = removeAndGetNext(node)
				continue
			}
		}

		if (name == "DIV" || name == "SECTION" || name == "HEADER" || headingTags[name]) && isElementWithoutContent(node) {
			node = removeAndGetNext(node)
			continue
		}

		if contains(TagsToScore, name) {
			elementsToScore = append(elementsToScore, node)
		}

		if name == "DIV" {
			switch {
			case hasSinglePInside(node):
				p := node.Children().First()
				node.ReplaceWithSelection(p)
				elementsToScore = append(elementsToScore, p)
				node = p
			case !hasChildBlockElement(node):
				newNode := setNodeTag(doc, node, "p")
				elementsToScore = append(elementsToScore, newNode)
				node = newNode
			default:
				node.Contents().Each(func(_ int, c *goquery.Selection) {
					n := c.Get(0)
					if n == nil || n.Type != html.TextNode || strings.TrimSpace(n.Data) == "" {
						return
					}
					p := createElement("p")
					p.SetAttr("style", "display:inline")
					p.SetAttr("class", readabilityStyledClass)
					p.Get(0).AppendChild(createTextNode(n.Data))
					parent := n.Parent
					parent.InsertBefore(p.Get(0), n)
					parent.RemoveChild(n)
				})
			}
		}

		node = getNextNode(node, false)
	}

	registry := newCandidateRegistry()

	for _, e := range elementsToScore {
		if e.Parent().Length() == 0 {
			continue
		}
		text := getInnerText(e, true)
		if len(text) < MinScoredTextLength {
			continue
		}

		ancestors := getNodeAncestors(e, 3)
		if len(ancestors) == 0 {
			continue
		}

		commaCount := strings.Count(text, ",")
		lenBonus := len(text) / 100
		if lenBonus > 3 {
			lenBonus = 3
		}
		score := 1 + float64(commaCount) + float64(lenBonus)

		for level, ancestor := range ancestors {
			var divider float64
			switch level {
			case 0:
				divider = AncestorScoreDividerL0
			case 1:
				divider = AncestorScoreDividerL1
			default:
				divider = float64(level) * 3
			}

			c := registry.get(ancestor)
			if c == nil {
				c = initializeNode(ancestor, weightClasses)
				registry.put(ancestor, c)
			}
			c.score += score / divider
			ancestor.SetAttr(attrContentScore, strconv.FormatFloat(c.score, 'f', -1, 64))
		}
	}

	return registry.list(), articleByline
}

// initializeNode assigns a tag-based base score plus class/id weight
// and returns a fresh candidate wrapping node (§4.6 "Initialize-node").
func initializeNode(node *goquery.Selection, weightClasses bool) *candidate {
	base := 0.0
	switch getNodeName(node) {
	case "DIV":
		base = DivInitialScore
	case "PRE", "TD", "BLOCKQUOTE":
		base = BlockquoteInitialScore
	case "ADDRESS", "OL", "UL", "DL", "DD", "DT", "LI", "FORM":
		base = NegativeListInitial
	case "H1", "H2", "H3", "H4", "H5", "H6", "TH":
		base = HeadingInitialScore
	}
	base += float64(getClassWeight(node, weightClasses))
	node.SetAttr(attrContentScore, strconv.FormatFloat(base, 'f', -1, 64))
	return &candidate{node: node, score: base}
}

// topCandidates returns the K highest-adjusted-score candidates in
// descending order (§4.6 "Top-candidate selection").
func topCandidates(candidates []*candidate, k int) []*candidate {
	sorted := make([]*candidate, 0, k)
	for _, c := range candidates {
		adjusted := c.adjustedScore()
		pos := len(sorted)
		for i, existing := range sorted {
			if adjusted > existing.adjustedScore() {
				pos = i
				break
			}
		}
		if pos >= k {
			continue
		}
		sorted = append(sorted, nil)
		copy(sorted[pos+1:], sorted[pos:])
		sorted[pos] = c
		if len(sorted) > k {
			sorted = sorted[:k]
		}
	}
	return sorted
}

// contentScoreAttr reads a node's persisted scratch score, if any.
func contentScoreAttr(s *goquery.Selection) (float64, bool) {
	v, ok := s.Attr(attrContentScore)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
