package engine

import (
	"github.com/PuerkitoBio/goquery"
)

// promoteTopCandidate implements §4.8: pick a starting "top" from the
// scored candidates, optionally create a fallback wrapper when none is
// usable, then walk ancestors looking for a better root.
func promoteTopCandidate(doc *goquery.Document, body *goquery.Selection, candidates []*candidate, weightClasses bool) (top *goquery.Selection, createdFallback bool) {
	var best *candidate
	if len(candidates) > 0 {
		best = candidates[0]
	}

	if best == nil || getNodeName(best.node) == "BODY" {
		wrapper := createElement("div")
		body.Contents().Each(func(_ int, c *goquery.Selection) {
			n := c.Get(0)
			body.Get(0).RemoveChild(n)
			wrapper.Get(0).AppendChild(n)
		})
		body.AppendSelection(wrapper)
		initializeNode(wrapper, weightClasses)
		return wrapper, true
	}

	top = best.node

	var alternativeLists [][]*goquery.Selection
	for i := 1; i < len(candidates); i++ {
		if candidates[i].score >= best.score*0.75 {
			alternativeLists = append(alternativeLists, getNodeAncestors(candidates[i].node, 0))
		}
	}

	if len(alternativeLists) >= MinimumTopCandidates {
		parent := top.Parent()
		for parent.Length() > 0 && getNodeName(parent) != "BODY" {
			count := 0
			for _, list := range alternativeLists {
				for _, a := range list {
					if isSameNode(a, parent) {
						count++
						break
					}
				}
			}
			if count >= MinimumTopCandidates {
				top = parent
				break
			}
			parent = parent.Parent()
		}
	}

	if _, ok := contentScoreAttr(top); !ok {
		initializeNode(top, weightClasses)
	}

	top = ascendAncestors(top, weightClasses)
	top = collapseOnlyChildAncestors(top)

	if _, ok := contentScoreAttr(top); !ok {
		initializeNode(top, weightClasses)
	}

	return top, false
}

// ascendAncestors walks up from top, skipping unscored ancestors, and
// adopts the first ancestor whose score exceeds the last score seen. It
// stops without moving at an ancestor scoring below a third of top's
// starting score.
func ascendAncestors(top *goquery.Selection, weightClasses bool) *goquery.Selection {
	lastScore, _ := contentScoreAttr(top)
	threshold := lastScore / 3

	parent := top.Parent()
	for parent.Length() > 0 && getNodeName(parent) != "BODY" {
		parentScore, ok := contentScoreAttr(parent)
		if !ok {
			parent = parent.Parent()
			continue
		}
		if parentScore < threshold {
			break
		}
		if parentScore > lastScore {
			top = parent
			break
		}
		lastScore = parentScore
		parent = parent.Parent()
	}
	return top
}

// collapseOnlyChildAncestors walks up past ancestors that have exactly
// one element child, since such a wrapper carries no extra signal.
func collapseOnlyChildAncestors(top *goquery.Selection) *goquery.Selection {
	for {
		parent := top.Parent()
		if parent.Length() == 0 || getNodeName(parent) == "BODY" {
			break
		}
		if parent.Children().Length() != 1 {
			break
		}
		top = parent
	}
	return top
}
