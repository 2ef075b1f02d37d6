package engine

import "github.com/PuerkitoBio/goquery"

// Article is the immutable output record of a successful Parse,
// mirroring spec.md §3's Article record.
type Article struct {
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Byline      string `json:"byline"`
	Content     string `json:"content"`      // cleaned HTML fragment
	TextContent string `json:"text_content"` // plain text
	Length      int    `json:"length"`       // character count of TextContent
	Excerpt     string `json:"excerpt"`
	SiteName    string `json:"site_name"`
	FaviconURL  string `json:"favicon_url"`
	ImageURL    string `json:"image_url"`
}

// candidate tracks a node under consideration as the article root
// during scoring (§4.6) and promotion (§4.8).
type candidate struct {
	node  *goquery.Selection
	score float64
}

// adjustedScore applies the link-density penalty used to rank
// candidates (§4.6 "Top-candidate selection").
func (c *candidate) adjustedScore() float64 {
	return c.score * (1 - getLinkDensity(c.node))
}
