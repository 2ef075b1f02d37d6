package readably

import "github.com/aodin/readably/internal/engine"

// Article represents the extracted content and metadata from a
// webpage: title, byline, cleaned HTML content, plain text, excerpt,
// site name, favicon, and a representative image.
type Article = engine.Article
