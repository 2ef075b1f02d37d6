package readably

import (
	"fmt"
	"io"
	"time"

	"github.com/aodin/readably/internal/engine"
)

// Extractor extracts article content from HTML, given the page's
// source URI.
type Extractor interface {
	// ExtractFromHTML extracts article content from an HTML string.
	ExtractFromHTML(sourceURI, html string, options *ExtractionOptions) (*Article, error)

	// ExtractFromReader extracts article content from an io.Reader.
	ExtractFromReader(sourceURI string, r io.Reader, options *ExtractionOptions) (*Article, error)
}

// articleExtractor is the concrete implementation of Extractor.
type articleExtractor struct {
	options ExtractionOptions
}

// New creates a new Extractor with the provided options.
//
// Example:
//
//	ext := readably.New(
//	    readably.WithTimeout(time.Second*60),
//	)
func New(opts ...Option) Extractor {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &articleExtractor{options: options}
}

// ExtractFromHTML extracts article content from an HTML string. The
// extraction runs in a goroutine and is raced against the configured
// timeout; a nil Article with a nil error means the page had no
// recoverable article content.
func (e *articleExtractor) ExtractFromHTML(sourceURI, html string, options *ExtractionOptions) (*Article, error) {
	if options == nil {
		options = &e.options
	}
	if len(html) > options.MaxBufferSize {
		return nil, fmt.Errorf("readably: input of %d bytes exceeds max buffer size %d", len(html), options.MaxBufferSize)
	}

	type result struct {
		article *Article
		err     error
	}
	resultCh := make(chan result, 1)

	go func() {
		article, err := engine.Parse(sourceURI, html)
		resultCh <- result{article, err}
	}()

	select {
	case r := <-resultCh:
		return r.article, r.err
	case <-time.After(options.Timeout):
		return nil, fmt.Errorf("readably: extraction timed out after %v", options.Timeout)
	}
}

// ExtractFromReader extracts article content from an io.Reader by
// reading it fully and delegating to ExtractFromHTML.
func (e *articleExtractor) ExtractFromReader(sourceURI string, r io.Reader, options *ExtractionOptions) (*Article, error) {
	if options == nil {
		options = &e.options
	}

	body, err := io.ReadAll(io.LimitReader(r, int64(options.MaxBufferSize)+1))
	if err != nil {
		return nil, fmt.Errorf("readably: reading input: %w", err)
	}

	return e.ExtractFromHTML(sourceURI, string(body), options)
}
