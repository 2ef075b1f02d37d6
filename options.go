package readably

import "time"

// ExtractionOptions configures the article extraction process: a
// ceiling on input size and a deadline for the whole pipeline.
type ExtractionOptions struct {
	MaxBufferSize int           // maximum accepted size, in bytes, of the raw HTML input
	Timeout       time.Duration // deadline for a single ExtractFromHTML/ExtractFromReader call
}

// DefaultOptions returns the default extraction options: a 4MB input
// ceiling and a 30 second deadline.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		MaxBufferSize: 4 * 1024 * 1024,
		Timeout:       30 * time.Second,
	}
}

// Option configures an Extractor's default ExtractionOptions via the
// functional options pattern.
type Option func(*ExtractionOptions)

// WithMaxBufferSize sets the maximum accepted size of the raw HTML
// input, in bytes. Extraction fails fast on larger input rather than
// spending time parsing markup it will discard.
func WithMaxBufferSize(size int) Option {
	return func(o *ExtractionOptions) {
		o.MaxBufferSize = size
	}
}

// WithTimeout sets the deadline for a single extraction call. Parsing
// is otherwise synchronous and unbounded (§5), so this is enforced by
// racing the parse against a timer, not by cancellation internal to
// the algorithm.
func WithTimeout(timeout time.Duration) Option {
	return func(o *ExtractionOptions) {
		o.Timeout = timeout
	}
}
