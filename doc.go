/*
Package readably extracts the main article content from an HTML page,
given the page's source URI and raw markup. It scores the document's
elements by text density and tag semantics, strips chrome (navigation,
ads, widgets, share buttons), and returns a cleaned HTML fragment
alongside plain text, title, byline, excerpt, favicon, and
representative image.

Basic Usage:

    import "github.com/aodin/readably"

    ext := readably.New()
    article, err := ext.ExtractFromHTML("https://example.com/a/b.html", htmlString, nil)
    if err != nil {
        // Handle error
    }

    fmt.Printf("Title: %s\n", article.Title)
    fmt.Printf("Byline: %s\n", article.Byline)
    fmt.Printf("Content: %s\n", article.Content)

Advanced Usage with Options:

    ext := readably.New(
        readably.WithMaxBufferSize(4 << 20),
        readably.WithTimeout(time.Second*30),
    )

    article, err := ext.ExtractFromReader(sourceURI, reader, nil)
*/
package readably
