// Command readably extracts readable article content from HTML files
// or standard input and prints the result as JSON, HTML, or plain text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aodin/readably"
)

type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatHTML outputFormat = "html"
	formatText outputFormat = "text"
)

func main() {
	inputFiles := flag.String("input", "-", "Input HTML file path(s) (comma-separated, use '-' for stdin)")
	uris := flag.String("uri", "", "Source URI(s) for the input(s), comma-separated, matched by position to -input")
	outputDir := flag.String("output-dir", "", "Output directory for batch processing (default: none; output goes to -output or stdout)")
	outputFile := flag.String("output", "", "Output file path (default: stdout)")
	formatStr := flag.String("format", "json", "Output format: json, html, or text")
	compact := flag.Bool("compact", false, "Output compact JSON without indentation")
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout for extraction")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "readably - Extract readable content from HTML\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s -uri <source-url> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -uri https://example.com/a.html -input article.html -output article.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat article.html | %s -uri https://example.com/a.html > article.json\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Println("readably version 0.1.0")
		os.Exit(0)
	}

	format := outputFormat(strings.ToLower(*formatStr))
	if format != formatJSON && format != formatHTML && format != formatText {
		log.Fatalf("invalid output format: %s (must be json, html, or text)", *formatStr)
	}

	inputs := strings.Split(*inputFiles, ",")
	var uriList []string
	if *uris != "" {
		uriList = strings.Split(*uris, ",")
	}

	ext := readably.New(readably.WithTimeout(*timeout))

	for i, inputPath := range inputs {
		uri := ""
		if i < len(uriList) {
			uri = uriList[i]
		}
		if uri == "" {
			log.Printf("skipping %s: -uri is required", inputPath)
			continue
		}

		if err := processInput(ext, inputPath, uri, *outputDir, *outputFile, format, *compact, len(inputs) == 1); err != nil {
			log.Printf("error processing %s: %v", inputPath, err)
		}
	}
}

func processInput(ext readably.Extractor, inputPath, uri, outputDir, outputFile string, format outputFormat, compact, singleInput bool) error {
	var input io.ReadCloser
	outputPath := outputFile

	if inputPath == "-" {
		input = os.Stdin
	} else {
		file, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer file.Close()
		input = file

		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			baseName := filepath.Base(inputPath)
			nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
			outputPath = filepath.Join(outputDir, nameWithoutExt+"."+string(format))
		} else if outputFile == "" || !singleInput {
			outputPath = ""
		}
	}

	article, err := ext.ExtractFromReader(uri, input, nil)
	if err != nil {
		return fmt.Errorf("extracting: %w", err)
	}
	if article == nil {
		return fmt.Errorf("no readable article content found")
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		if !compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(article)
	case formatHTML:
		_, err := io.WriteString(out, article.Content)
		return err
	case formatText:
		_, err := io.WriteString(out, article.TextContent)
		return err
	}
	return nil
}
