// studytext is a command-line tool for pulling study material out of PDFs.
//
// It extracts the text of a page range, using the PDF's own text layer where it
// is rich enough and OCR where it is not, and can hand the result to a chat
// model for a tutoring explanation.
//
// Configuration:
//
// Settings come from an optional YAML file, a .env file and the environment:
//
//	extraction:
//	  word_threshold: 50     # pages with fewer native words are OCRed
//	  line_tolerance: 5
//	  render_scale: 2.0
//	ocr:
//	  engine: tesseract      # tesseract, documentai or none
//	  languages: [eng]
//	documentai:
//	  project_id: "your-gcp-project-id"
//	  location: "us"
//	  processor_id: "your-processor-id"
//	llm:
//	  model: gpt-4o-mini
//	log:
//	  level: info
//	  format: text
//
// Usage:
//
//	studytext [global options] pages   -pdf notes.pdf
//	studytext [global options] extract -pdf notes.pdf -pages 3-7 [-output notes.txt]
//	studytext [global options] ask     -pdf notes.pdf -pages 3-7 -topic "Cell biology"
//
// Authentication:
//
// The ask command reads the model API key from OPENAI_API_KEY. The documentai
// engine uses GOOGLE_APPLICATION_CREDENTIALS.
//
// Tesseract support requires building with -tags ocr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "studytext",
		Usage: "extract study text from PDF page ranges, with OCR fallback",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"STUDYTEXT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "path to a .env file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (trace, debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text or json)",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			pagesCommand(),
			extractCommand(),
			askCommand(),
		},
	}
}
