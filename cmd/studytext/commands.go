package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gardar/studytext/internal/config"
	"github.com/gardar/studytext/internal/logging"
	"github.com/gardar/studytext/pkg/extract"
	"github.com/gardar/studytext/pkg/pdfdoc"
	"github.com/gardar/studytext/pkg/tutor"
)

// setup loads the configuration and logger into the app metadata.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), c.String("env-file"))
	if err != nil {
		return err
	}
	if v := c.String("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := c.String("log-format"); v != "" {
		cfg.Log.Format = v
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, c.App.ErrWriter)
	if err != nil {
		return err
	}

	c.App.Metadata = map[string]interface{}{
		"config": &cfg,
		"logger": logger,
	}
	return nil
}

func pdfFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "pdf",
		Usage:    "path to the input PDF file",
		Required: true,
	}
}

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		pdfFlag(),
		&cli.StringFlag{
			Name:  "pages",
			Usage: `page range, e.g. "4" or "3-7" (default: all pages)`,
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "OCR engine: tesseract, documentai or none (overrides config)",
		},
		&cli.IntFlag{
			Name:  "threshold",
			Usage: "native word count below which a page is OCRed (overrides config)",
		},
	}
}

func pagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "print the number of pages in a PDF",
		Flags: []cli.Flag{pdfFlag()},
		Action: func(c *cli.Context) error {
			doc, err := pdfdoc.OpenFile(c.String("pdf"))
			if err != nil {
				return err
			}
			defer doc.Close()

			fmt.Fprintln(c.App.Writer, doc.PageCount())
			return nil
		},
	}
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "extract the text of a page range",
		Flags: append(rangeFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the text to this file instead of stdout",
			},
		),
		Action: func(c *cli.Context) error {
			res, err := runExtraction(c)
			if err != nil {
				return err
			}

			if out := c.String("output"); out != "" {
				if err := os.WriteFile(out, []byte(res.Text()+"\n"), 0o644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			fmt.Fprintln(c.App.Writer, res.Text())
			return nil
		},
	}
}

func askCommand() *cli.Command {
	return &cli.Command{
		Name:  "ask",
		Usage: "extract a page range and ask the tutor to explain it",
		Flags: append(rangeFlags(),
			&cli.StringFlag{
				Name:  "topic",
				Usage: "topic label passed to the tutor",
			},
		),
		Action: func(c *cli.Context) error {
			cfg := appConfig(c)
			client, err := tutor.NewClient(cfg.LLM, appLogger(c))
			if err != nil {
				return err
			}

			res, err := runExtraction(c)
			if err != nil {
				return err
			}

			answer, err := client.Explain(c.Context, res.Text(), c.String("topic"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, answer)
			return nil
		},
	}
}

// runExtraction opens the PDF, runs the extractor over the requested range
// and reports warnings. A run where nothing could be extracted is an error.
func runExtraction(c *cli.Context) (*extract.Result, error) {
	cfg := appConfig(c)
	log := appLogger(c)

	if v := c.String("engine"); v != "" {
		cfg.OCR.Engine = v
	}
	if v := c.Int("threshold"); v != 0 {
		cfg.Extraction.WordThreshold = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := pdfdoc.OpenFile(c.String("pdf"))
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	start, end := 1, doc.PageCount()
	if r := c.String("pages"); r != "" {
		if start, end, err = extract.ParseRange(r); err != nil {
			return nil, err
		}
	}

	// Validate before loading an OCR model that would go unused.
	if err := extract.ValidateRange(start, end, doc.PageCount()); err != nil {
		return nil, err
	}

	worker := startWorker(c.Context, cfg, log)
	defer func() {
		if err := worker.Close(); err != nil {
			log.WithError(err).Warn("Failed to close OCR worker")
		}
	}()

	ex := extract.New(cfg.ExtractConfig(), worker, log)
	res, err := ex.Extract(c.Context, doc, start, end)
	if res != nil {
		for _, w := range res.Warnings {
			fmt.Fprintf(c.App.ErrWriter, "warning: %v\n", w)
		}
		if degraded := res.Degraded(); len(degraded) > 0 {
			fmt.Fprintf(c.App.ErrWriter, "warning: OCR failed on pages %v; native text only\n", degraded)
		}
	}
	if errors.Is(err, extract.ErrNothingExtractable) {
		return nil, cli.Exit(err.Error(), 2)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
