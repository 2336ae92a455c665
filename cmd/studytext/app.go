package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/gardar/studytext/internal/config"
	"github.com/gardar/studytext/internal/logging"
	"github.com/gardar/studytext/pkg/gdocai"
	"github.com/gardar/studytext/pkg/ocr"
)

func appConfig(c *cli.Context) config.Config {
	if cfg, ok := c.App.Metadata["config"].(*config.Config); ok {
		return *cfg
	}
	return config.Default()
}

func appLogger(c *cli.Context) *logrus.Logger {
	if l, ok := c.App.Metadata["logger"].(*logrus.Logger); ok {
		return l
	}
	return logging.Discard()
}

// startWorker is replaced in tests.
var startWorker = newWorker

// newWorker starts creating the configured OCR engine in the background so
// that model loading overlaps with reading the first pages. It returns nil
// when OCR is disabled.
func newWorker(ctx context.Context, cfg config.Config, log logrus.FieldLogger) *ocr.Worker {
	ctx = context.WithoutCancel(ctx)
	switch cfg.OCR.Engine {
	case config.EngineTesseract:
		return ocr.StartWorker(ctx, ocr.TesseractFactory(cfg.OCROptions()))
	case config.EngineDocumentAI:
		dcfg := cfg.DocumentAI
		if dcfg.MinConfidence == 0 {
			dcfg.MinConfidence = cfg.OCR.MinConfidence
		}
		return ocr.StartWorker(ctx, gdocai.Factory(dcfg, log))
	}
	return nil
}
