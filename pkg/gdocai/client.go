package gdocai

import (
	"context"
	"fmt"
	"image"
	"io"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/gardar/studytext/pkg/ocr"
)

const engineName = "documentai"

type processFunc func(ctx context.Context, req *documentaipb.ProcessRequest) (*documentaipb.ProcessResponse, error)

// Engine is an ocr.Engine backed by a Document AI processor.
type Engine struct {
	cfg     Config
	log     logrus.FieldLogger
	process processFunc
	close   func() error
}

// NewEngine creates a Document AI client for the processor in cfg.
func NewEngine(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithEndpoint(cfg.Endpoint())}
	if creds := cfg.credentialsFile(); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}

	process := func(ctx context.Context, req *documentaipb.ProcessRequest) (*documentaipb.ProcessResponse, error) {
		return client.ProcessDocument(ctx, req)
	}
	return newEngine(cfg, log, process, client.Close), nil
}

func newEngine(cfg Config, log logrus.FieldLogger, process processFunc, closeFn func() error) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{cfg: cfg, log: log.WithField("engine", engineName), process: process, close: closeFn}
}

// Factory returns an ocr.Factory creating engines for cfg.
func Factory(cfg Config, log logrus.FieldLogger) ocr.Factory {
	return func(ctx context.Context) (ocr.Engine, error) {
		e, err := NewEngine(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// Recognize sends img to the processor as a PNG and returns the text of the
// first page of the response.
func (e *Engine) Recognize(ctx context.Context, img image.Image) (ocr.Result, error) {
	content, err := ocr.EncodePNG(img)
	if err != nil {
		return ocr.Result{}, err
	}

	req := &documentaipb.ProcessRequest{
		Name: e.cfg.ProcessorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  content,
				MimeType: "image/png",
			},
		},
		SkipHumanReview: true,
	}

	resp, err := e.process(ctx, req)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("failed to process document: %w", err)
	}
	doc := resp.GetDocument()
	e.dump(doc)

	if doc == nil || len(doc.Pages) == 0 {
		return ocr.Result{Text: doc.GetText(), Engine: engineName}, nil
	}

	page := PageFromProto(doc.Pages[0], doc.Text, 1)
	text := page.Text(e.cfg.MinConfidence)
	if len(page.Lines) == 0 {
		// Processor returned text without line structure
		text = textFromLayout(doc.Pages[0].Layout, doc.Text)
	}
	return ocr.Result{
		Text:       text,
		Confidence: page.MeanConfidence(),
		Engine:     engineName,
	}, nil
}

func (e *Engine) dump(doc *documentaipb.Document) {
	logger, ok := e.log.(*logrus.Entry)
	if !ok || !logger.Logger.IsLevelEnabled(logrus.TraceLevel) || doc == nil {
		return
	}
	// Page images are large and of no use in a text dump.
	for _, p := range doc.Pages {
		p.Image = nil
	}
	data, err := ToJSON(doc)
	if err != nil {
		e.log.WithError(err).Debug("Failed to marshal Document AI response")
		return
	}
	e.log.WithField("response", data).Trace("Document AI response")
}

// Close releases the client.
func (e *Engine) Close() error {
	if e == nil || e.close == nil {
		return nil
	}
	fn := e.close
	e.close = nil
	if err := fn(); err != nil {
		return fmt.Errorf("failed to close Document AI client: %w", err)
	}
	return nil
}
