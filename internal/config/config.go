// Package config loads the studytext configuration from a YAML file, a .env
// file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gardar/studytext/pkg/extract"
	"github.com/gardar/studytext/pkg/gdocai"
	"github.com/gardar/studytext/pkg/ocr"
	"github.com/gardar/studytext/pkg/tutor"
)

// OCR engine names.
const (
	EngineNone       = "none"
	EngineTesseract  = "tesseract"
	EngineDocumentAI = "documentai"
)

// Environment variables read by Load.
const (
	EnvEngine        = "STUDYTEXT_OCR_ENGINE"
	EnvLanguages     = "STUDYTEXT_OCR_LANGUAGES"
	EnvWordThreshold = "STUDYTEXT_WORD_THRESHOLD"
	EnvRenderScale   = "STUDYTEXT_RENDER_SCALE"
	EnvLogLevel      = "STUDYTEXT_LOG_LEVEL"
	EnvLogFormat     = "STUDYTEXT_LOG_FORMAT"
	EnvLLMModel      = "STUDYTEXT_LLM_MODEL"
	EnvLLMBaseURL    = "OPENAI_BASE_URL"
	EnvLLMAPIKey     = "OPENAI_API_KEY"
	EnvCredentials   = "GOOGLE_APPLICATION_CREDENTIALS"
)

// Config is the complete configuration.
type Config struct {
	Extraction Extraction    `yaml:"extraction"`
	OCR        OCR           `yaml:"ocr"`
	DocumentAI gdocai.Config `yaml:"documentai"`
	LLM        tutor.Config  `yaml:"llm"`
	Log        Log           `yaml:"log"`
}

// Extraction holds the page pipeline tunables.
type Extraction struct {
	WordThreshold int     `yaml:"word_threshold"`
	LineTolerance float64 `yaml:"line_tolerance"`
	RenderScale   float64 `yaml:"render_scale"`
}

// OCR selects and configures the OCR engine.
type OCR struct {
	Engine                  string            `yaml:"engine"` // tesseract, documentai or none
	Languages               []string          `yaml:"languages"`
	PageSegMode             int               `yaml:"page_seg_mode"`
	PreserveInterwordSpaces bool              `yaml:"preserve_interword_spaces"`
	MinConfidence           float64           `yaml:"min_confidence"`
	Variables               map[string]string `yaml:"variables"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Default returns a config with sensible defaults
func Default() Config {
	ext := extract.DefaultConfig()
	opts := ocr.DefaultOptions()
	return Config{
		Extraction: Extraction{
			WordThreshold: ext.WordThreshold,
			LineTolerance: ext.LineTolerance,
			RenderScale:   ext.RenderScale,
		},
		OCR: OCR{
			Engine:                  EngineTesseract,
			Languages:               opts.Languages,
			PageSegMode:             opts.PageSegMode,
			PreserveInterwordSpaces: opts.PreserveInterwordSpaces,
		},
		LLM: tutor.DefaultConfig(),
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load builds the config: defaults, then the YAML file at path (if path is
// not empty), then variables from envFile (if it exists), then the process
// environment.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if envFile != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvEngine); v != "" {
		c.OCR.Engine = v
	}
	if v := os.Getenv(EnvLanguages); v != "" {
		c.OCR.Languages = strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '+' })
	}
	if v := os.Getenv(EnvWordThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvWordThreshold, err)
		}
		c.Extraction.WordThreshold = n
	}
	if v := os.Getenv(EnvRenderScale); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRenderScale, err)
		}
		c.Extraction.RenderScale = f
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvLLMModel); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv(EnvLLMBaseURL); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv(EnvLLMAPIKey); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv(EnvCredentials); v != "" && c.DocumentAI.CredentialsFile == "" {
		c.DocumentAI.CredentialsFile = v
	}
	return nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	if err := c.ExtractConfig().Validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	switch c.OCR.Engine {
	case EngineNone, EngineTesseract:
	case EngineDocumentAI:
		if err := c.DocumentAI.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("ocr: unknown engine %q", c.OCR.Engine)
	}
	if c.OCR.MinConfidence < 0 || c.OCR.MinConfidence > 100 {
		return fmt.Errorf("ocr: min_confidence must be within 0-100, got %.1f", c.OCR.MinConfidence)
	}
	return nil
}

// ExtractConfig returns the extractor settings.
func (c Config) ExtractConfig() extract.Config {
	return extract.Config{
		WordThreshold: c.Extraction.WordThreshold,
		LineTolerance: c.Extraction.LineTolerance,
		RenderScale:   c.Extraction.RenderScale,
	}
}

// OCROptions returns the Tesseract options.
func (c Config) OCROptions() ocr.Options {
	return ocr.Options{
		Languages:               c.OCR.Languages,
		PageSegMode:             c.OCR.PageSegMode,
		PreserveInterwordSpaces: c.OCR.PreserveInterwordSpaces,
		MinConfidence:           c.OCR.MinConfidence,
		Variables:               c.OCR.Variables,
	}
}
