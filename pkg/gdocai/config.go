package gdocai

import (
	"fmt"
	"os"
)

// Config identifies the Document AI processor to use.
type Config struct {
	ProjectID       string  `yaml:"project_id"`
	Location        string  `yaml:"location"`         // e.g. "eu" or "us"
	ProcessorID     string  `yaml:"processor_id"`
	CredentialsFile string  `yaml:"credentials_file"` // Defaults to GOOGLE_APPLICATION_CREDENTIALS
	MinConfidence   float64 `yaml:"min_confidence"`   // Drop words scored below this (0-100)
}

// Validate checks that the processor is fully identified.
func (c Config) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("documentai: project_id is required")
	}
	if c.Location == "" {
		return fmt.Errorf("documentai: location is required")
	}
	if c.ProcessorID == "" {
		return fmt.Errorf("documentai: processor_id is required")
	}
	return nil
}

// ProcessorName returns the resource name of the processor.
func (c Config) ProcessorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.ProjectID, c.Location, c.ProcessorID)
}

// Endpoint returns the regional API endpoint.
func (c Config) Endpoint() string {
	return fmt.Sprintf("%s-documentai.googleapis.com:443", c.Location)
}

func (c Config) credentialsFile() string {
	if c.CredentialsFile != "" {
		return c.CredentialsFile
	}
	return os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
}
