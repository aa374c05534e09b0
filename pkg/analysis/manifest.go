package analysis

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// ModelManifest is a YAML document describing how to reach a model
// provider. It carries everything except the API key, which stays in the
// environment.
type ModelManifest struct {
	Version        string  `json:"version" yaml:"version"`
	BaseURL        string  `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Model          string  `json:"model,omitempty" yaml:"model,omitempty"`
	Temperature    float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	MaxTokens      int     `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
	TimeoutSeconds int     `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	Source         string  `json:"-" yaml:"-"`
}

// ReadManifest loads a manifest file from disk.
func ReadManifest(path string) (*ModelManifest, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("analysis: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("analysis: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader. Unknown fields are
// rejected so typos surface at load time.
func DecodeManifest(r io.Reader) (*ModelManifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc ModelManifest
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("analysis: manifest is empty")
		}
		return nil, fmt.Errorf("analysis: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the manifest satisfies required fields.
func (doc *ModelManifest) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("analysis: unsupported manifest version %q", doc.Version)
	}
	if doc.Temperature < 0 || doc.Temperature > 2 {
		return fmt.Errorf("analysis: temperature %v out of range", doc.Temperature)
	}
	if doc.MaxTokens < 0 {
		return fmt.Errorf("analysis: max_tokens must not be negative")
	}
	if doc.TimeoutSeconds < 0 {
		return fmt.Errorf("analysis: timeout_seconds must not be negative")
	}
	return nil
}

// Apply copies the manifest's settings onto a client config. Empty
// manifest fields leave the config untouched.
func (doc *ModelManifest) Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	if doc.BaseURL != "" {
		cfg.BaseURL = doc.BaseURL
	}
	if doc.Model != "" {
		cfg.Model = doc.Model
	}
	if doc.Temperature != 0 {
		cfg.Temperature = doc.Temperature
	}
	if doc.MaxTokens != 0 {
		cfg.MaxTokens = doc.MaxTokens
	}
	if doc.TimeoutSeconds != 0 {
		cfg.Timeout = time.Duration(doc.TimeoutSeconds) * time.Second
	}
}

func (doc *ModelManifest) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
}
