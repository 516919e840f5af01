package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/kritsw/lexiscan/internal/fetch"
	"github.com/kritsw/lexiscan/internal/pipeline"
)

// FileConfig represents the optional YAML configuration file. Nested
// sections map naturally to the flag groups.
type FileConfig struct {
	Input string `yaml:"input"`
	Mode  string `yaml:"mode"`

	Out struct {
		XLSX     string `yaml:"xlsx"`
		CSV      string `yaml:"csv"`
		Text     string `yaml:"text"`
		Markdown string `yaml:"markdown"`
	} `yaml:"out"`

	Fetch struct {
		UserAgent   string        `yaml:"userAgent"`
		Timeout     time.Duration `yaml:"timeout"`
		MaxAttempts int           `yaml:"maxAttempts"`
	} `yaml:"fetch"`

	Concurrency int   `yaml:"concurrency"`
	FilterJunk  *bool `yaml:"filterJunk"`
	Verbose     bool  `yaml:"verbose"`
}

// LoadConfigFile reads YAML into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse yaml: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still at
// their flag defaults, so explicit flags always win over the file.
// Fields whose flags default to a non-zero value are compared against
// that default, not against zero.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == "-") && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.Mode == ModeAuto && fc.Mode != "" {
		cfg.Mode = InputMode(fc.Mode)
	}
	if cfg.XLSXPath == "" && fc.Out.XLSX != "" {
		cfg.XLSXPath = fc.Out.XLSX
	}
	if cfg.CSVPath == "" && fc.Out.CSV != "" {
		cfg.CSVPath = fc.Out.CSV
	}
	if cfg.TextPath == "" && fc.Out.Text != "" {
		cfg.TextPath = fc.Out.Text
	}
	if cfg.MarkdownPath == "" && fc.Out.Markdown != "" {
		cfg.MarkdownPath = fc.Out.Markdown
	}
	if cfg.UserAgent == fetch.DefaultUserAgent && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.FetchTimeout == fetch.DefaultTimeout && fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if cfg.MaxAttempts == DefaultMaxAttempts && fc.Fetch.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.Fetch.MaxAttempts
	}
	if cfg.Concurrency == pipeline.DefaultConcurrency && fc.Concurrency > 0 {
		cfg.Concurrency = fc.Concurrency
	}
	if fc.FilterJunk != nil {
		cfg.FilterJunk = *fc.FilterJunk
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	switch cfg.Mode {
	case ModeAuto, ModeURL, ModeText:
	default:
		return fmt.Errorf("config: unknown mode %q", cfg.Mode)
	}
	if cfg.Concurrency < 0 || cfg.MaxAttempts < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
