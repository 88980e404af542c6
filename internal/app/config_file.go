package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags and environment variables.
type FileConfig struct {
	Listen string `yaml:"listen" json:"listen"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
		Enable  *bool  `yaml:"enable" json:"enable"`
	} `yaml:"llm" json:"llm"`

	Style struct {
		Files []string `yaml:"files" json:"files"`
	} `yaml:"style" json:"style"`

	Limits struct {
		MinSourceChars int    `yaml:"minSourceChars" json:"minSourceChars"`
		MaxUploadBytes int64  `yaml:"maxUploadBytes" json:"maxUploadBytes"`
		RequestTimeout string `yaml:"requestTimeout" json:"requestTimeout"`
	} `yaml:"limits" json:"limits"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if yerr := yaml.Unmarshal(b, &fc); yerr != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", yerr, jerr)
			}
		}
	}
	return fc, nil
}

// Merge overlays the non-zero file values onto cfg. Explicit flag and env
// values are applied after this, so the precedence stays flags > env >
// file > defaults.
func (fc FileConfig) Merge(cfg *Config) {
	if fc.Listen != "" {
		cfg.ListenAddr = fc.Listen
	}
	if fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.LLM.Enable != nil {
		cfg.RewriteEnabled = *fc.LLM.Enable
	}
	if len(fc.Style.Files) > 0 {
		cfg.StyleFiles = fc.Style.Files
	}
	if fc.Limits.MinSourceChars > 0 {
		cfg.MinSourceChars = fc.Limits.MinSourceChars
	}
	if fc.Limits.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = fc.Limits.MaxUploadBytes
	}
	if fc.Limits.RequestTimeout != "" {
		if d, err := time.ParseDuration(fc.Limits.RequestTimeout); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
