package app

import "time"

// Config holds runtime configuration for the application. It is passed in
// explicitly at construction; nothing reads process-global state after
// startup.
type Config struct {
	// ListenAddr is the HTTP bind address for serve mode.
	ListenAddr string

	// LLM / external rewriting
	LLMBaseURL     string
	LLMModel       string
	LLMAPIKey      string
	RewriteEnabled bool

	// StyleFiles are optional plain-text style guideline files whose
	// contents are appended to the rewrite system prompt.
	StyleFiles []string

	// Limits
	MinSourceChars int
	MaxUploadBytes int64
	RequestTimeout time.Duration

	Verbose bool
}

// Defaults for unset configuration values.
const (
	DefaultListenAddr     = ":8080"
	DefaultLLMModel       = "gpt-4o-mini"
	DefaultMaxUploadBytes = 10 << 20
	DefaultRequestTimeout = 360 * time.Second
)

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LLMModel == "" {
		c.LLMModel = DefaultLLMModel
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
}
