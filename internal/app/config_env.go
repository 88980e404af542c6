package app

import (
	"os"
	"strings"
	"time"
)

// ApplyEnv overlays environment variables onto cfg. Environment values win
// over the config file but lose to explicit flags.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	} else if p := os.Getenv("PORT"); p != "" {
		cfg.ListenAddr = ":" + p
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}
	if v := os.Getenv("LLM_MODE"); v != "" {
		cfg.RewriteEnabled = strings.EqualFold(v, "on")
	}
	if v := os.Getenv("STYLE_FILES"); v != "" {
		var files []string
		for _, p := range strings.Split(v, ",") {
			if s := strings.TrimSpace(p); s != "" {
				files = append(files, s)
			}
		}
		cfg.StyleFiles = files
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}
