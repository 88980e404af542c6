// Package app wires configuration, the external rewriter, and the outer
// admission gates around the core pipeline.
package app

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/torstenfaruhn/persberichten-tool/internal/extract"
	"github.com/torstenfaruhn/persberichten-tool/internal/llm"
	"github.com/torstenfaruhn/persberichten-tool/internal/normalize"
	"github.com/torstenfaruhn/persberichten-tool/internal/pipeline"
	"github.com/torstenfaruhn/persberichten-tool/internal/rewrite"
	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

// App holds the processed configuration and the shared style guide blob.
type App struct {
	cfg        Config
	styleGuide string
}

// New validates the configuration and, when external rewriting is enabled
// with a configured key, runs a best-effort connectivity preflight. The
// preflight never fails startup; an unreachable backend degrades each run
// to the deterministic fallback.
func New(ctx context.Context, cfg Config) (*App, error) {
	cfg.ApplyDefaults()
	a := &App{cfg: cfg}
	if len(cfg.StyleFiles) > 0 {
		a.styleGuide = rewrite.LoadStyleGuide(cfg.StyleFiles, rewrite.DefaultStyleGuideMaxChars)
	}

	if cfg.RewriteEnabled && cfg.LLMAPIKey != "" {
		client := a.newClient(cfg.LLMAPIKey)
		if lister, ok := client.(llm.ModelLister); ok {
			preflightCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if models, err := lister.ListModels(preflightCtx); err != nil {
				log.Warn().Err(err).Msg("LLM model list failed; continuing")
			} else {
				log.Info().Int("count", len(models.Models)).Msg("LLM models available")
			}
		}
	}
	return a, nil
}

// Config returns the effective configuration.
func (a *App) Config() Config {
	return a.cfg
}

func (a *App) newClient(apiKey string) llm.Client {
	transportCfg := openai.DefaultConfig(apiKey)
	if a.cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = a.cfg.LLMBaseURL
	}
	return &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}
}

// rewriterFor returns the rewriting strategy bound to the request's API
// key, falling back to the configured key. Nil means external rewriting
// is off.
func (a *App) rewriterFor(apiKey string) rewrite.Rewriter {
	if !a.cfg.RewriteEnabled {
		return nil
	}
	key := strings.TrimSpace(apiKey)
	if key == "" {
		key = a.cfg.LLMAPIKey
	}
	if key == "" {
		return nil
	}
	return &rewrite.ChatRewriter{
		Client:     a.newClient(key),
		Model:      a.cfg.LLMModel,
		StyleGuide: a.styleGuide,
	}
}

// Process applies the outer admission gates to an uploaded file and then
// runs the core pipeline: upload size (E001), extraction (E002), PDF yield
// (E003), API key when rewriting is on (E000).
func (a *App) Process(ctx context.Context, filename string, data []byte, apiKey string) pipeline.Result {
	if int64(len(data)) > a.cfg.MaxUploadBytes {
		return gateRejected(signal.FileTooLarge())
	}
	if a.cfg.RewriteEnabled && strings.TrimSpace(apiKey) == "" && a.cfg.LLMAPIKey == "" {
		return gateRejected(signal.APIKeyRequired())
	}

	doc, err := extract.FromUpload(filename, data)
	if err != nil {
		log.Debug().Str("file", filename).Err(err).Msg("extraction failed")
		return gateRejected(signal.UnreadableFile())
	}

	norm := normalize.Text(doc.Text)
	if doc.Kind == "pdf" && utf8.RuneCountInString(norm) < extract.PDFMinYield {
		res := gateRejected(signal.TooLittleExtractable())
		res.Normalized = norm
		return res
	}

	orch := pipeline.Orchestrator{
		Rewriter: a.rewriterFor(apiKey),
		MinChars: a.cfg.MinSourceChars,
	}
	res := orch.Run(ctx, norm)
	res.Outcome.Metadata["source_type"] = doc.Kind
	return res
}

// Reprocess re-validates user-edited text and produces a deterministic
// draft. The external rewriter is never called here: the edit loop must be
// reproducible.
func (a *App) Reprocess(ctx context.Context, text string) pipeline.Result {
	orch := pipeline.Orchestrator{MinChars: a.cfg.MinSourceChars}
	return orch.Run(ctx, text)
}

func gateRejected(fatal signal.Signal) pipeline.Result {
	return pipeline.Result{
		Outcome: signal.Outcome{
			Accepted: false,
			Signals:  []signal.Signal{fatal},
			Metadata: map[string]string{},
		},
	}
}
