// Command persberichten runs the press-release tool: an HTTP service that
// validates uploaded Dutch press releases and rewrites admissible ones into
// a neutral news concept, or a one-shot CLI run over a single file.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/torstenfaruhn/persberichten-tool/internal/app"
	"github.com/torstenfaruhn/persberichten-tool/internal/report"
	"github.com/torstenfaruhn/persberichten-tool/internal/server"
)

type rootFlags struct {
	configPath string
	verbose    bool

	listenAddr string
	llmBase    string
	llmModel   string
	llmKey     string
	llmOff     bool
	styleFiles []string
	minChars   int
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Best-effort: a missing .env is not an error.
	_ = godotenv.Load()

	var flags rootFlags

	root := &cobra.Command{
		Use:           "persberichten",
		Short:         "Valideert persberichten en herschrijft ze naar een neutraal nieuwsconcept",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to YAML/JSON config file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose logging")
	pf.StringVar(&flags.listenAddr, "listen", "", "HTTP listen address (serve)")
	pf.StringVar(&flags.llmBase, "llm.base", "", "OpenAI-compatible base URL")
	pf.StringVar(&flags.llmModel, "llm.model", "", "Model name")
	pf.StringVar(&flags.llmKey, "llm.key", "", "API key for the rewriting service")
	pf.BoolVar(&flags.llmOff, "llm.off", false, "Disable external rewriting; always use the deterministic fallback")
	pf.StringSliceVar(&flags.styleFiles, "style", nil, "Style guideline files appended to the rewrite prompt")
	pf.IntVar(&flags.minChars, "min.chars", 0, "Minimum source length in characters")

	root.AddCommand(serveCommand(&flags), processCommand(&flags))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// buildConfig assembles the effective configuration with the precedence
// flags > env > file > defaults.
func buildConfig(flags *rootFlags) (app.Config, error) {
	cfg := app.Config{RewriteEnabled: true}
	if flags.configPath != "" {
		fc, err := app.LoadConfigFile(flags.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		fc.Merge(&cfg)
	}
	app.ApplyEnv(&cfg)
	if flags.listenAddr != "" {
		cfg.ListenAddr = flags.listenAddr
	}
	if flags.llmBase != "" {
		cfg.LLMBaseURL = flags.llmBase
	}
	if flags.llmModel != "" {
		cfg.LLMModel = flags.llmModel
	}
	if flags.llmKey != "" {
		cfg.LLMAPIKey = flags.llmKey
	}
	if flags.llmOff {
		cfg.RewriteEnabled = false
	}
	if len(flags.styleFiles) > 0 {
		cfg.StyleFiles = flags.styleFiles
	}
	if flags.minChars > 0 {
		cfg.MinSourceChars = flags.minChars
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func serveCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(flags)
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			return server.New(a).Start()
		},
	}
}

func processCommand(flags *rootFlags) *cobra.Command {
	var (
		outputPath string
		asPDF      bool
		apiKey     string
	)
	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Validate and rewrite a single document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(flags)
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()
			res := a.Process(ctx, args[0], data, apiKey)

			if !res.Outcome.Accepted {
				for _, s := range res.Outcome.Signals {
					fmt.Fprintf(os.Stderr, "- %s: %s\n", s.Code, s.Message)
				}
				// Rejections are a normal outcome, flagged through the exit
				// code rather than an error.
				os.Exit(2)
			}
			for _, s := range res.Outcome.Signals {
				log.Warn().Str("code", s.Code).Msg(s.Message)
			}
			return writeResult(res.Report, outputPath, asPDF)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&asPDF, "pdf", false, "Render the report as PDF (requires --output)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for this run, overriding configuration")
	return cmd
}

func writeResult(content, outputPath string, asPDF bool) error {
	if asPDF {
		if outputPath == "" {
			return fmt.Errorf("--pdf requires --output")
		}
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		return report.WritePDF(content, f)
	}
	if outputPath == "" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(outputPath, []byte(content), 0o644)
}
