// Package pipeline coordinates the validation-and-structuring run over one
// document: normalization, multi-document detection, the 5W gate, content
// flags, drafting with fallback, length enforcement, and signal assembly.
package pipeline

import (
	"context"
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/torstenfaruhn/persberichten-tool/internal/budget"
	"github.com/torstenfaruhn/persberichten-tool/internal/content"
	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
	"github.com/torstenfaruhn/persberichten-tool/internal/fivew"
	"github.com/torstenfaruhn/persberichten-tool/internal/multidoc"
	"github.com/torstenfaruhn/persberichten-tool/internal/neutralize"
	"github.com/torstenfaruhn/persberichten-tool/internal/normalize"
	"github.com/torstenfaruhn/persberichten-tool/internal/report"
	"github.com/torstenfaruhn/persberichten-tool/internal/rewrite"
	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
	"github.com/torstenfaruhn/persberichten-tool/internal/structure"
)

// DefaultMinChars is the minimum normalized source length in characters.
const DefaultMinChars = 950

// Orchestrator runs the pipeline. It holds no per-document state: every Run
// is a pure function of the input text, apart from the single optional
// external rewrite call.
type Orchestrator struct {
	// Rewriter attempts the external rewrite. Nil disables external
	// rewriting entirely; a configured rewriter that fails degrades to the
	// deterministic fallback with a W010 warning.
	Rewriter rewrite.Rewriter
	// MinChars overrides DefaultMinChars when positive.
	MinChars int
}

// Result bundles the validation outcome with, for accepted documents, the
// draft and the composed report. Normalized carries the cleaned source for
// diagnostics on both accepted and rejected runs.
type Result struct {
	Outcome    signal.Outcome
	Draft      *draft.Draft
	Report     string
	Normalized string
}

// Run processes one document. A fatal condition short-circuits: the outcome
// carries exactly that one signal plus the metadata computed so far, and no
// draft is produced.
func (o *Orchestrator) Run(ctx context.Context, raw string) Result {
	norm := normalize.Text(raw)
	chars := utf8.RuneCountInString(norm)
	meta := map[string]string{
		"char_count": strconv.Itoa(chars),
	}

	min := o.MinChars
	if min <= 0 {
		min = DefaultMinChars
	}
	if chars < min {
		return rejected(signal.TextTooShort(), meta, norm)
	}

	fatal, multiWarn := multidoc.Detect(norm)
	if fatal != nil {
		return rejected(*fatal, meta, norm)
	}

	var warnings []signal.Signal
	if multiWarn != nil {
		warnings = append(warnings, *multiWarn)
	}
	if content.HasStrongClaims(norm) {
		warnings = append(warnings, signal.StrongClaim())
	}
	if content.HasRelativeTime(norm) {
		warnings = append(warnings, signal.RelativeTime())
	}

	presence := fivew.Analyze(norm)
	meta["fivew_present"] = presence.String()
	if !presence.GatePasses() {
		return rejected(signal.FiveWMinimumNotMet(), meta, norm)
	}
	warnings = append(warnings, presence.Warnings()...)

	contact := content.ContactTail(norm)
	if contact != "" {
		warnings = append(warnings, signal.ContactInfo())
	}

	d, rewriteWarn := o.produceDraft(ctx, norm)
	if rewriteWarn != nil {
		warnings = append(warnings, *rewriteWarn)
	}
	meta["size_class"] = string(budget.ClassFor(chars))
	meta["draft_source"] = string(d.Source)

	// The length band governs publishable copy only, so it is checked
	// before the non-publication contact block is appended.
	warnings = append(warnings, budget.Enforce(d, chars)...)

	d.Body = report.AppendContact(d.Body, contact)

	return Result{
		Outcome:    signal.Outcome{Accepted: true, Signals: warnings, Metadata: meta},
		Draft:      &d,
		Report:     report.Compose(d, warnings),
		Normalized: norm,
	}
}

// produceDraft attempts the external rewrite on the not-yet-neutralized
// text, falling back to neutralization plus deterministic structuring. The
// W010 warning is raised only when a real external attempt failed, never
// when no rewriter was configured.
func (o *Orchestrator) produceDraft(ctx context.Context, norm string) (draft.Draft, *signal.Signal) {
	if o.Rewriter != nil {
		d, err := o.Rewriter.Attempt(ctx, norm)
		switch {
		case err == nil:
			return d, nil
		case errors.Is(err, rewrite.ErrNotConfigured):
			// Treated the same as having no rewriter at all.
		default:
			log.Warn().Err(err).Msg("external rewrite failed, using deterministic fallback")
			w := signal.RewriteFailed()
			return fallbackDraft(norm), &w
		}
	}
	return fallbackDraft(norm), nil
}

func fallbackDraft(norm string) draft.Draft {
	return structure.FromText(neutralize.Apply(norm))
}

func rejected(fatal signal.Signal, meta map[string]string, norm string) Result {
	log.Debug().Str("code", fatal.Code).Msg("document rejected")
	return Result{
		Outcome:    signal.Outcome{Accepted: false, Signals: []signal.Signal{fatal}, Metadata: meta},
		Normalized: norm,
	}
}
