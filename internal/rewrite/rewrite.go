// Package rewrite models external rewriting as a swappable strategy. An
// attempt either yields a complete draft or an error; the orchestrator
// never retries and always degrades to deterministic structuring.
package rewrite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
	"github.com/torstenfaruhn/persberichten-tool/internal/llm"
)

// Rewriter attempts to produce a draft from normalized (not yet
// neutralized) source text.
type Rewriter interface {
	Attempt(ctx context.Context, text string) (draft.Draft, error)
}

// ErrNotConfigured reports that no external rewriter is available. The
// orchestrator distinguishes it from a failed attempt: no warning is
// raised when rewriting was never configured.
var ErrNotConfigured = errors.New("rewriter not configured")

// RequestTimeout bounds the single external call. This is the only
// suspension point in a processing run.
const RequestTimeout = 60 * time.Second

const systemMessage = "Je herschrijft een persbericht naar een neutraal nieuwsconcept op B1-niveau. " +
	"Neem alleen controleerbare feiten uit de bron over. Verzin niets. " +
	"Geef uitsluitend JSON terug met sleutels: kop, intro, body. Geen extra tekst."

// ChatRewriter calls an OpenAI-compatible chat endpoint and enforces a
// JSON-only contract on the response.
type ChatRewriter struct {
	Client llm.Client
	Model  string
	// StyleGuide, when non-empty, is appended to the system prompt.
	StyleGuide string
}

// Attempt submits the source text once. Any transport error, unparsable
// payload, or empty field yields an error so the caller can fall back.
func (r *ChatRewriter) Attempt(ctx context.Context, text string) (draft.Draft, error) {
	if r.Client == nil || strings.TrimSpace(r.Model) == "" {
		return draft.Draft{}, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	system := systemMessage
	if sg := strings.TrimSpace(r.StyleGuide); sg != "" {
		system += "\n\nSTIJLRICHTLIJNEN (samengevat/bron):\n" + sg
	}

	resp, err := r.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(text)},
		},
		Temperature: 0.2,
		N:           1,
	})
	if err != nil {
		return draft.Draft{}, fmt.Errorf("rewrite call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return draft.Draft{}, errors.New("rewrite returned no choices")
	}
	return ParseDraft(resp.Choices[0].Message.Content)
}

func buildUserMessage(text string) string {
	var sb strings.Builder
	sb.WriteString("Herschrijf dit persbericht.\n\n")
	sb.WriteString("Eisen:\n")
	sb.WriteString("- Kop: 100–150 tekens.\n")
	sb.WriteString("- Intro: maximaal 650 tekens.\n")
	sb.WriteString("- Body: neutraal, feitelijk, geen marketingtaal; houd de 5W's in stand.\n")
	sb.WriteString("- Gebruik absolute datums (bijv. '6 februari 2026') in plaats van 'vandaag' of 'morgen'.\n")
	sb.WriteString("- Voeg geen contactblok toe.\n")
	sb.WriteString("- Output als JSON.\n\n")
	sb.WriteString("PERSBERICHT:\n")
	sb.WriteString(text)
	return sb.String()
}

// ParseDraft parses the model response, tolerating ``` fences around the
// JSON payload. An empty kop, intro, or body is an error: incomplete
// external drafts must fall back, never surface.
func ParseDraft(raw string) (draft.Draft, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var payload struct {
		Kop   string `json:"kop"`
		Intro string `json:"intro"`
		Body  string `json:"body"`
	}
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return draft.Draft{}, fmt.Errorf("parse rewrite json: %w", err)
	}
	d := draft.Draft{
		Headline: strings.TrimSpace(payload.Kop),
		Intro:    strings.TrimSpace(payload.Intro),
		Body:     strings.TrimSpace(payload.Body),
		Source:   draft.SourceExternal,
	}
	if !d.Complete() {
		return draft.Draft{}, errors.New("rewrite returned an empty field")
	}
	return d, nil
}
