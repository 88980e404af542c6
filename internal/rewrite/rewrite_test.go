package rewrite

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
)

func TestParseDraft_PlainJSON(t *testing.T) {
	d, err := ParseDraft(`{"kop":"Kop","intro":"Intro","body":"Body"}`)
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if d.Headline != "Kop" || d.Intro != "Intro" || d.Body != "Body" {
		t.Fatalf("got %+v", d)
	}
	if d.Source != draft.SourceExternal {
		t.Fatalf("source: got %q", d.Source)
	}
}

func TestParseDraft_FencedJSON(t *testing.T) {
	raw := "```json\n{\"kop\":\"Kop\",\"intro\":\"Intro\",\"body\":\"Body\"}\n```"
	d, err := ParseDraft(raw)
	if err != nil {
		t.Fatalf("ParseDraft: %v", err)
	}
	if d.Headline != "Kop" {
		t.Fatalf("got %+v", d)
	}
}

func TestParseDraft_EmptyFieldRejected(t *testing.T) {
	if _, err := ParseDraft(`{"kop":"Kop","intro":"","body":"Body"}`); err == nil {
		t.Fatalf("expected error for empty intro")
	}
	if _, err := ParseDraft(`{"kop":"Kop","intro":"  ","body":"Body"}`); err == nil {
		t.Fatalf("expected error for whitespace intro")
	}
}

func TestParseDraft_NotJSON(t *testing.T) {
	if _, err := ParseDraft("Hier is uw herschreven bericht: ..."); err == nil {
		t.Fatalf("expected parse error")
	}
}

// fakeClient returns a canned response or error.
type fakeClient struct {
	content string
	err     error
	lastReq openai.ChatCompletionRequest
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.content}},
		},
	}, nil
}

func TestChatRewriter_NilClientNotConfigured(t *testing.T) {
	r := &ChatRewriter{}
	if _, err := r.Attempt(context.Background(), "tekst"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v", err)
	}
}

func TestChatRewriter_TransportErrorSurfaces(t *testing.T) {
	r := &ChatRewriter{Client: &fakeClient{err: errors.New("boom")}, Model: "test-model"}
	_, err := r.Attempt(context.Background(), "tekst")
	if err == nil || errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v", err)
	}
}

func TestChatRewriter_Success(t *testing.T) {
	fake := &fakeClient{content: `{"kop":"Kop","intro":"Intro","body":"Body"}`}
	r := &ChatRewriter{Client: fake, Model: "test-model", StyleGuide: "schrijf kort"}
	d, err := r.Attempt(context.Background(), "bron tekst")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if d.Source != draft.SourceExternal {
		t.Fatalf("source: got %q", d.Source)
	}
	if len(fake.lastReq.Messages) != 2 {
		t.Fatalf("messages: got %d", len(fake.lastReq.Messages))
	}
	if !strings.Contains(fake.lastReq.Messages[0].Content, "schrijf kort") {
		t.Fatalf("style guide missing from system prompt")
	}
	if !strings.Contains(fake.lastReq.Messages[1].Content, "bron tekst") {
		t.Fatalf("source text missing from user prompt")
	}
}
