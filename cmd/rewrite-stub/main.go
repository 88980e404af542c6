// Command rewrite-stub is a tiny OpenAI-compatible server for local
// development and tests. It returns a deterministic kop/intro/body draft
// derived from the submitted press release, so the full pipeline can run
// without a real rewriting service.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		user := ""
		for _, m := range req.Messages {
			if m.Role == "user" {
				user = m.Content
			}
		}
		draft := map[string]string{
			"kop":   headlineFrom(user),
			"intro": "Dit is een neutrale inleiding op basis van het aangeleverde persbericht, geschreven in eenvoudige taal.",
			"body":  "De rest van het bericht beschrijft de gebeurtenis in meer detail. Wie er betrokken is, wat er gebeurt en waar dat plaatsvindt staat hier uitgewerkt. Tot slot volgt de context die lezers nodig hebben om het nieuws te begrijpen.",
		}
		b, _ := json.Marshal(draft)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": string(b)}},
			},
		})
	})

	log.Printf("rewrite-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

// headlineFrom picks the first usable line of the submitted text so the stub
// output visibly relates to the input.
func headlineFrom(user string) string {
	for _, line := range strings.Split(user, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		if r := []rune(line); len(r) > 120 {
			return string(r[:120])
		}
		return line
	}
	return "Neutrale kop voor het persbericht"
}
