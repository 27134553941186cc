package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Provider definiert das Interface für LLM-Backends
type Provider interface {
	// Chat führt einen Chat mit Nachrichtenverlauf
	Chat(ctx context.Context, messages []ChatMessage, options *GenerateOptions) (*GenerateResponse, error)

	// IsConfigured prüft, ob Zugangsdaten vorhanden sind
	IsConfigured() bool

	// GetName gibt den Namen des Providers zurück
	GetName() string
}

// GenerateOptions enthält optionale Parameter für die Generierung
type GenerateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

// GenerateResponse enthält die Antwort des LLM
type GenerateResponse struct {
	Content     string `json:"content"`
	Model       string `json:"model"`
	TotalTokens int    `json:"total_tokens"`
}

// ChatMessage repräsentiert eine Chat-Nachricht
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionProvider implementiert den Provider für Azure-kompatible
// Chat-Completion-Endpunkte (api-key-Header, Deployment-Pfad, api-version).
type ChatCompletionProvider struct {
	baseURL    string
	apiKey     string
	model      string
	apiVersion string
	client     *http.Client
}

// NewChatCompletionProvider erstellt einen neuen Chat-Completion-Provider
func NewChatCompletionProvider(baseURL, apiKey, model, apiVersion string) *ChatCompletionProvider {
	if model == "" {
		model = "gpt-4.1"
	}
	if apiVersion == "" {
		apiVersion = "2024-12-01-preview"
	}

	return &ChatCompletionProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		apiVersion: apiVersion,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *ChatCompletionProvider) GetName() string {
	return "ChatCompletion"
}

// IsConfigured prüft, ob Schlüssel und Basis-URL gesetzt sind
func (p *ChatCompletionProvider) IsConfigured() bool {
	return p.apiKey != "" && p.baseURL != ""
}

// Chat sendet den Nachrichtenverlauf an den Endpunkt. Fehler-Antworten des
// Dienstes (Status != 200) werden als anzeigbarer Text zurückgegeben, nicht
// als Fehler; nur Netzwerk- und Parse-Probleme liefern einen error.
func (p *ChatCompletionProvider) Chat(ctx context.Context, messages []ChatMessage, options *GenerateOptions) (*GenerateResponse, error) {
	if !p.IsConfigured() {
		return &GenerateResponse{
			Content: "AI not configured. Set STUDYDASH_AI_KEY and STUDYDASH_AI_BASE_URL.",
		}, nil
	}

	temperature := 0.7
	maxTokens := 1000
	if options != nil {
		if options.Temperature > 0 {
			temperature = options.Temperature
		}
		if options.MaxTokens > 0 {
			maxTokens = options.MaxTokens
		}
	}

	reqBody := map[string]interface{}{
		"messages":    messages,
		"temperature": temperature,
		"max_tokens":  maxTokens,
		"top_p":       1,
		"stream":      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/deployments/%s/chat/completions?api-version=%s", p.baseURL, p.model, p.apiVersion)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", p.apiKey)

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("   [AI] ❌ Netzwerk-Fehler nach %v: %v", time.Since(start), err)
		return nil, fmt.Errorf("ai-anfrage fehlgeschlagen: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("   [AI] ⚠️ Status %d: %s", resp.StatusCode, string(body))
		return &GenerateResponse{
			Content: fmt.Sprintf("AI Error (%d): %s", resp.StatusCode, string(body)),
			Model:   p.model,
		}, nil
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Model string `json:"model"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("leere Antwort vom AI-Dienst")
	}

	log.Printf("   [AI] ✓ Antwort nach %v (%d Tokens)", time.Since(start), result.Usage.TotalTokens)

	return &GenerateResponse{
		Content:     result.Choices[0].Message.Content,
		Model:       result.Model,
		TotalTokens: result.Usage.TotalTokens,
	}, nil
}
