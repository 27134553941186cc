package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletionProviderSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotKey = r.Header.Get("api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Antwort"}},
			},
			"model": "gpt-4.1",
			"usage": map[string]int{"total_tokens": 12},
		})
	}))
	defer srv.Close()

	p := NewChatCompletionProvider(srv.URL, "geheim", "gpt-4.1", "2024-12-01-preview")
	resp, err := p.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "Hi"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Antwort", resp.Content)
	assert.Equal(t, 12, resp.TotalTokens)
	assert.Equal(t, "/deployments/gpt-4.1/chat/completions?api-version=2024-12-01-preview", gotPath)
	assert.Equal(t, "geheim", gotKey)
	assert.Equal(t, 0.7, gotBody["temperature"])
	assert.Equal(t, float64(1000), gotBody["max_tokens"])
}

func TestChatCompletionProviderErrorStatusBecomesContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewChatCompletionProvider(srv.URL, "geheim", "gpt-4.1", "")
	resp, err := p.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "Hi"}}, nil)
	require.NoError(t, err, "Dienstfehler sind anzeigbarer Inhalt, kein error")
	assert.Equal(t, "AI Error (429): quota exceeded\n", resp.Content)
}

func TestChatCompletionProviderNetworkError(t *testing.T) {
	p := NewChatCompletionProvider("http://127.0.0.1:1", "geheim", "gpt-4.1", "")
	_, err := p.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "Hi"}}, nil)
	assert.Error(t, err)
}

func TestChatCompletionProviderUnconfigured(t *testing.T) {
	p := NewChatCompletionProvider("", "", "", "")
	assert.False(t, p.IsConfigured())

	resp, err := p.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "Hi"}}, nil)
	require.NoError(t, err)
	assert.Contains(t, resp.Content, "AI not configured")
}

func TestChatCompletionProviderOptions(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]string{"content": "ok"}}},
		})
	}))
	defer srv.Close()

	p := NewChatCompletionProvider(srv.URL, "geheim", "", "")
	_, err := p.Chat(context.Background(), nil, &GenerateOptions{Temperature: 0.5, MaxTokens: 2000})
	require.NoError(t, err)
	assert.Equal(t, 0.5, gotBody["temperature"])
	assert.Equal(t, float64(2000), gotBody["max_tokens"])
}
