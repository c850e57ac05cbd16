package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryListsAllProviders(t *testing.T) {
	r := New(Config{})
	assert.Equal(t, []string{"anthropic", "cerebras", "gemini", "groq", "mistral", "ollama", "openai"}, r.IDs())
}

func TestRegistryUnknownProvider(t *testing.T) {
	r := New(Config{})
	_, err := r.Get("replicate")

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "replicate", ce.Provider)
}

func TestRegistryRequiresKeyBeforeIO(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	t.Cleanup(server.Close)

	r := New(Config{HTTPClient: server.Client()})
	for _, id := range []string{"openai", "mistral", "groq", "cerebras", "anthropic", "gemini"} {
		t.Run(id, func(t *testing.T) {
			p, err := r.Get(id)
			require.NoError(t, err)

			_, err = p.Execute(context.Background(), &Request{Model: "m", Messages: []Message{{Role: RoleUser, Content: "q"}}})

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, id, ce.Provider)
			assert.Contains(t, ce.Message, "API key")
		})
	}
	assert.Zero(t, hits)
}

func TestRegistryOllamaSkipsKeyCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
	}))
	t.Cleanup(server.Close)

	r := New(Config{OllamaURL: server.URL, HTTPClient: server.Client()})
	p, err := r.Get("ollama")
	require.NoError(t, err)

	result, err := p.Execute(context.Background(), &Request{Model: "llama3", Messages: []Message{{Role: RoleUser, Content: "q"}}})
	require.NoError(t, err)
	require.NotNil(t, result.Response)
	assert.Equal(t, "hi", result.Response.Content)
}

func TestRegistryOllamaURLNormalised(t *testing.T) {
	r := New(Config{OllamaURL: "http://models.internal:11434/"})
	p, err := r.Get("ollama")
	require.NoError(t, err)

	backend := p.(*provider).backend.(*openaiCompatBackend)
	assert.Equal(t, "http://models.internal:11434/v1", backend.baseURL)
}

func TestRegistryDefaultOllamaURL(t *testing.T) {
	r := New(Config{})
	p, err := r.Get("ollama")
	require.NoError(t, err)

	backend := p.(*provider).backend.(*openaiCompatBackend)
	assert.Equal(t, defaultOllamaURL+"/v1", backend.baseURL)
}

func TestRegistryProviderIDs(t *testing.T) {
	r := New(Config{})
	for _, id := range r.IDs() {
		p, err := r.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
	}
}
