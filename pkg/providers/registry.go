package providers

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/weft-labs/weft/pkg/tools"
)

const (
	defaultOllamaURL = "http://localhost:11434"

	openaiBaseURL    = "https://api.openai.com/v1"
	groqBaseURL      = "https://api.groq.com/openai/v1"
	cerebrasBaseURL  = "https://api.cerebras.ai/v1"
	mistralBaseURL   = "https://api.mistral.ai/v1"
	anthropicBaseURL = "https://api.anthropic.com"
	geminiBaseURL    = "https://generativelanguage.googleapis.com"

	anthropicVersion = "2023-06-01"
)

// Config carries the registry dependencies wired at bootstrap.
type Config struct {
	// OllamaURL overrides the local daemon address (OLLAMA_URL).
	OllamaURL string
	// Tools executes tool calls the models request. Nil keeps the loop
	// functional: every call fails back to the model as an error payload.
	Tools tools.Executor
	// HTTPClient overrides the shared transport, mainly for tests.
	HTTPClient *http.Client
}

// Registry dispatches requests to provider adapters by id.
type Registry struct {
	providers map[string]Provider
}

// New builds the registry with every supported backend registered.
func New(cfg Config) *Registry {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	ollamaURL := strings.TrimSuffix(cfg.OllamaURL, "/")
	if ollamaURL == "" {
		ollamaURL = defaultOllamaURL
	}

	r := &Registry{providers: make(map[string]Provider)}
	register := func(id string, backend chatBackend, requiresKey bool) {
		r.providers[id] = &provider{
			id:          id,
			backend:     backend,
			executor:    cfg.Tools,
			requiresKey: requiresKey,
		}
	}

	register("openai", &openaiCompatBackend{
		id: "openai", baseURL: openaiBaseURL, toolChoice: true, client: client,
	}, true)
	register("mistral", &openaiCompatBackend{
		id: "mistral", baseURL: mistralBaseURL, toolChoice: true, client: client,
	}, true)
	register("groq", &openaiCompatBackend{
		id: "groq", baseURL: groqBaseURL, modelPrefix: "groq/", client: client,
	}, true)
	register("cerebras", &openaiCompatBackend{
		id: "cerebras", baseURL: cerebrasBaseURL, modelPrefix: "cerebras/", dedup: true, client: client,
	}, true)
	register("ollama", &openaiCompatBackend{
		id: "ollama", baseURL: ollamaURL + "/v1", client: client,
	}, false)
	register("anthropic", &anthropicBackend{
		baseURL: anthropicBaseURL, version: anthropicVersion, client: client,
	}, true)
	register("gemini", &geminiBackend{
		baseURL: geminiBaseURL, client: client,
	}, true)
	return r
}

// Get resolves a provider id. Unknown ids are a configuration problem,
// not a transport one.
func (r *Registry) Get(id string) (Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, &ConfigError{Provider: id, Message: "unknown provider"}
	}
	return p, nil
}

// IDs lists the registered provider ids in stable order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// provider binds one backend to the shared loop engine and enforces the
// key requirement before any network I/O.
type provider struct {
	id          string
	backend     chatBackend
	executor    tools.Executor
	requiresKey bool
}

func (p *provider) ID() string { return p.id }

func (p *provider) Execute(ctx context.Context, req *Request) (*Result, error) {
	if p.requiresKey && req.APIKey == "" {
		return nil, &ConfigError{Provider: p.id, Message: "API key is required"}
	}
	return newEngine(p.backend, p.executor).run(ctx, req)
}
