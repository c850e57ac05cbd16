// Package config loads the weft runtime configuration. Three layers,
// highest wins: compiled defaults, an optional YAML file, and a small
// set of process environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// Config is the root configuration object returned by Load and used
// throughout the application.
type Config struct {
	Server     ServerConfig               `yaml:"server"`
	Providers  ProvidersConfig            `yaml:"providers"`
	Collab     CollabConfig               `yaml:"collab"`
	MCPServers map[string]MCPServerConfig `yaml:"mcp_servers"`
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	// Port the HTTP server listens on. Overridden by WEFT_PORT.
	Port int `yaml:"port"`

	// LogLevel is one of debug, info, warn, error. Overridden by LOG_LEVEL.
	LogLevel string `yaml:"log_level"`
}

// ProvidersConfig groups LLM provider settings. API keys are not
// configured here: every chat request carries its own key.
type ProvidersConfig struct {
	// OllamaURL overrides the local daemon address. Overridden by
	// OLLAMA_URL. Empty uses the provider registry default.
	OllamaURL string `yaml:"ollama_url"`
}

// CollabConfig groups collaboration plane settings.
type CollabConfig struct {
	// WriteTimeout bounds a single websocket write, in seconds.
	WriteTimeout int `yaml:"write_timeout"`
}

// Default returns the compiled defaults, the lowest configuration layer.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     8080,
			LogLevel: "info",
		},
		Providers:  ProvidersConfig{},
		Collab:     CollabConfig{WriteTimeout: 10},
		MCPServers: map[string]MCPServerConfig{},
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// SlogLevel maps the configured log level to a slog.Level. Unknown
// values fall back to info; Load rejects them before this is reached.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CollabWriteTimeout returns the websocket write timeout as a duration.
func (c *Config) CollabWriteTimeout() time.Duration {
	return time.Duration(c.Collab.WriteTimeout) * time.Second
}

// MCPServerNames returns the configured MCP server names in sorted
// order, so connection attempts and their logs are deterministic.
func (c *Config) MCPServerNames() []string {
	names := make([]string, 0, len(c.MCPServers))
	for name := range c.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
