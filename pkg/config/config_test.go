package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Collab.WriteTimeout)
	assert.NotNil(t, cfg.MCPServers)
	assert.Empty(t, cfg.MCPServers)
}

func TestAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 9090}}
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"Debug", slog.LevelDebug},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{LogLevel: tt.level}}
			assert.Equal(t, tt.expected, cfg.SlogLevel())
		})
	}
}

func TestCollabWriteTimeout(t *testing.T) {
	cfg := &Config{Collab: CollabConfig{WriteTimeout: 30}}
	assert.Equal(t, 30*time.Second, cfg.CollabWriteTimeout())
}

func TestMCPServerNames(t *testing.T) {
	cfg := &Config{MCPServers: map[string]MCPServerConfig{
		"zeta":  {},
		"alpha": {},
		"mid":   {},
	}}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, cfg.MCPServerNames())
}
