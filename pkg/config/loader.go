package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the
// configuration file location.
const EnvConfigPath = "WEFT_CONFIG"

// defaultConfigPath is used when WEFT_CONFIG is unset. A missing file
// at this path is not an error.
const defaultConfigPath = "./weft.yaml"

// Load builds the runtime configuration.
//
// Steps performed:
//  1. Start from compiled defaults
//  2. Locate the YAML file (WEFT_CONFIG, default ./weft.yaml)
//  3. Expand environment variables in the file
//  4. Parse YAML and merge it over the defaults
//  5. Apply process environment overrides
//  6. Validate the result
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	fileCfg, err := loadYAMLFile(path)
	switch {
	case err == nil:
		if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration file: %w", err)
		}
		slog.Info("Loaded configuration file", "path", path)
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		slog.Debug("No configuration file found, using defaults", "path", path)
	default:
		return nil, NewLoadError(path, err)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized successfully",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"mcp_servers", len(cfg.MCPServers))

	return cfg, nil
}

func loadYAMLFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies the process environment layer. Only the
// server and provider knobs live here; the database and rate limiter
// packages read their own environment blocks.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEFT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		} else {
			slog.Warn("Invalid WEFT_PORT, keeping configured port",
				"value", v,
				"port", cfg.Server.Port)
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv("OLLAMA_URL"); v != "" {
		cfg.Providers.OllamaURL = v
	}
}

// validate performs validation on the merged configuration
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalidValue, cfg.Server.Port)
	}

	switch strings.ToLower(cfg.Server.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: server.log_level %q (expected debug, info, warn or error)",
			ErrInvalidValue, cfg.Server.LogLevel)
	}

	if cfg.Collab.WriteTimeout < 1 {
		return fmt.Errorf("%w: collab.write_timeout %d", ErrInvalidValue, cfg.Collab.WriteTimeout)
	}

	for name, server := range cfg.MCPServers {
		if server.Disabled {
			continue
		}
		if err := validateMCPServer(name, server); err != nil {
			return err
		}
	}

	return nil
}
