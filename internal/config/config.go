// Package config loads the per-repository book-stack configuration.
//
// The file lives at <sl root>/.sl/book-stack.json and accepts JSON with comments and
// trailing commas. Missing files and missing fields fall back to defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// FileName is the config file name inside the .sl directory.
const FileName = "book-stack.json"

// Environment overrides.
const (
	EnvGitHubClient = "BOOK_STACK_GITHUB_CLIENT"
	EnvLogFile      = "BOOK_STACK_LOG_FILE"
)

// GitHub client kinds.
const (
	GitHubClientCLI = "gh"
	GitHubClientAPI = "api"
)

var (
	errConfigInvalid  = errors.New("invalid config")
	errConfigRead     = errors.New("cannot read config file")
	errUnknownClient  = errors.New("unknown github client")
	errEmptyNotesRef  = errors.New("notes_ref cannot be empty")
	errEmptyRemoteKey = errors.New("remote_path_key cannot be empty")
)

// Config holds all configuration options.
type Config struct {
	RemotePathKey string       `json:"remote_path_key"`
	RemoteSuffix  string       `json:"remote_suffix"`
	NotesRef      string       `json:"notes_ref"`
	PushPrefix    string       `json:"push_prefix"`
	GitHub        GitHubConfig `json:"github"`
	Log           LogConfig    `json:"log"`
}

type GitHubConfig struct {
	// Client is "gh" (shell out to the gh CLI) or "api" (REST API with a token)
	Client   string `json:"client"`
	TokenEnv string `json:"token_env"`
}

type LogConfig struct {
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		RemotePathKey: "paths.default",
		RemoteSuffix:  ".git",
		NotesRef:      "refs/notes/book-stack",
		PushPrefix:    "remote/",
		GitHub: GitHubConfig{
			Client:   GitHubClientCLI,
			TokenEnv: "GITHUB_TOKEN",
		},
	}
}

// Path returns the config file location for a repository root.
func Path(root string) string {
	return filepath.Join(root, ".sl", FileName)
}

// Load reads the config at path, applying defaults and environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := parseInto(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
		}
	case os.IsNotExist(err):
	default:
		return Config{}, fmt.Errorf("%w: %s: %w", errConfigRead, path, err)
	}

	if v, ok := lookupEnv(EnvGitHubClient); ok && v != "" {
		cfg.GitHub.Client = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		cfg.Log.File = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	return cfg, nil
}

// parseInto decodes JSONC over the values already in cfg so absent fields keep their defaults.
func parseInto(data []byte, cfg *Config) error {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("invalid JSONC: %w", err)
	}
	if err := json.Unmarshal(standardized, cfg); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// Validate checks the fields that have no sensible fallback.
func (c Config) Validate() error {
	if c.NotesRef == "" {
		return errEmptyNotesRef
	}
	if c.RemotePathKey == "" {
		return errEmptyRemoteKey
	}
	switch c.GitHub.Client {
	case GitHubClientCLI, GitHubClientAPI:
	default:
		return fmt.Errorf("%w: %q", errUnknownClient, c.GitHub.Client)
	}
	return nil
}

// Encode renders the config as indented JSON.
func (c Config) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the config to path atomically, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomic.WriteFile(path, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
