package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the original deployment
const (
	DefaultHistoryDir    = "chat_history"
	DefaultThreadID      = "start-here"
	DefaultUserID        = "default-user"
	DefaultListenAddr    = "127.0.0.1:8787"
	DefaultAgentTimeout  = 120 * time.Second
	DefaultVulnThreadTag = "__vuln"
	defaultArchiveName   = "archive.db"
)

// AgentConfig selects and parameterizes one agent backend
type AgentConfig struct {
	Kind     string            `yaml:"kind"` // "echo" or "scripted"
	Prefix   string            `yaml:"prefix,omitempty"`
	Replies  map[string]string `yaml:"replies,omitempty"`
	Fallback string            `yaml:"fallback,omitempty"`
}

// Config is the application configuration. Zero/empty fields fall back to
// the defaults above.
type Config struct {
	HistoryDir          string                 `yaml:"history_dir"`
	DefaultThreadID     string                 `yaml:"default_thread_id"`
	UserID              string                 `yaml:"user_id"`
	ListenAddr          string                 `yaml:"listen_addr"`
	AgentTimeoutSeconds int                    `yaml:"agent_timeout_seconds"`
	ArchivePath         string                 `yaml:"archive_path"`
	Agents              map[string]AgentConfig `yaml:"agents,omitempty"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		HistoryDir:          DefaultHistoryDir,
		DefaultThreadID:     DefaultThreadID,
		UserID:              DefaultUserID,
		ListenAddr:          DefaultListenAddr,
		AgentTimeoutSeconds: int(DefaultAgentTimeout / time.Second),
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults; a missing file at an explicit path is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.HistoryDir == "" {
		c.HistoryDir = def.HistoryDir
	}
	if c.DefaultThreadID == "" {
		c.DefaultThreadID = def.DefaultThreadID
	}
	if c.UserID == "" {
		c.UserID = def.UserID
	}
	if c.ListenAddr == "" {
		c.ListenAddr = def.ListenAddr
	}
	if c.AgentTimeoutSeconds == 0 {
		c.AgentTimeoutSeconds = def.AgentTimeoutSeconds
	}
	return c
}

// AgentTimeout returns the invocation deadline as a duration. Negative
// values disable the deadline.
func (c Config) AgentTimeout() time.Duration {
	if c.AgentTimeoutSeconds < 0 {
		return 0
	}
	return time.Duration(c.AgentTimeoutSeconds) * time.Second
}

// ResolvedArchivePath returns the search index location, defaulting to a
// file inside the history directory
func (c Config) ResolvedArchivePath() string {
	if c.ArchivePath != "" {
		return c.ArchivePath
	}
	return filepath.Join(c.HistoryDir, defaultArchiveName)
}

// Agent returns the config block for a named agent, or an empty block
// when none is configured
func (c Config) Agent(name string) AgentConfig {
	if cfg, ok := c.Agents[name]; ok {
		return cfg
	}
	return AgentConfig{}
}
