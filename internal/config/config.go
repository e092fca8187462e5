// Package config loads the bot's static configuration before core
// startup. The arbitration core only ever sees the parsed struct.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AgentName          string `yaml:"agent_name"`
	DefaultServer      string `yaml:"default_server"`
	AIDecisionInterval int    `yaml:"ai_decision_interval"` // seconds
	CancelAckTimeoutMs int    `yaml:"cancel_ack_timeout_ms"`
	AutoReconnect      bool   `yaml:"auto_reconnect"`
	DamageWindowTicks  int    `yaml:"damage_window_ticks"`

	// Brain registration list. Order here is registration order only; the
	// tie-break priority is fixed in code.
	Brains []string `yaml:"brains"`

	Servers map[string]ServerSpec `yaml:"servers"`

	Journal JournalSpec `yaml:"journal"`
}

type ServerSpec struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Path  string `yaml:"path"`
	Token string `yaml:"token,omitempty"`
}

// URL builds the websocket endpoint for the gateway.
func (s ServerSpec) URL() string {
	path := s.Path
	if path == "" {
		path = "/v1/ws"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("ws://%s:%d%s", s.Host, s.Port, path)
}

type JournalSpec struct {
	Dir        string `yaml:"dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("settings.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("settings.yaml: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		AgentName:          "AIBot",
		DefaultServer:      "local",
		AIDecisionInterval: 3,
		CancelAckTimeoutMs: 500,
		AutoReconnect:      true,
		DamageWindowTicks:  10,
		Brains:             []string{"health", "cautious", "aggressive", "strategic"},
		Servers: map[string]ServerSpec{
			"local": {Host: "localhost", Port: 8080, Path: "/v1/ws"},
		},
		Journal: JournalSpec{
			Dir:        "logs",
			SQLitePath: "logs/decisions.db",
		},
	}
}

func (c *Config) Normalize() {
	if c.AgentName == "" {
		c.AgentName = "AIBot"
	}
	if c.AIDecisionInterval <= 0 {
		c.AIDecisionInterval = 3
	}
	if c.CancelAckTimeoutMs <= 0 {
		c.CancelAckTimeoutMs = 500
	}
	if c.DamageWindowTicks <= 0 {
		c.DamageWindowTicks = 10
	}
	if c.Journal.Dir == "" {
		c.Journal.Dir = "logs"
	}
	for name, s := range c.Servers {
		if s.Path == "" {
			s.Path = "/v1/ws"
			c.Servers[name] = s
		}
	}
}

func (c *Config) Validate() error {
	if c.DefaultServer == "" {
		return fmt.Errorf("default_server is required")
	}
	if _, ok := c.Servers[c.DefaultServer]; !ok {
		return fmt.Errorf("default_server %q has no server profile", c.DefaultServer)
	}
	for name, s := range c.Servers {
		if s.Host == "" {
			return fmt.Errorf("server %q: host is required", name)
		}
		if s.Port <= 0 || s.Port > 65535 {
			return fmt.Errorf("server %q: invalid port %d", name, s.Port)
		}
	}
	return nil
}

// Server returns the profile selected by default_server.
func (c *Config) Server() ServerSpec {
	return c.Servers[c.DefaultServer]
}
