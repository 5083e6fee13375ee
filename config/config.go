// Package config holds the client settings read from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jttkim/AntServer/field"
	"github.com/jttkim/AntServer/rules"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Team     Team     `yaml:"team"`
	Bot      string   `yaml:"bot"`
	MaxTurns int      `yaml:"max_turns"`
	LogLevel string   `yaml:"log_level"`
	Record   string   `yaml:"record_path"`
	Decision Decision `yaml:"decision"`
	Identity Identity `yaml:"identity"`
}

type Server struct {
	Addr        string        `yaml:"addr"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type Team struct {
	Name string `yaml:"name"`
}

type Decision struct {
	LowHealth int  `yaml:"low_health"`
	SeekToxin bool `yaml:"seek_toxin"`
}

type Identity struct {
	// HistoryLimit caps the snapshots kept per ant; 0 keeps all of them.
	HistoryLimit int `yaml:"history_limit"`
}

// Bots the client knows how to play.
var Bots = []string{"jtk", "donothing"}

func Default() Config {
	s := rules.DefaultSettings()
	return Config{
		Server:   Server{Addr: "localhost:5000", DialTimeout: 10 * time.Second},
		Team:     Team{Name: "jtk"},
		Bot:      "jtk",
		LogLevel: "info",
		Decision: Decision{LowHealth: s.LowHealth, SeekToxin: s.SeekToxin},
	}
}

// Load reads path over the defaults: keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is empty")
	}
	if c.Server.DialTimeout < 0 {
		return fmt.Errorf("config: server.dial_timeout %s is negative", c.Server.DialTimeout)
	}
	if c.Team.Name == "" {
		return fmt.Errorf("config: team.name is empty")
	}
	if !knownBot(c.Bot) {
		return fmt.Errorf("config: unknown bot %q (want one of %s)", c.Bot, strings.Join(Bots, ", "))
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("config: max_turns %d is negative", c.MaxTurns)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Decision.LowHealth < 0 || c.Decision.LowHealth > field.MaxHealth+1 {
		return fmt.Errorf("config: decision.low_health %d outside 0..%d", c.Decision.LowHealth, field.MaxHealth+1)
	}
	if c.Identity.HistoryLimit < 0 {
		return fmt.Errorf("config: identity.history_limit %d is negative", c.Identity.HistoryLimit)
	}
	return nil
}

// Settings returns the decision rule settings.
func (c Config) Settings() rules.Settings {
	return rules.Settings{LowHealth: c.Decision.LowHealth, SeekToxin: c.Decision.SeekToxin}
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", s, err)
	}
	return l, nil
}

func knownBot(name string) bool {
	for _, b := range Bots {
		if b == name {
			return true
		}
	}
	return false
}
