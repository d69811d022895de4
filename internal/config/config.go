package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"hullo.dev/hullo/internal/roster"
)

type Config struct {
	Roster RosterConfig `toml:"roster"`
	Log    LogConfig    `toml:"log"`
}

// RosterConfig controls how the figure roster is resolved.
type RosterConfig struct {
	// File is an optional local roster file, one name per line.
	File string `toml:"file"`
	// Max caps how many names a loaded roster keeps.
	Max int `toml:"max"`
	// Allow, FirstNames, LastNames and DenyPairs replace the built-in
	// screening data when any of them is set.
	Allow      []string   `toml:"allow"`
	FirstNames []string   `toml:"first_names"`
	LastNames  []string   `toml:"last_names"`
	DenyPairs  [][]string `toml:"deny_pairs"`

	Remote RemoteConfig `toml:"remote"`
}

// RemoteConfig points at a roster file in a GitHub repository. An empty
// Repo disables remote fetching.
type RemoteConfig struct {
	Repo           string `toml:"repo"`
	Path           string `toml:"path"`
	Ref            string `toml:"ref"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	// BaseURL overrides the API endpoint, for GitHub Enterprise instances.
	BaseURL string `toml:"base_url"`
}

type LogConfig struct {
	// File enables rotated file logging when set.
	File string `toml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Roster: RosterConfig{
			Max: roster.MaxNames,
			Remote: RemoteConfig{
				TimeoutSeconds: 5,
			},
		},
	}
}

func configPath() (string, error) {
	if path := os.Getenv("HULLO_CONFIG_PATH"); path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "hullo.toml"), nil
}

func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Filter returns the roster filter described by the config: the built-in
// screening data unless overrides are present.
func (c *Config) Filter() *roster.Filter {
	r := c.Roster
	if len(r.Allow) == 0 && len(r.FirstNames) == 0 && len(r.LastNames) == 0 && len(r.DenyPairs) == 0 {
		return roster.DefaultFilter()
	}
	return roster.NewFilter(roster.FilterData{
		Allow:      r.Allow,
		FirstNames: r.FirstNames,
		LastNames:  r.LastNames,
		DenyPairs:  r.DenyPairs,
	})
}

// Timeout returns the configured remote fetch timeout, falling back to
// the roster default when unset or non-positive.
func (r RemoteConfig) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return roster.DefaultFetchTimeout
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}
