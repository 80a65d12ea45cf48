// Package config loads roomplanner settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// PlaceholderAPIKey is the value shipped in sample configs; it counts as unset.
const PlaceholderAPIKey = "your-api-key-here"

type Config struct {
	Server  Server  `toml:"server"`
	Catalog Catalog `toml:"catalog"`
	AI      AI      `toml:"ai"`
	Render  Render  `toml:"render"`
}

type Server struct {
	Addr          string `toml:"addr"`
	StaticDir     string `toml:"static_dir"`
	AllowedOrigin string `toml:"allowed_origin"`
}

type Catalog struct {
	Path string `toml:"path"` // .xlsx; empty means the built-in catalog
}

type AI struct {
	APIURL  string   `toml:"api_url"`
	APIKey  string   `toml:"api_key"`
	Model   string   `toml:"model"`
	Timeout Duration `toml:"timeout"`
}

type Render struct {
	Scale float64 `toml:"scale"` // pixels per metre
}

// Duration decodes TOML strings such as "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:          ":8080",
			StaticDir:     "./static",
			AllowedOrigin: "http://localhost:3000",
		},
		AI: AI{
			APIURL:  "https://openrouter.ai/api/v1/chat/completions",
			Model:   "openai/gpt-4o-mini",
			Timeout: Duration{30 * time.Second},
		},
		Render: Render{Scale: 60},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// A missing file is not an error when path is empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("config file %s not found", path)
			}
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"OPENROUTER_API_KEY":  &cfg.AI.APIKey,
		"OPENROUTER_API_URL":  &cfg.AI.APIURL,
		"OPENROUTER_MODEL":    &cfg.AI.Model,
		"ROOMPLANNER_ADDR":    &cfg.Server.Addr,
		"ROOMPLANNER_CATALOG": &cfg.Catalog.Path,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.AI.Timeout.Duration <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got %s", c.AI.Timeout)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("render.scale must be positive, got %g", c.Render.Scale)
	}
	return nil
}

// Configured reports whether a usable API key is set.
func (a AI) Configured() bool {
	return a.APIKey != "" && a.APIKey != PlaceholderAPIKey
}

// AIConfigured reports whether the AI suggestion service can be used.
func (c Config) AIConfigured() bool {
	return c.AI.Configured()
}
