// Package config handles configuration for the FieldBill client,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/fieldware/fieldbill/internal/flagx"
)

// Config holds runtime settings for the client application.
//
// Fields:
//   - DatabasePath: path to the local SQLite database file.
//   - ShareBaseURL: base URL share links are built against.
//   - BusinessName: business name embedded in share payloads; optional.
type Config struct {
	DatabasePath string
	ShareBaseURL string
	BusinessName string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "fieldbill.db"
	c.ShareBaseURL = "https://fieldbill.app"
	c.BusinessName = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	DatabasePath string `json:"database_path"`
	ShareBaseURL string `json:"share_base_url"`
	BusinessName string `json:"business_name"`
}

func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ShareBaseURL != "" {
		cfg.ShareBaseURL = jc.ShareBaseURL
	}
	if jc.BusinessName != "" {
		cfg.BusinessName = jc.BusinessName
	}
}

func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-b"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.ShareBaseURL, "u", cfg.ShareBaseURL, "base URL for generated share links")
	fs.StringVar(&cfg.BusinessName, "b", cfg.BusinessName, "business name shown on shared documents")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
