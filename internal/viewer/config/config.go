// Package config handles configuration for the share-link viewer,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/fieldware/fieldbill/internal/flagx"
)

// Config holds runtime settings for the viewer server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
type Config struct {
	EndpointAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
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
	EndpointAddr string `json:"endpoint_addr"`
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
	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
}

func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to listen on")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
