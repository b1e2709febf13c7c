// Package config handles runtime configuration for the WaterTrack binaries,
// including defaults, an optional JSON file overlay, and command-line flags.
package config

// Config holds runtime settings shared by the WaterTrack binaries.
//
// Fields:
//   - DatabaseDSN: sqlite file (or ":memory:") holding the slot store.
//   - HTTPAddr: bind address for the status server.
//   - SimulateLatency: whether store operations charge the simulated
//     network round trip.
type Config struct {
	DatabaseDSN     string
	HTTPAddr        string
	SimulateLatency bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "watertrack.db"
	c.HTTPAddr = ":3000"
	c.SimulateLatency = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
