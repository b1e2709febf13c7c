package config

import (
	"encoding/json"
	"os"
	"strings"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values, so the file only overrides
// what it names.
type jsonConfig struct {
	DatabaseDSN     *string `json:"database_dsn"`
	HTTPAddr        *string `json:"http_addr"`
	SimulateLatency *bool   `json:"simulate_latency"`
}

// configFilePath scans args for the -c/-config flag without disturbing the
// flags the main flag pass owns.
func configFilePath(args []string) string {
	names := []string{"-c", "--c", "-config", "--config"}
	for i := 0; i < len(args); i++ {
		for _, name := range names {
			if args[i] == name {
				if i+1 < len(args) {
					return args[i+1]
				}
				return ""
			}
			if strings.HasPrefix(args[i], name+"=") {
				return strings.TrimPrefix(args[i], name+"=")
			}
		}
	}
	return ""
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config,
// if any. Panics on read or unmarshal errors (caller should recover if
// desired).
func parseJSON(cfg *Config) {
	path := configFilePath(os.Args[1:])
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

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.HTTPAddr != nil {
		cfg.HTTPAddr = *jc.HTTPAddr
	}
	if jc.SimulateLatency != nil {
		cfg.SimulateLatency = *jc.SimulateLatency
	}
}
