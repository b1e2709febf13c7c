package config

import (
	"flag"
	"os"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   sqlite database path (default from Config)
//	-a string   bind address for the status server
//	-s bool     simulate network latency
//	-c string   path to a JSON config file (consumed by parseJSON)
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("watertrack", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite database path")
	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port for the status server")
	fs.BoolVar(&cfg.SimulateLatency, "s", cfg.SimulateLatency, "simulate network latency")
	fs.String("c", "", "path to JSON config file")
	fs.String("config", "", "path to JSON config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
}
