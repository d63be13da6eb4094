// Package config holds the engine's build-time knobs (spec §3 "Auxiliary
// naming", §4.4 blowup threshold), constructed once by the CLI entrypoint
// and threaded explicitly rather than read from package-level globals.
package config

import "github.com/boolforge/cnfkit/rewrite"

// Config is passed by value into shell.Run; nothing in the engine reads
// environment variables or flags directly.
type Config struct {
	// AuxPrefix is prepended to an auxiliary variable's discriminator when
	// displaying it (spec §3).
	AuxPrefix string

	// MaxBlowup bounds the partial distributive rewrite's predicted clause
	// product before it abbreviates a node with Tseitin (spec §4.4.5).
	MaxBlowup int

	// SatBinary, CountBinary, EnumBinary are full command lines for the
	// external solver adapter; %s is substituted with a temp DIMACS path.
	SatBinary   string
	CountBinary string
	EnumBinary  string
}

// Default returns the engine's out-of-the-box configuration.
func Default() Config {
	return Config{
		AuxPrefix:   "_aux_",
		MaxBlowup:   rewrite.DefaultMaxBlowup,
		SatBinary:   "minisat %s /dev/stdout",
		CountBinary: "sharpSAT %s",
		EnumBinary:  "minisat -all %s /dev/stdout",
	}
}

func (c Config) RewriteOptions() rewrite.Options {
	return rewrite.Options{AuxPrefix: c.AuxPrefix, MaxBlowup: c.MaxBlowup}
}
