// Package config loads speed-profile and tick-budget settings from an
// optional TOML file, falling back to compiled-in defaults. A missing or
// invalid file is logged and does not abort the process.
package config

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/herohde/clutchchess/pkg/board"
	"github.com/seekerror/logw"
)

// Settings is the process-wide configuration, populated by Load.
var Settings = Default()

// Config holds the tunable knobs outside the core simulation rules
// themselves, which stay hard-coded constants: which speed profile and
// board kind a freshly created game defaults to, and its tick budget.
type Config struct {
	DefaultSpeed    string `toml:"default_speed"`     // "standard" or "lightning"
	DefaultBoard    string `toml:"default_board"`     // "standard" or "four_player"
	MaxTicks        int64  `toml:"max_ticks"`         // 0 means unbounded
	CommandBufferSz int    `toml:"command_buffer_sz"` // event channel buffer size
}

// Default returns the engine's compiled-in configuration, used whenever
// no TOML file is supplied (the engine must run without one).
func Default() Config {
	return Config{
		DefaultSpeed:    "standard",
		DefaultBoard:    "standard",
		MaxTicks:        0,
		CommandBufferSz: 256,
	}
}

// Load decodes path into Settings, logging and keeping the current
// (default) values on any read/parse failure rather than aborting.
func Load(path string) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		logw.Warningf(context.Background(), "Config file %v not loaded, using defaults: %v", path, err)
		return
	}
	Settings = c
}

// Speed resolves the configured default speed profile name to a
// board.SpeedConfig.
func (c Config) Speed() board.SpeedConfig {
	if c.DefaultSpeed == "lightning" {
		return board.LightningSpeed
	}
	return board.StandardSpeed
}

// Board resolves the configured default board kind name.
func (c Config) Board() board.Kind {
	if c.DefaultBoard == "four_player" {
		return board.FourPlayer
	}
	return board.Standard
}
