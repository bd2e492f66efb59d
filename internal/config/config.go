// seehuhn.de/go/piechart - exploded pie charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the piechart command from the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings read from PIECHART_* environment variables.
type Config struct {
	OutputDir  string   `envconfig:"PIECHART_OUTPUT_DIR" default:"."`
	FontDirs   []string `envconfig:"PIECHART_FONT_DIRS"`
	FontFamily string   `envconfig:"PIECHART_FONT_FAMILY" default:"go"`
	LogLevel   string   `envconfig:"PIECHART_LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.  Unset variables
// take their default values.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level returns the log level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel converts a level name like "debug" or "warn" into a log
// level.  The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
