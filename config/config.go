// Package config provide simulation process configuration and named loggers.
package config

import (
	"fmt"
	"strings"
)

// Config represent simulation process configuration.
type Config struct {
	DetectorFile string
	GeometryFile string
	SourceFile   string
	OutputDir    string

	Workers int
	Events  int64

	// FixedEnergyMeV is the mono-energetic fallback used when no spectral
	// source is configured. Zero means not configured.
	FixedEnergyMeV float64

	LoggingLevel string
}

// Default returns configuration defaults shared by every command.
func Default() Config {
	return Config{
		OutputDir:    ".",
		Workers:      2,
		Events:       1000,
		LoggingLevel: "info",
	}
}

// Check verifies the configuration and reports the first problem found.
func (c *Config) Check() error {
	if c.Workers < 1 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}
	if c.Events < 0 {
		return fmt.Errorf("invalid number of events: %d", c.Events)
	}
	if c.FixedEnergyMeV < 0 {
		return fmt.Errorf("invalid fixed energy: %g MeV", c.FixedEnergyMeV)
	}
	if !validateLoggingLevel(c.LoggingLevel) {
		return fmt.Errorf(
			"invalid logging level %q, expected one of: %s",
			c.LoggingLevel, availableLoggingLevelsString,
		)
	}
	return nil
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
