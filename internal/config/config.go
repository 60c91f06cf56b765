package config

import (
	"math"
	"os"
	"strconv"

	"luxstat/domain/measure"
	"luxstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	// InstrumentalUncertainty is the lux meter's resolution limit, in lux.
	InstrumentalUncertainty float64

	// Profile enables the measurement-set diagnostic block in the output.
	Profile bool
}

// Environment variable names
const (
	EnvInstrumentalUncertainty = "LUXSTAT_INSTRUMENTAL_UNCERTAINTY"
	EnvProfile                 = "LUXSTAT_PROFILE"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		InstrumentalUncertainty: measure.DefaultInstrumentalUncertainty,
	}

	if raw := os.Getenv(EnvInstrumentalUncertainty); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", EnvInstrumentalUncertainty)
		}
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, errors.ConfigInvalid(EnvInstrumentalUncertainty + " must be a finite non-negative number")
		}
		config.InstrumentalUncertainty = value
	}

	if raw := os.Getenv(EnvProfile); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", EnvProfile)
		}
		config.Profile = value
	}

	return config, nil
}
