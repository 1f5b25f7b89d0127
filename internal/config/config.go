// Package config loads the skyrouted daemon settings from the environment,
// reading a .env file first when one is present.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when a variable is unset.
const (
	DefaultAddr     = ":8080"
	DefaultMaxCells = 10000
)

// Environment variable names.
const (
	EnvAddr     = "SKYROUTE_ADDR"
	EnvMaxCells = "SKYROUTE_MAX_CELLS"
)

// ErrInvalidValue is returned when a variable is set but cannot be used.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the daemon configuration.
type Config struct {
	Addr     string // listen address for the HTTP server
	MaxCells int    // largest grid (width×height) a request may ask for
}

// Load reads .env files (default ".env" when none are given) and then the
// process environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	maxCells, err := getEnvAsIntWithDefault(EnvMaxCells, DefaultMaxCells)
	if err != nil {
		return Config{}, err
	}
	if maxCells < 1 {
		return Config{}, fmt.Errorf("%s=%d must be positive: %w", EnvMaxCells, maxCells, ErrInvalidValue)
	}

	return Config{
		Addr:     getEnvWithDefault(EnvAddr, DefaultAddr),
		MaxCells: maxCells,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer variable, falling back to defaultValue when unset.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, valueStr, ErrInvalidValue)
	}
	return value, nil
}
