// Package config loads the application's configuration from environment
// variables, optionally seeded from a .env file. Every key has a default,
// so the server runs with no environment at all.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP            string // Host IP for the server
	RESTPort          int    // Port for the REST API
	GinMode           string // Mode for the Gin framework (e.g., release, debug, test)
	MaxMazeDimension  int    // Upper bound for either maze dimension; 0 disables the cap
	DefaultMazeWidth  int    // Width used when a create request omits one
	DefaultMazeHeight int    // Height used when a create request omits one
}

// Envs holds the application's configuration loaded from environment
// variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one exists.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug(".env file not found or could not be loaded")
	}

	return Config{
		HostIP:            getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:          getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:           getEnvWithDefault("GIN_MODE", "release"),
		MaxMazeDimension:  getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 100),
		DefaultMazeWidth:  getEnvAsIntWithDefault("DEFAULT_MAZE_WIDTH", 10),
		DefaultMazeHeight: getEnvAsIntWithDefault("DEFAULT_MAZE_HEIGHT", 10),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or
// returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as
// an integer, or returns a default value if not set. A set but unparseable
// value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
