package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Every field has a
// default so importing packages (and their tests) never require a populated
// environment.
type Config struct {
	HostIP         string  // Host IP for the server
	RESTPort       int     // Port for the REST API
	GinMode        string  // Mode for the Gin framework (e.g., release, debug, test)
	GridSize       int     // Side length of generated mazes, in tiles
	MazeType       string  // Generator variant: scattered, binarytree, huntandkill, backtrack, sidewinder
	Orientation    string  // Mirror axis: vertical or horizontal
	MinWallLength  int     // Minimum wall run for the scattered-wall generator
	MaxWallLength  int     // Maximum wall run for the scattered-wall generator
	NorthBias      float64 // North-carving probability for the binary-tree generator
	MaxGenAttempts int     // Generation retries before falling back to an open grid
	RandomSeed     int64   // Seed for the generation random source; 0 means time-seeded
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one is present.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		GridSize:       getEnvAsIntWithDefault("GRID_SIZE", 21),
		MazeType:       getEnvWithDefault("MAZE_TYPE", "huntandkill"),
		Orientation:    getEnvWithDefault("ORIENTATION", "vertical"),
		MinWallLength:  getEnvAsIntWithDefault("MIN_WALL_LENGTH", 1),
		MaxWallLength:  getEnvAsIntWithDefault("MAX_WALL_LENGTH", 3),
		NorthBias:      getEnvAsFloatWithDefault("NORTH_BIAS", 0.5),
		MaxGenAttempts: getEnvAsIntWithDefault("MAX_GEN_ATTEMPTS", 100),
		RandomSeed:     int64(getEnvAsIntWithDefault("RANDOM_SEED", 0)),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer,
// falling back to the default when unset or unparsable.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [ERROR] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}

// getEnvAsFloatWithDefault retrieves an environment variable as a float,
// falling back to the default when unset or unparsable.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[APP] [ERROR] Environment variable %s must be a number: %v", key, err)
		return defaultValue
	}
	return value
}
