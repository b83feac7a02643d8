// Package config loads runtime configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the file paths and switches the simulator runs with.
type Config struct {
	// LibraryPath is the seed library JSON file.
	LibraryPath string
	// CommandsPath is the input command stream JSON file.
	CommandsPath string
	// OutputPath is where the result nodes are written.
	OutputPath string
	// HistoryDB is the SQLite play-history file. Empty disables persistence.
	HistoryDB string
	// Debug enables debug-level logging.
	Debug bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env file")
	}

	return Config{
		LibraryPath:  getEnv("WAVELINE_LIBRARY", "library.json"),
		CommandsPath: getEnv("WAVELINE_COMMANDS", "commands.json"),
		OutputPath:   getEnv("WAVELINE_OUTPUT", "results.json"),
		HistoryDB:    getEnv("WAVELINE_HISTORY_DB", ""),
		Debug:        getEnvBool("WAVELINE_DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid boolean in environment, using default")
		return fallback
	}
	return b
}
