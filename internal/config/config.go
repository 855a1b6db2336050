package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables, with a .env file as the optional source.
type Config struct {
	ListenAddr string

	// WatchDir is the directory the watch command observes for CSV drops.
	WatchDir string

	// SchemaFile optionally overrides the built-in column schema.
	SchemaFile string

	// OutputDir is where export targets write their files.
	OutputDir string

	// ExportFormats selects the file export targets: csv, json, xlsx, sqlite.
	ExportFormats []string

	// PostgresDSN enables the Postgres snapshot writer when non-empty.
	PostgresDSN string

	Verbose bool
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		WatchDir:      getEnv("WATCH_DIR", "./data"),
		SchemaFile:    getEnv("SCHEMA_FILE", ""),
		OutputDir:     getEnv("OUTPUT_DIR", "./outputs"),
		ExportFormats: splitList(getEnv("EXPORT_FORMATS", "json,csv")),
		PostgresDSN:   getEnv("POSTGRES_DSN", ""),
		Verbose:       getEnv("VERBOSE", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
