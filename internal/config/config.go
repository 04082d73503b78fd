package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. DatabaseURL is the only hard requirement; the
// rest have defaults that match the single-host compose file.
type Config struct {
	Env         string // deployment environment ("development", "production")
	Port        string // HTTP port to listen on
	DatabaseURL string // PostgreSQL connection URL
	APIKey      string // static API key; empty disables the key check
}

// Load reads configuration values from environment variables and returns a
// Config. DATABASE_URL is enforced by must() and a missing value causes the
// program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:         getenv("ENVIRONMENT", "development"), // environment label, compose sets "production"
		Port:        getenv("APP_PORT", "8000"),           // port the container exposes
		DatabaseURL: must("DATABASE_URL"),                 // postgres URL, injected by compose
		APIKey:      os.Getenv("API_KEY"),                 // optional static key (empty = open)
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
