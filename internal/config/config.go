package config // package config loads application configuration from environment variables

import (
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"golang.org/x/crypto/bcrypt"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a working default so the server
// can run with no environment at all, which is how the original deployment
// operated.
type Config struct {
	Port         string // HTTP port to listen on
	DBPath       string // path of the SQLite database file
	BcryptCost   int    // bcrypt cost for password hashing
	ImageBaseURL string // base URL prefixed to relative poster/backdrop paths
}

// Load reads configuration values from environment variables, falling back
// to defaults when a variable is unset.
func Load() Config {
	return Config{
		Port:         getenv("APP_PORT", "8081"),
		DBPath:       getenv("DB_PATH", "./movies.db"),
		BcryptCost:   getenvInt("BCRYPT_COST", bcrypt.DefaultCost),
		ImageBaseURL: getenv("IMAGE_BASE_URL", "https://image.tmdb.org/t/p/original"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}
