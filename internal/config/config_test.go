package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "./movies.db", cfg.DBPath)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, "https://image.tmdb.org/t/p/original", cfg.ImageBaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("IMAGE_BASE_URL", "https://img.example.com")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "https://img.example.com", cfg.ImageBaseURL)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")
	assert.Equal(t, bcrypt.DefaultCost, Load().BcryptCost)
}
