package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Port     int
	JWTKey   string
	Debug    bool
	SeedFile string
}

// LoadConfig reads configuration from environment variables. A .env file in
// the working directory is loaded first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:     port,
		JWTKey:   getEnv("JWT_KEY", "advisor-crm-dev-key"), // replace in real deployments
		Debug:    getEnv("GIN_MODE", "debug") == "debug",
		SeedFile: getEnv("SEED_FILE", ""),
	}
}

// getEnv returns the environment variable or a default when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
