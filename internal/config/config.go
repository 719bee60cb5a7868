package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	MongoDBName    string
	CollectionName string
	RedisURI       string // optional; rate limiting is disabled when empty
	Port           string
	AllowedOrigins []string
	LogLevel       string
	Environment    string // ENV: production, development, etc.
}

func Load() *Config {
	return &Config{
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:    getEnv("MONGODB_DB_NAME", "Emogo"),
		CollectionName: getEnv("MONGODB_COLLECTION_NAME", "records"),
		RedisURI:       getEnv("REDIS_URI", ""),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Environment:    strings.ToLower(strings.TrimSpace(getEnv("ENV", "development"))),
	}
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
