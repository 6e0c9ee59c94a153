// Package config loads runtime configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// UserSeed is one bootstrap user entry, parsed from "name:TYPE".
type UserSeed struct {
	Name string
	Type string
}

// Config holds every runtime setting of the application.
type Config struct {
	DBPath       string
	GateKey      string
	GateTTL      time.Duration
	DefaultUsers []UserSeed
}

// Load reads configuration from the environment. Defaults mirror the original
// application's first-run policy.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:       getEnv("PURCHTRAC_DB", "purchtrac.db"),
		GateKey:      getEnv("PURCHTRAC_GATE_KEY", ""),
		GateTTL:      getDuration("PURCHTRAC_GATE_TTL", 15*time.Minute),
		DefaultUsers: parseSeeds(getEnv("PURCHTRAC_DEFAULT_USERS", "나:SELF,어머니:MOTHER,아버지:FATHER")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseSeeds(raw string) []UserSeed {
	var out []UserSeed
	for _, entry := range strings.Split(raw, ",") {
		name, typ, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || name == "" || typ == "" {
			continue
		}
		out = append(out, UserSeed{Name: name, Type: typ})
	}
	return out
}
