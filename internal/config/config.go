// Package config provides environment-based configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds server configuration loaded from the environment.
type Config struct {
	Port        int      // PORT, default 5000
	DatabaseURL string   // DATABASE_URL, required for serve
	GeminiKey   string   // GEMINI_API_KEY, optional; assist endpoints 503 without it
	GeminiModel string   // GEMINI_MODEL, defaults inside the llm package
	CORSOrigins []string // CORS_ORIGIN, comma-separated; default localhost:3000
}

// FromEnv loads configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        5000,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("GEMINI_MODEL"),
		CORSOrigins: []string{"http://localhost:3000"},
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = n
	}

	if origins := os.Getenv("CORS_ORIGIN"); origins != "" {
		cfg.CORSOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	return cfg, nil
}
