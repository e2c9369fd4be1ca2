// Package config resolves the API credential and other process-level
// settings.
package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIKey is the primary credential variable.
	EnvAPIKey = "GOOGLE_AI_API_KEY"
	// EnvAPIKeyAlt is accepted as a fallback for compatibility with other
	// Google AI tooling.
	EnvAPIKeyAlt = "GOOGLE_API_KEY"
)

var ErrAPIKeyNotFound = errors.New("GOOGLE_AI_API_KEY not found: set the environment variable, create a .env file, or pass --api-key")

// LoadDotenv loads an optional .env file from the working directory.
// Missing files are fine; existing environment variables win.
func LoadDotenv() {
	_ = godotenv.Load()
}

// ResolveAPIKey returns the credential and a human-readable source label.
// Priority: explicit flag value, then EnvAPIKey, then EnvAPIKeyAlt.
func ResolveAPIKey(explicit string, getenv func(string) string) (string, string, error) {
	if explicit != "" {
		return explicit, "command-line flag", nil
	}

	if key := getenv(EnvAPIKey); key != "" {
		return key, "environment variable (" + EnvAPIKey + ")", nil
	}

	if key := getenv(EnvAPIKeyAlt); key != "" {
		return key, "environment variable (" + EnvAPIKeyAlt + ")", nil
	}

	return "", "", ErrAPIKeyNotFound
}

// MaskKey returns a masked version of the key for display.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
