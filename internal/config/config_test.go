package config

import (
	"errors"
	"strings"
	"testing"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestResolveAPIKey_ExplicitWins(t *testing.T) {
	key, source, err := ResolveAPIKey("flag-key", fakeEnv(map[string]string{
		EnvAPIKey:    "env-key",
		EnvAPIKeyAlt: "alt-key",
	}))
	if err != nil {
		t.Fatalf("ResolveAPIKey() error = %v", err)
	}
	if key != "flag-key" {
		t.Errorf("key = %q, want flag-key", key)
	}
	if !strings.Contains(source, "flag") {
		t.Errorf("source = %q, want flag source", source)
	}
}

func TestResolveAPIKey_PrimaryEnv(t *testing.T) {
	key, source, err := ResolveAPIKey("", fakeEnv(map[string]string{
		EnvAPIKey:    "env-key",
		EnvAPIKeyAlt: "alt-key",
	}))
	if err != nil {
		t.Fatalf("ResolveAPIKey() error = %v", err)
	}
	if key != "env-key" {
		t.Errorf("key = %q, want env-key", key)
	}
	if !strings.Contains(source, EnvAPIKey) {
		t.Errorf("source = %q, want %s", source, EnvAPIKey)
	}
}

func TestResolveAPIKey_FallbackEnv(t *testing.T) {
	key, source, err := ResolveAPIKey("", fakeEnv(map[string]string{
		EnvAPIKeyAlt: "alt-key",
	}))
	if err != nil {
		t.Fatalf("ResolveAPIKey() error = %v", err)
	}
	if key != "alt-key" {
		t.Errorf("key = %q, want alt-key", key)
	}
	if !strings.Contains(source, EnvAPIKeyAlt) {
		t.Errorf("source = %q, want %s", source, EnvAPIKeyAlt)
	}
}

func TestResolveAPIKey_Missing(t *testing.T) {
	_, _, err := ResolveAPIKey("", fakeEnv(nil))
	if !errors.Is(err, ErrAPIKeyNotFound) {
		t.Errorf("ResolveAPIKey() error = %v, want ErrAPIKeyNotFound", err)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"short", "*****"},
		{"12345678", "********"},
		{"sk-abcdefghijkl", "sk-a*******ijkl"},
	}

	for _, tt := range tests {
		if got := MaskKey(tt.key); got != tt.want {
			t.Errorf("MaskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
