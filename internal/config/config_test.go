package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nsttdn/Film-fit/internal/client"
)

// withCleanEnv unsets every filmfit variable for the duration of the test and
// runs it from an empty working directory so no stray .env is picked up.
func withCleanEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{EnvAPIURL, EnvConfigDir, EnvLogLevel, EnvLogFormat, "XDG_CONFIG_HOME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvConfigDir, filepath.Join(dir, "config"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := withCleanEnv(t)

	cfg, err := Load(Flags{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.APIURL != client.DefaultBaseURL {
		t.Errorf("Expected default API URL %s, got %s", client.DefaultBaseURL, cfg.APIURL)
	}
	if cfg.ConfigDir != filepath.Join(dir, "config") {
		t.Errorf("Expected config dir from env, got %s", cfg.ConfigDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("Expected default log format text, got %s", cfg.LogFormat)
	}
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	withCleanEnv(t)
	t.Setenv(EnvAPIURL, "https://env.example.com")

	cfg, err := Load(Flags{APIURL: "http://localhost:8080"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("Expected flag to win, got %s", cfg.APIURL)
	}
}

func TestLoad_EnvAddsScheme(t *testing.T) {
	withCleanEnv(t)
	t.Setenv(EnvAPIURL, "api.filmfit.test")

	cfg, err := Load(Flags{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.APIURL != "https://api.filmfit.test" {
		t.Errorf("Expected https scheme added, got %s", cfg.APIURL)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := withCleanEnv(t)
	content := EnvAPIURL + "=http://dotenv.local:9000\n" + EnvLogLevel + "=debug\n"
	if err := os.WriteFile(filepath.Join(dir, EnvFileName), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(Flags{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.APIURL != "http://dotenv.local:9000" {
		t.Errorf("Expected API URL from .env, got %s", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level from .env, got %s", cfg.LogLevel)
	}
}

func TestLoad_EnvBeatsDotEnv(t *testing.T) {
	dir := withCleanEnv(t)
	t.Setenv(EnvAPIURL, "https://real-env.example.com")
	content := EnvAPIURL + "=http://dotenv.local:9000\n"
	if err := os.WriteFile(filepath.Join(dir, EnvFileName), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(Flags{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.APIURL != "https://real-env.example.com" {
		t.Errorf("Expected real environment to win over .env, got %s", cfg.APIURL)
	}
}

func TestLoad_DotEnvInConfigDir(t *testing.T) {
	dir := withCleanEnv(t)
	configDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, EnvFileName), []byte(EnvLogFormat+"=json\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(Flags{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected log format from config dir .env, got %s", cfg.LogFormat)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		flags   Flags
		wantErr string
	}{
		{
			name:    "bad scheme",
			flags:   Flags{APIURL: "ftp://films.example.com"},
			wantErr: "scheme",
		},
		{
			name:    "missing host",
			flags:   Flags{APIURL: "https://"},
			wantErr: "missing host",
		},
		{
			name:    "bad log format",
			env:     map[string]string{EnvLogFormat: "xml"},
			wantErr: EnvLogFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withCleanEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load(tc.flags)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", "filmfit") {
		t.Errorf("Expected XDG config dir, got %s", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := DefaultConfigDir(); got != filepath.Join(home, ".config", "filmfit") {
		t.Errorf("Expected home config dir, got %s", got)
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"films.example.com", "https://films.example.com"},
		{"http://localhost:8080", "http://localhost:8080"},
		{"https://x.ngrok-free.app", "https://x.ngrok-free.app"},
	}
	for _, tc := range tests {
		if got := ensureScheme(tc.in); got != tc.want {
			t.Errorf("ensureScheme(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
