// ABOUTME: Configuration loader for the filmfit CLI
// ABOUTME: Resolves settings from flags, environment, an optional .env file and defaults

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nsttdn/Film-fit/internal/client"
)

// Environment variable names
const (
	EnvAPIURL    = "FILMFIT_API_URL"
	EnvConfigDir = "FILMFIT_CONFIG_DIR"
	EnvLogLevel  = "FILMFIT_LOG_LEVEL"
	EnvLogFormat = "FILMFIT_LOG_FORMAT"
)

// EnvFileName is the optional dotenv file read from the working and config directories
const EnvFileName = ".env"

type Config struct {
	APIURL    string
	ConfigDir string
	LogLevel  string // debug, info, warn, error (default: info)
	LogFormat string // text, json (default: text)
}

// Flags carries values given on the command line; empty means unset
type Flags struct {
	APIURL string
}

// Load resolves the configuration. Flags win over the environment, which wins
// over .env files, which win over defaults.
func Load(flags Flags) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{
		APIURL:    ensureScheme(strings.TrimSpace(getEnv(EnvAPIURL, client.DefaultBaseURL))),
		ConfigDir: getEnv(EnvConfigDir, DefaultConfigDir()),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "info")),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, "text")),
	}
	if flags.APIURL != "" {
		cfg.APIURL = ensureScheme(strings.TrimSpace(flags.APIURL))
	}

	if err := validateURL(cfg.APIURL); err != nil {
		return nil, err
	}
	if cfg.ConfigDir == "" {
		return nil, fmt.Errorf("cannot determine config directory; set %s", EnvConfigDir)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%s must be text or json, got %q", EnvLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}

// loadEnvFiles reads .env from the working directory, then from the config
// directory. godotenv.Load never overrides variables that are already set, so
// the first file to define a key wins and real environment beats both.
func loadEnvFiles() {
	paths := []string{EnvFileName}
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		dir = DefaultConfigDir()
	}
	if dir != "" {
		paths = append(paths, filepath.Join(dir, EnvFileName))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

// DefaultConfigDir returns the default config directory following the XDG base directory layout
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "filmfit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "filmfit")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API URL %q: missing host", raw)
	}
	return nil
}
