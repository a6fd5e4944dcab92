package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ContentSource string

const (
	SourceDir ContentSource = "dir"
	SourceSQL ContentSource = "sql"
)

type Config struct {
	// studyd
	HTTPAddr      string        `yaml:"http_addr"`
	ContentSource ContentSource `yaml:"content_source"` // dir|sql
	ContentDir    string        `yaml:"content_dir"`
	DBDriver      string        `yaml:"db_driver"` // sqlite|postgres
	DBDSN         string        `yaml:"db_dsn"`
	SeedDir       string        `yaml:"seed_dir"` // imported into the SQL catalog on start
	CORSOrigins   []string      `yaml:"cors_origins"`

	// cedzoi client
	ContentURL string `yaml:"content_url"` // http(s) URL or directory
	Theme      string `yaml:"theme"`

	Verbose bool `yaml:"verbose"`
}

// Load reads .env (if present), then the environment, then the optional
// YAML file named by CEDZOI_CONFIG, which wins over both.
func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := FromEnv()
	if p := os.Getenv("CEDZOI_CONFIG"); p != "" {
		if err := cfg.mergeFile(p); err != nil {
			return Config{}, err
		}
	}
	return cfg, cfg.Validate()
}

func FromEnv() Config {
	return Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		ContentSource: ContentSource(envOr("CONTENT_SOURCE", string(SourceDir))),
		ContentDir:    envOr("CONTENT_DIR", "./public/data"),
		DBDriver:      envOr("DB_DRIVER", "sqlite"),
		DBDSN:         envOr("DB_DSN", ""),
		SeedDir:       os.Getenv("SEED_DIR"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
		ContentURL:    envOr("CONTENT_URL", "http://localhost:8080"),
		Theme:         os.Getenv("THEME"),
		Verbose:       envBool("LOG_VERBOSE", false),
	}
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	// decode over the env values so unset keys keep them
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.ContentSource {
	case SourceDir, SourceSQL:
	default:
		return fmt.Errorf("CONTENT_SOURCE: unknown value %q (want dir or sql)", c.ContentSource)
	}
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER: unsupported driver %q", c.DBDriver)
	}
	return nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
