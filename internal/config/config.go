package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAddr      = ":8080"
	defaultBaseURL   = "http://localhost:8080"
	defaultFormURL   = "https://cloudx.typeform.com/agendar"
	defaultRateLimit = 60
)

// Provider is the read-only view of the configuration handed to modules.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetFormURL() string
	GetLogoURL() string
	GetContentFile() string
	GetContentHotReload() bool
	GetLogFormat() string
	GetLogLevel() string
	GetMetricsEnabled() bool
	GetFragmentRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	Addr              string
	AppBaseURL        string
	FormURL           string
	LogoURL           string
	ContentFile       string
	ContentHotReload  bool
	LogFormat         string
	LogLevel          string
	MetricsEnabled    bool
	FragmentRateLimit int
}

// New loads configuration from a .env file, when one exists, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only,
// applying defaults for anything unset.
func FromEnv() *Config {
	addr := getenv("APP_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = port
		} else {
			addr = defaultAddr
		}
	}
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &Config{
		Addr:              addr,
		AppBaseURL:        strings.TrimRight(getenv("APP_BASE_URL", defaultBaseURL), "/"),
		FormURL:           getenv("CLOUDX_FORM_URL", defaultFormURL),
		LogoURL:           getenv("CLOUDX_LOGO_URL", ""),
		ContentFile:       os.Getenv("CONTENT_FILE"),
		ContentHotReload:  getbool("CONTENT_HOT_RELOAD", false),
		LogFormat:         getenv("LOG_FORMAT", "text"),
		LogLevel:          getenv("LOG_LEVEL", "debug"),
		MetricsEnabled:    getbool("METRICS_ENABLED", false),
		FragmentRateLimit: getint("FRAGMENT_RATE_LIMIT", defaultRateLimit),
	}
}

func (c *Config) GetAddr() string { return c.Addr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetFormURL() string { return c.FormURL }
func (c *Config) GetLogoURL() string { return c.LogoURL }
func (c *Config) GetContentFile() string { return c.ContentFile }
func (c *Config) GetContentHotReload() bool { return c.ContentHotReload }
func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetLogLevel() string { return c.LogLevel }
func (c *Config) GetMetricsEnabled() bool { return c.MetricsEnabled }
func (c *Config) GetFragmentRateLimit() int { return c.FragmentRateLimit }

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid positive integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
