package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration, shared by the
// terminal client and the development stub server.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Google  GoogleConfig  `yaml:"google"`
	Refresh RefreshConfig `yaml:"refresh"`
	Stub    StubConfig    `yaml:"stub"`
}

// APIConfig holds the settings for the remote booking API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// SessionConfig holds the settings for the persisted session store.
type SessionConfig struct {
	// Path overrides the default session file location under the user
	// config dir. Mostly useful in tests.
	Path string `yaml:"path"`
}

// GoogleConfig holds the federated sign-in settings.
type GoogleConfig struct {
	// AllowedDomain is the institutional email suffix accepted for
	// federated sign-in, without the leading "@".
	AllowedDomain string `yaml:"allowed_domain"`
}

// RefreshConfig holds the background refresh settings.
type RefreshConfig struct {
	IntervalSeconds int           `yaml:"interval_seconds"`
	Interval        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// StubConfig holds the configuration for the development stub server.
type StubConfig struct {
	Port            int     `yaml:"port"`
	DSN             string  `yaml:"dsn"`
	JWTSecret       string  `yaml:"jwt_secret"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a configuration with every default applied, used when no
// config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080/api"
	}
	if cfg.Google.AllowedDomain == "" {
		cfg.Google.AllowedDomain = "lnmiit.ac.in"
	}
	if cfg.Refresh.IntervalSeconds <= 0 {
		cfg.Refresh.IntervalSeconds = 30
	}
	cfg.Refresh.Interval = time.Duration(cfg.Refresh.IntervalSeconds) * time.Second

	if cfg.Stub.Port <= 0 {
		cfg.Stub.Port = 8080
	}
	if cfg.Stub.DSN == "" {
		cfg.Stub.DSN = "file:laundry_stub.db"
	}
	if cfg.Stub.JWTSecret == "" {
		cfg.Stub.JWTSecret = "dev-only-secret"
	}
	if cfg.Stub.RateLimitPerSec <= 0 {
		cfg.Stub.RateLimitPerSec = 10
	}
	if cfg.Stub.RateLimitBurst <= 0 {
		cfg.Stub.RateLimitBurst = 5
	}
	if cfg.Stub.CacheTTLSeconds <= 0 {
		cfg.Stub.CacheTTLSeconds = 5
	}
}
