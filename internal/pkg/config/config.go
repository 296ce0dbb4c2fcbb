package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultTargetURL = "https://www.ke.sportpesa.com/en/sports-betting/football-1/"

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Scraper    ScraperConfig    `yaml:"scraper"`
	Browser    BrowserConfig    `yaml:"browser"`
	Prediction PredictionConfig `yaml:"prediction"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port              int           `yaml:"port"`
	Debug             bool          `yaml:"debug"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

type ScraperConfig struct {
	TargetURL string            `yaml:"target_url"`
	UserAgent string            `yaml:"user_agent"`
	Timeout   time.Duration     `yaml:"timeout"`
	Headers   map[string]string `yaml:"headers"`
	CloudMode bool              `yaml:"cloud_mode"` // disables the headless browser strategy
}

type BrowserConfig struct {
	ExecPath    string        `yaml:"exec_path"`    // empty = look up chrome/chromium on PATH
	InitialWait time.Duration `yaml:"initial_wait"` // before scrolling
	RenderWait  time.Duration `yaml:"render_wait"`  // after scrolling, for odds scripts
	Timeout     time.Duration `yaml:"timeout"`
}

type PredictionConfig struct {
	Noise         *float64           `yaml:"noise"` // nil = default 0.05
	TeamStrengths map[string]float64 `yaml:"team_strengths"`
}

type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	RedisAddr string        `yaml:"redis_addr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	TTL       time.Duration `yaml:"ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              5000,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Scraper: ScraperConfig{
			TargetURL: DefaultTargetURL,
			UserAgent: DefaultUserAgent,
			Timeout:   30 * time.Second,
		},
		Browser: BrowserConfig{
			InitialWait: 3 * time.Second,
			RenderWait:  6 * time.Second,
			Timeout:     60 * time.Second,
		},
		Cache: CacheConfig{
			RedisAddr: "localhost:6379",
			TTL:       60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configPath over the defaults. An empty path yields the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values from the environment:
// PORT, DEBUG, RUNNING_IN_CLOUD, REDIS_ADDR, LOG_LEVEL.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := getenv("DEBUG"); v != "" {
		c.Server.Debug = isTrue(v)
	}
	if v := getenv("RUNNING_IN_CLOUD"); v != "" {
		c.Scraper.CloudMode = isTrue(v)
	}
	if v := getenv("REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the values that would otherwise fail at request time.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be greater than 0, got %d", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		errs = append(errs, errors.New("server.read_header_timeout must be specified"))
	}
	if strings.TrimSpace(c.Scraper.TargetURL) == "" {
		errs = append(errs, errors.New("scraper.target_url must not be empty"))
	}
	if c.Scraper.Timeout < 0 || c.Browser.Timeout < 0 || c.Browser.InitialWait < 0 || c.Browser.RenderWait < 0 {
		errs = append(errs, errors.New("scraper and browser durations must not be negative"))
	}
	if c.Prediction.Noise != nil && (*c.Prediction.Noise < 0 || *c.Prediction.Noise > 1) {
		errs = append(errs, fmt.Errorf("prediction.noise must be within [0,1], got %v", *c.Prediction.Noise))
	}
	for team, s := range c.Prediction.TeamStrengths {
		if s < 0 || s > 1 {
			errs = append(errs, fmt.Errorf("prediction.team_strengths[%q] must be within [0,1], got %v", team, s))
		}
	}
	if c.Cache.Enabled {
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("cache.redis_addr must be set when cache is enabled"))
		}
		if c.Cache.TTL <= 0 {
			errs = append(errs, errors.New("cache.ttl must be positive when cache is enabled"))
		}
	}
	return errors.Join(errs...)
}

func isTrue(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
