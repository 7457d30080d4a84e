package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

// Supported CSV text encodings.
const (
	EncodingEUCKR = "euc-kr"
	EncodingUTF8  = "utf-8"
)

// Config is filled from defaults, then config/config.yaml, then the environment.
type Config struct {
	AppName    string `yaml:"app_name" envconfig:"APP_NAME"`
	AppVersion string `yaml:"app_version" envconfig:"APP_VERSION"`
	AppEnv     string `yaml:"app_env" envconfig:"APP_ENV"`
	Port       string `yaml:"port" envconfig:"PORT"`

	DataDir     string   `yaml:"data_dir" envconfig:"DATA_DIR"`
	FileSuffix  string   `yaml:"file_suffix" envconfig:"FILE_SUFFIX"`
	CSVEncoding string   `yaml:"csv_encoding" envconfig:"CSV_ENCODING"`
	TimeZone    string   `yaml:"timezone" envconfig:"TIMEZONE"`
	Cities      []string `yaml:"cities" envconfig:"CITIES"`

	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	SentryDSN string `yaml:"sentry_dsn" envconfig:"SENTRY_DSN"`
}

func defaults() Config {
	return Config{
		AppName:     "seasonal-weather-api",
		AppVersion:  "1.0.0",
		AppEnv:      "development",
		Port:        "8080",
		DataDir:     "./data",
		FileSuffix:  "_20222025.csv",
		CSVEncoding: EncodingEUCKR,
		TimeZone:    "Asia/Seoul",
		Cities:      []string{"boryeong", "buyeo", "cheonan", "geumsan", "seosan"},
		LogLevel:    "info",
	}
}

// NewConfig loads DefaultPath and panics on failure.
func NewConfig() *Config {
	cnf, err := Load(DefaultPath)
	if err != nil {
		panic(fmt.Errorf("config: %w", err))
	}
	return cnf
}

// Load reads the yaml file at path if it exists and applies env overrides on top.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cnf := defaults()

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read YAML config %s: %w", path, err)
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	cnf.normalize()
	if err := cnf.Validate(); err != nil {
		return nil, err
	}
	return &cnf, nil
}

func (c *Config) normalize() {
	c.CSVEncoding = strings.ToLower(strings.TrimSpace(c.CSVEncoding))
	c.TimeZone = strings.TrimSpace(c.TimeZone)
	c.Port = strings.TrimSpace(c.Port)
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.FileSuffix == "" {
		return fmt.Errorf("file_suffix is required")
	}
	switch c.CSVEncoding {
	case EncodingEUCKR, EncodingUTF8:
	default:
		return fmt.Errorf("csv_encoding must be %s or %s, got %q", EncodingEUCKR, EncodingUTF8, c.CSVEncoding)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.TimeZone, err)
	}

	nonEmpty := 0
	for _, city := range c.Cities {
		if strings.TrimSpace(city) != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return fmt.Errorf("cities cannot be empty")
	}
	return nil
}

// Location resolves TimeZone. An empty value means the process-local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// ReportsToSentry is true when a DSN is set and the env is production or dev.
func (c *Config) ReportsToSentry() bool {
	return c.SentryDSN != "" && (c.IsProduction() || c.AppEnv == "dev")
}
