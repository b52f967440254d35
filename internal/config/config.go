package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Catalog struct {
		// Path is the normalized catalog file loaded at startup and on
		// refresh.
		Path        string `yaml:"path" env:"CATALOG_PATH"`
		LoadOnStart bool   `yaml:"load_on_start" env:"CATALOG_LOAD_ON_START"`
	} `yaml:"catalog"`

	Sessions struct {
		// Driver selects the session history backend: memory or postgres.
		Driver string `yaml:"driver" env:"SESSIONS_DRIVER"`
	} `yaml:"sessions"`

	Database struct {
		Host     string `yaml:"host" env:"DB_HOST"`
		Port     string `yaml:"port" env:"DB_PORT"`
		User     string `yaml:"user" env:"DB_USER"`
		Password string `yaml:"password" env:"DB_PASSWORD"`
		DBName   string `yaml:"dbname" env:"DB_NAME"`
		SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
	} `yaml:"database"`

	Assembler struct {
		// MaxCredits caps total placed credits when a request sets no cap.
		MaxCredits float64 `yaml:"max_credits" env:"ASSEMBLER_MAX_CREDITS"`
		// MaxComparisons bounds conflict-check work per request; zero uses
		// the built-in default.
		MaxComparisons int `yaml:"max_comparisons" env:"ASSEMBLER_MAX_COMPARISONS"`
	} `yaml:"assembler"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A .env file is optional; environment wins over it either way.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Catalog.Path = "data/catalog.json"
	config.Catalog.LoadOnStart = true

	config.Sessions.Driver = "memory"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coursepilot"
	config.Database.SSLMode = "disable"

	config.Assembler.MaxCredits = 18

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Sessions.Driver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("unknown sessions driver %q", config.Sessions.Driver)
	}

	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}
	if config.Assembler.MaxCredits <= 0 {
		return fmt.Errorf("assembler max credits must be positive")
	}
	if config.Assembler.MaxComparisons < 0 {
		return fmt.Errorf("assembler max comparisons cannot be negative")
	}

	if config.Sessions.Driver == "postgres" && config.Database.Host == "" {
		return fmt.Errorf("database host is required for the postgres sessions driver")
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
