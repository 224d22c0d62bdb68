// Package config loads and validates application configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Curation  CurationConfig  `mapstructure:"curation"`
	Reports   ReportsConfig   `mapstructure:"reports"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"required,min=1,max=65535"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database" validate:"required"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

type ProvidersConfig struct {
	Aladin  AladinConfig  `mapstructure:"aladin"`
	Naver   NaverConfig   `mapstructure:"naver"`
	Library LibraryConfig `mapstructure:"library"`
}

// AladinConfig holds the bookseller catalog API credentials.
type AladinConfig struct {
	TTBKey string `mapstructure:"ttb_key"`
}

// NaverConfig holds the social-content API credentials.
type NaverConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// LibraryConfig holds the public lending API credentials.
type LibraryConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type CacheConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
	TTLHours  int    `mapstructure:"ttl_hours" validate:"min=1"`
}

// CurationConfig tunes the curation engine.
type CurationConfig struct {
	// Target age in years for cross-validation during enrichment.
	// Zero disables validation.
	TargetAgeYears int `mapstructure:"target_age_years" validate:"min=0,max=13"`
}

type ReportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/chaekmaru")
	}

	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "chaekmaru")
	v.SetDefault("database.database", "chaekmaru")
	v.SetDefault("cache.directory", filepath.Join("cache", "providers"))
	v.SetDefault("cache.ttl_hours", 24)
	v.SetDefault("reports.directory", "reports")

	// Credentials come from the environment only, never the config file.
	bindings := map[string]string{
		"providers.aladin.ttb_key":      "ALADIN_TTB_KEY",
		"providers.naver.client_id":     "NAVER_CLIENT_ID",
		"providers.naver.client_secret": "NAVER_CLIENT_SECRET",
		"providers.library.api_key":     "LIBRARY_API_KEY",
		"database.password":             "CHAEKMARU_DB_PASSWORD",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration, returning translated messages for
// every violated constraint.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator > %w", err)
	}

	if err := validate.Struct(c); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validate.Struct > %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %v", messages)
	}
	return nil
}
