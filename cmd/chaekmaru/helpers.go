package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/chaekmaru/chaekmaru/internal/cache"
	"github.com/chaekmaru/chaekmaru/internal/catalog"
	"github.com/chaekmaru/chaekmaru/internal/config"
	"github.com/chaekmaru/chaekmaru/internal/database"
	"github.com/chaekmaru/chaekmaru/internal/lending"
	"github.com/chaekmaru/chaekmaru/internal/social"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}
	return db, nil
}

func newCacheStore(cfg *config.Config) *cache.Store {
	return cache.NewStore(cfg.Cache.Directory, time.Duration(cfg.Cache.TTLHours)*time.Hour)
}

func newCatalogClient(cfg *config.Config) (*catalog.Client, error) {
	if cfg.Providers.Aladin.TTBKey == "" {
		return nil, fmt.Errorf("ALADIN_TTB_KEY is not set")
	}
	return catalog.NewClient(cfg.Providers.Aladin.TTBKey), nil
}

func newSocialClient(cfg *config.Config) (*social.Client, error) {
	naver := cfg.Providers.Naver
	if naver.ClientID == "" || naver.ClientSecret == "" {
		return nil, fmt.Errorf("NAVER_CLIENT_ID or NAVER_CLIENT_SECRET is not set")
	}
	return social.NewClient(naver.ClientID, naver.ClientSecret,
		social.WithCache(newCacheStore(cfg))), nil
}

func newLendingClient(cfg *config.Config) (*lending.Client, error) {
	if cfg.Providers.Library.APIKey == "" {
		return nil, fmt.Errorf("LIBRARY_API_KEY is not set")
	}
	return lending.NewClient(cfg.Providers.Library.APIKey), nil
}
