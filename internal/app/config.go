package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/larekshop/larek-backend/internal/handlers"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/utils"
)

type Config struct {
	JWTSecretKey        string
	AccessTokenTTL      time.Duration
	RefreshTokenTTL     time.Duration
	CatalogCacheTTL     time.Duration
	DetailCacheTTL      time.Duration
	ResetPasswordLength int
	AllowedOrigins      []string
	Contacts            handlers.ContactInfo
}

// fileConfig is the optional YAML overlay pointed at by CONFIG_FILE.
// Only the shop-facing settings live there; secrets stay in env.
type fileConfig struct {
	AllowedOrigins []string             `yaml:"allowed_origins"`
	Contacts       handlers.ContactInfo `yaml:"contacts"`
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	catalogCacheTTLSeconds := utils.GetEnvAsInt("CACHE_TTL_SECONDS", 300, log)
	detailCacheTTLSeconds := utils.GetEnvAsInt("DETAIL_CACHE_TTL_SECONDS", 60, log)
	resetPasswordLength := utils.GetEnvAsInt("RESET_PASSWORD_LENGTH", 10, log)

	cfg := Config{
		JWTSecretKey:        jwtSecretKey,
		AccessTokenTTL:      time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:     time.Duration(refreshTokenTTLSeconds) * time.Second,
		CatalogCacheTTL:     time.Duration(catalogCacheTTLSeconds) * time.Second,
		DetailCacheTTL:      time.Duration(detailCacheTTLSeconds) * time.Second,
		ResetPasswordLength: resetPasswordLength,
		AllowedOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		Contacts: handlers.ContactInfo{
			ShopName: "Ларёк",
			Email:    utils.GetEnv("CONTACT_EMAIL", "info@larek.example", log),
		},
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := applyFileConfig(&cfg, path); err != nil {
			log.Warn("Failed to apply config file, keeping env defaults", "path", path, "error", err)
		} else {
			log.Info("Applied config file", "path", path)
		}
	}
	return cfg
}

func applyFileConfig(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.Contacts.ShopName != "" {
		cfg.Contacts.ShopName = fc.Contacts.ShopName
	}
	if fc.Contacts.Email != "" {
		cfg.Contacts.Email = fc.Contacts.Email
	}
	if fc.Contacts.Phone != "" {
		cfg.Contacts.Phone = fc.Contacts.Phone
	}
	if fc.Contacts.Address != "" {
		cfg.Contacts.Address = fc.Contacts.Address
	}
	return nil
}
