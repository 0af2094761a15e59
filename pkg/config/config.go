package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DefaultAPIVersion = "2024-10"
)

type Config struct {
	App     AppConfig
	Shopify ShopifyConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUOTEBRIDGE_APP_ENV" default:"development"`
	Port         string `envconfig:"QUOTEBRIDGE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"QUOTEBRIDGE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUOTEBRIDGE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ShopifyConfig holds the Admin API credentials. Both values are deployment
// secrets; when either is absent the quote endpoint refuses requests rather
// than the process refusing to boot, so health stays reachable.
type ShopifyConfig struct {
	StoreDomain string `envconfig:"SHOPIFY_STORE_DOMAIN"`
	AdminToken  string `envconfig:"SHOPIFY_ADMIN_ACCESS_TOKEN"`
	APIVersion  string `envconfig:"SHOPIFY_API_VERSION" default:"2024-10"`
}

func (s ShopifyConfig) Configured() bool {
	return strings.TrimSpace(s.StoreDomain) != "" && strings.TrimSpace(s.AdminToken) != ""
}

// Version returns the configured Admin API version or the default.
func (s ShopifyConfig) Version() string {
	if v := strings.TrimSpace(s.APIVersion); v != "" {
		return v
	}
	return DefaultAPIVersion
}

type CORSConfig struct {
	AllowedOrigin string `envconfig:"QUOTEBRIDGE_ALLOWED_ORIGIN" default:"*"`
}

// Origin returns the allowed origin, falling back to the wildcard.
func (c CORSConfig) Origin() string {
	if o := strings.TrimSpace(c.AllowedOrigin); o != "" {
		return o
	}
	return "*"
}
