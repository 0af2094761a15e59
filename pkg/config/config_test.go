package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the test while keeping t.Setenv's restore.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "SHOPIFY_STORE_DOMAIN")
	unsetenv(t, "SHOPIFY_ADMIN_ACCESS_TOKEN")
	unsetenv(t, "SHOPIFY_API_VERSION")
	unsetenv(t, "QUOTEBRIDGE_APP_ENV")
	unsetenv(t, "QUOTEBRIDGE_APP_PORT")
	unsetenv(t, "QUOTEBRIDGE_LOG_LEVEL")
	unsetenv(t, "QUOTEBRIDGE_ALLOWED_ORIGIN")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.True(t, cfg.App.IsDev())
	assert.False(t, cfg.Shopify.Configured())
	assert.Equal(t, DefaultAPIVersion, cfg.Shopify.Version())
	assert.Equal(t, "*", cfg.CORS.Origin())
}

func TestLoad_ShopifyConfigured(t *testing.T) {
	t.Setenv("SHOPIFY_STORE_DOMAIN", "demo.myshopify.com")
	t.Setenv("SHOPIFY_ADMIN_ACCESS_TOKEN", "shpat_test")
	t.Setenv("SHOPIFY_API_VERSION", "2025-01")
	t.Setenv("QUOTEBRIDGE_ALLOWED_ORIGIN", "https://store.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Shopify.Configured())
	assert.Equal(t, "2025-01", cfg.Shopify.Version())
	assert.Equal(t, "https://store.example.com", cfg.CORS.Origin())
}

func TestShopifyConfigured_RejectsBlank(t *testing.T) {
	cfg := ShopifyConfig{StoreDomain: "   ", AdminToken: "shpat_test"}
	assert.False(t, cfg.Configured())

	cfg = ShopifyConfig{StoreDomain: "demo.myshopify.com", AdminToken: ""}
	assert.False(t, cfg.Configured())
}
