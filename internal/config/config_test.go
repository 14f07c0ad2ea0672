package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "X-External-User-Id", cfg.ExternalIDHeader)
	assert.Equal(t, "X-Identity-Provider", cfg.ProviderHeader)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, []string{"chat", "voip"}, cfg.TokenScopes)
	assert.Equal(t, time.Hour, cfg.MinTokenValidity)
	assert.Equal(t, IssuerModeLocal, cfg.IssuerMode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("EXTERNAL_ID_HEADER", "X-Zumo-Auth")
	t.Setenv("PROVIDER_HEADER", "X-Zumo-Auth-Provider")
	t.Setenv("TOKEN_SCOPES", "chat, voip, sms")
	t.Setenv("MIN_TOKEN_VALIDITY", "30m")
	t.Setenv("ISSUER_MODE", "http_api")
	t.Setenv("ISSUER_API_URL", "https://identity.example.com")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "X-Zumo-Auth", cfg.ExternalIDHeader)
	assert.Equal(t, "X-Zumo-Auth-Provider", cfg.ProviderHeader)
	assert.Equal(t, []string{"chat", "voip", "sms"}, cfg.TokenScopes)
	assert.Equal(t, 30*time.Minute, cfg.MinTokenValidity)
	assert.Equal(t, IssuerModeHTTPAPI, cfg.IssuerMode)
	require.NoError(t, cfg.Validate())
}

func TestValidate_HTTPIssuerRequiresURL(t *testing.T) {
	cfg := Load()
	cfg.IssuerMode = IssuerModeHTTPAPI
	cfg.IssuerAPIURL = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ISSUER_API_URL")
}

func TestValidate_UnknownIssuerMode(t *testing.T) {
	cfg := Load()
	cfg.IssuerMode = "carrier-pigeon"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ISSUER_MODE")
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Load()
	cfg.DatabaseDriver = "mysql"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}

func TestValidate_MinValidityMustBePositive(t *testing.T) {
	cfg := Load()
	cfg.MinTokenValidity = 0

	assert.Error(t, cfg.Validate())
}
