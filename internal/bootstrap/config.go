package bootstrap

import (
	"errors"
	"log"

	"github.com/DominikMe/acs-token-exchange/internal/config"
)

// validateAllConfiguration validates all configuration settings
func validateAllConfiguration(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := validateIssuerConfig(cfg); err != nil {
		log.Fatalf("Invalid issuer configuration: %v", err)
	}
}

// validateIssuerConfig checks that required config is present for the selected issuer mode
func validateIssuerConfig(cfg *config.Config) error {
	switch cfg.IssuerMode {
	case config.IssuerModeHTTPAPI:
		if cfg.IssuerAPIURL == "" {
			return errors.New("ISSUER_API_URL is required when ISSUER_MODE=http_api")
		}
	case config.IssuerModeLocal:
		if cfg.LocalIssuerSecret == "" {
			return errors.New("LOCAL_ISSUER_SECRET must not be empty when ISSUER_MODE=local")
		}
	}
	return nil
}
