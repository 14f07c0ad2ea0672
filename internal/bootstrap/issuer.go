package bootstrap

import (
	"fmt"
	"log"

	"github.com/DominikMe/acs-token-exchange/internal/client"
	"github.com/DominikMe/acs-token-exchange/internal/config"
	"github.com/DominikMe/acs-token-exchange/internal/core"
	"github.com/DominikMe/acs-token-exchange/internal/issuer"
)

// initializeIssuer creates the token issuer for the configured mode.
func initializeIssuer(cfg *config.Config) (core.TokenIssuer, error) {
	switch cfg.IssuerMode {
	case config.IssuerModeHTTPAPI:
		retryClient, err := client.CreateRetryClient(
			cfg.IssuerAPIAuthMode,
			cfg.IssuerAPIAuthSecret,
			cfg.IssuerAPITimeout,
			cfg.IssuerAPIInsecureSkipVerify,
			cfg.IssuerAPIMaxRetries,
			cfg.IssuerAPIRetryDelay,
			cfg.IssuerAPIMaxRetryDelay,
			cfg.IssuerAPIAuthHeader,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create issuer API client: %w", err)
		}
		log.Printf("HTTP API issuer enabled: %s", cfg.IssuerAPIURL)
		return issuer.NewHTTPIssuer(cfg.IssuerAPIURL, retryClient), nil

	default: // local
		log.Printf("Local issuer enabled (token lifetime: %s)", cfg.LocalIssuerLifetime)
		return issuer.NewLocalIssuer(
			cfg.LocalIssuerSecret,
			cfg.LocalIssuerName,
			cfg.LocalIssuerLifetime,
		), nil
	}
}
