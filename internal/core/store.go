package core

import (
	"context"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/models"
)

// IdentityStore persists the mapping between external user ids and issued
// backing identities/tokens. Implementations signal a missing row with
// store.ErrMappingNotFound and a duplicate-key invariant violation with
// store.ErrMultipleMappings; neither is wrapped in transport errors.
type IdentityStore interface {
	// GetMapping looks up the mapping keyed by external user id.
	GetMapping(ctx context.Context, externalUserID string) (*models.UserMapping, error)

	// UpsertMapping writes the mapping, creating or replacing the row for
	// its external user id. Last writer wins.
	UpsertMapping(ctx context.Context, m *models.UserMapping) error
}

// MappingCounter exposes the aggregate queries used by the gauge updater.
type MappingCounter interface {
	CountMappings(ctx context.Context) (int64, error)
	CountExpiringMappings(ctx context.Context, within time.Duration) (int64, error)
}
