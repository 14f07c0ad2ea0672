package core

import "context"

// TokenIssuer abstracts the communication identity service. Mint and Refresh
// are deliberately separate operations: Refresh requires a backing user id
// that must already have been durably persisted, so mint always precedes and
// is decoupled from refresh.
type TokenIssuer interface {
	// Mint creates a new backing identity and its first token.
	Mint(ctx context.Context, scopes []string) (*MintResult, error)

	// Refresh issues a new token for an existing backing identity.
	Refresh(ctx context.Context, backingUserID string, scopes []string) (*RefreshResult, error)

	// Name returns the provider name for logging and metrics.
	Name() string
}
