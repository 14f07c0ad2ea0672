package core

import "time"

// Token scopes understood by the communication identity service.
const (
	ScopeChat = "chat"
	ScopeVoIP = "voip"
)

// DefaultScopes are the scopes requested for every minted or refreshed token.
func DefaultScopes() []string {
	return []string{ScopeChat, ScopeVoIP}
}

// TokenResult is the outcome of one acquire-or-refresh exchange.
type TokenResult struct {
	// BackingUserID is the opaque identity assigned by the issuer,
	// stable across refreshes for a given external user.
	BackingUserID string

	// Token is the current access token, opaque to this service.
	Token string

	// ExpiresOn is the absolute token expiry in UTC.
	ExpiresOn time.Time

	// IsNewUser reports whether a backing identity was minted for this call.
	IsNewUser bool

	// FromCache reports whether the token was served from the durable store
	// without any issuer call.
	FromCache bool
}

// MintResult is the issuer's response to creating a new backing identity
// together with its first token.
type MintResult struct {
	BackingUserID string
	Token         string
	ExpiresOn     time.Time
}

// RefreshResult is the issuer's response to issuing a new token for an
// existing backing identity.
type RefreshResult struct {
	Token     string
	ExpiresOn time.Time
}
