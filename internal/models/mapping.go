package models

import (
	"time"
)

// UserMapping is one row per external user: the durable mapping from the
// identity asserted by the upstream gateway to the backing identity and
// current token issued by the communication identity service.
type UserMapping struct {
	// ExternalUserID is the trusted external identity and the store key.
	ExternalUserID string `gorm:"primaryKey"`

	// IdentityProvider labels the upstream authentication provider.
	// Informational only; never used for lookups.
	IdentityProvider string

	// BackingUserID is assigned by the token issuer on mint and is
	// immutable for the lifetime of the external user.
	BackingUserID string `gorm:"not null"`

	// Token and TokenExpiry change together on every refresh. A row is
	// never persisted with one set and the other absent.
	Token       string
	TokenExpiry time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBackingUser reports whether a backing identity has been minted.
func (m *UserMapping) HasBackingUser() bool {
	return m.BackingUserID != ""
}

// TokenValidUntil reports whether the cached token is present and stays
// valid at least until min.
func (m *UserMapping) TokenValidUntil(min time.Time) bool {
	return m.Token != "" && !m.TokenExpiry.Before(min)
}
