package issuer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/DominikMe/acs-token-exchange/internal/core"
)

// Compile-time interface check.
var _ core.TokenIssuer = (*LocalIssuer)(nil)

// LocalIssuer mints backing identities and signs JWT tokens locally.
// Intended for development and testing; production deployments use the
// HTTP issuer against the real identity service.
type LocalIssuer struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

// NewLocalIssuer creates a local signing issuer.
func NewLocalIssuer(secret, issuerName string, lifetime time.Duration) *LocalIssuer {
	return &LocalIssuer{
		secret:   []byte(secret),
		issuer:   issuerName,
		lifetime: lifetime,
	}
}

// signToken creates a signed JWT for the given backing identity and scopes.
func (p *LocalIssuer) signToken(backingUserID string, scopes []string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   backingUserID,
		"scope": strings.Join(scopes, " "),
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
		"iss":   p.issuer,
		"jti":   uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIssuerRejected, err)
	}
	return signed, nil
}

// Mint creates a new backing identity with an initial signed token.
func (p *LocalIssuer) Mint(ctx context.Context, scopes []string) (*core.MintResult, error) {
	backingUserID := "local:" + uuid.New().String()
	expiresAt := time.Now().Add(p.lifetime).UTC()

	signed, err := p.signToken(backingUserID, scopes, expiresAt)
	if err != nil {
		return nil, err
	}

	return &core.MintResult{
		BackingUserID: backingUserID,
		Token:         signed,
		ExpiresOn:     expiresAt,
	}, nil
}

// Refresh signs a new token for an existing backing identity.
func (p *LocalIssuer) Refresh(
	ctx context.Context,
	backingUserID string,
	scopes []string,
) (*core.RefreshResult, error) {
	if backingUserID == "" {
		return nil, fmt.Errorf("%w: refresh requires a backing user id", ErrIssuerRejected)
	}

	expiresAt := time.Now().Add(p.lifetime).UTC()
	signed, err := p.signToken(backingUserID, scopes, expiresAt)
	if err != nil {
		return nil, err
	}

	return &core.RefreshResult{
		Token:     signed,
		ExpiresOn: expiresAt,
	}, nil
}

// Name returns provider name for logging
func (p *LocalIssuer) Name() string {
	return "local"
}
