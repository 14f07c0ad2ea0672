package issuer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/core"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-local-issuer"

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestLocalIssuer_Mint(t *testing.T) {
	p := NewLocalIssuer(testSecret, "acs-token-exchange", 24*time.Hour)

	result, err := p.Mint(context.Background(), core.DefaultScopes())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.BackingUserID, "local:"))
	assert.NotEmpty(t, result.Token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.ExpiresOn, 5*time.Second)

	claims := parseClaims(t, result.Token)
	assert.Equal(t, result.BackingUserID, claims["sub"])
	assert.Equal(t, "chat voip", claims["scope"])
	assert.Equal(t, "acs-token-exchange", claims["iss"])
}

func TestLocalIssuer_Refresh_PreservesIdentity(t *testing.T) {
	p := NewLocalIssuer(testSecret, "acs-token-exchange", time.Hour)

	minted, err := p.Mint(context.Background(), core.DefaultScopes())
	require.NoError(t, err)

	refreshed, err := p.Refresh(context.Background(), minted.BackingUserID, core.DefaultScopes())
	require.NoError(t, err)
	assert.NotEqual(t, minted.Token, refreshed.Token)

	claims := parseClaims(t, refreshed.Token)
	assert.Equal(t, minted.BackingUserID, claims["sub"])
}

func TestLocalIssuer_Refresh_RequiresBackingUser(t *testing.T) {
	p := NewLocalIssuer(testSecret, "acs-token-exchange", time.Hour)

	result, err := p.Refresh(context.Background(), "", core.DefaultScopes())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrIssuerRejected)
}

func TestLocalIssuer_MintedIdentitiesAreUnique(t *testing.T) {
	p := NewLocalIssuer(testSecret, "acs-token-exchange", time.Hour)

	first, err := p.Mint(context.Background(), core.DefaultScopes())
	require.NoError(t, err)
	second, err := p.Mint(context.Background(), core.DefaultScopes())
	require.NoError(t, err)

	assert.NotEqual(t, first.BackingUserID, second.BackingUserID)
}
