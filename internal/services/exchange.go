package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/core"
	"github.com/DominikMe/acs-token-exchange/internal/models"
	"github.com/DominikMe/acs-token-exchange/internal/store"
)

var (
	// ErrUnauthenticated indicates the external user identity is missing
	ErrUnauthenticated = errors.New("missing external user identity")

	// ErrDependency indicates a store or issuer call failed; the whole
	// exchange is aborted and nothing is persisted
	ErrDependency = errors.New("dependency call failed")
)

// ExchangeService resolves an external user identity to a valid communication
// token, minting a backing identity on first contact and refreshing tokens
// that are absent or inside the minimum-validity window. Clients are injected
// once at construction; the service itself holds no per-request state, so
// concurrent exchanges share only the durable store.
type ExchangeService struct {
	store       core.IdentityStore
	issuer      core.TokenIssuer
	scopes      []string
	minValidity time.Duration
	metrics     core.Recorder
}

// NewExchangeService creates the acquire-or-refresh orchestrator.
func NewExchangeService(
	s core.IdentityStore,
	issuer core.TokenIssuer,
	scopes []string,
	minValidity time.Duration,
	metrics core.Recorder,
) *ExchangeService {
	return &ExchangeService{
		store:       s,
		issuer:      issuer,
		scopes:      scopes,
		minValidity: minValidity,
		metrics:     metrics,
	}
}

// Resolve returns a token valid for at least the minimum-validity window.
//
// A missing mapping (or one without a backing identity) triggers a mint; a
// token expiring inside the window triggers a refresh. The freshness check
// also runs right after minting: the issuer's default token lifetime is a
// black box, so a freshly minted token could already sit inside the window.
// The mapping is written back iff a mint or refresh mutated it.
//
// Concurrent first requests for the same external user can both mint; the
// store keeps whichever upsert lands last (last writer wins), orphaning the
// other backing identity at the issuer. See DESIGN.md.
func (s *ExchangeService) Resolve(
	ctx context.Context,
	externalUserID, identityProvider string,
) (*core.TokenResult, error) {
	start := time.Now()
	result, err := s.resolve(ctx, externalUserID, identityProvider)
	if err != nil {
		s.metrics.RecordExchange(core.ExchangeOutcomeError, time.Since(start))
		return nil, err
	}
	s.metrics.RecordExchange(outcomeOf(result), time.Since(start))
	return result, nil
}

func (s *ExchangeService) resolve(
	ctx context.Context,
	externalUserID, identityProvider string,
) (*core.TokenResult, error) {
	if externalUserID == "" {
		return nil, ErrUnauthenticated
	}

	mapping, err := s.store.GetMapping(ctx, externalUserID)
	switch {
	case err == nil:
	case store.IsNotFound(err):
		// Absence signals a new user, not a failure.
		mapping = &models.UserMapping{
			ExternalUserID:   externalUserID,
			IdentityProvider: identityProvider,
		}
	case errors.Is(err, store.ErrMultipleMappings):
		// Invariant violation; surfaced to the handler as a diagnostic,
		// never triggers any mutation.
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %v", ErrDependency, err)
	}

	var minted, refreshed bool

	if !mapping.HasBackingUser() {
		mintStart := time.Now()
		mintResult, err := s.issuer.Mint(ctx, s.scopes)
		s.metrics.RecordIssuerCall("mint", s.issuer.Name(), err == nil, time.Since(mintStart))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDependency, err)
		}
		mapping.BackingUserID = mintResult.BackingUserID
		mapping.Token = mintResult.Token
		mapping.TokenExpiry = mintResult.ExpiresOn
		minted = true
	}

	minExpiry := time.Now().Add(s.minValidity)
	if !mapping.TokenValidUntil(minExpiry) {
		refreshStart := time.Now()
		refreshResult, err := s.issuer.Refresh(ctx, mapping.BackingUserID, s.scopes)
		s.metrics.RecordIssuerCall("refresh", s.issuer.Name(), err == nil, time.Since(refreshStart))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDependency, err)
		}
		mapping.Token = refreshResult.Token
		mapping.TokenExpiry = refreshResult.ExpiresOn
		refreshed = true
	}

	// Persist-on-change: an unchanged cached mapping performs zero writes.
	if minted || refreshed {
		if err := s.store.UpsertMapping(ctx, mapping); err != nil {
			s.metrics.RecordMappingWrite(false)
			return nil, fmt.Errorf("%w: %v", ErrDependency, err)
		}
		s.metrics.RecordMappingWrite(true)
	}

	return &core.TokenResult{
		BackingUserID: mapping.BackingUserID,
		Token:         mapping.Token,
		ExpiresOn:     mapping.TokenExpiry.UTC(),
		IsNewUser:     minted,
		FromCache:     !minted && !refreshed,
	}, nil
}

func outcomeOf(r *core.TokenResult) string {
	switch {
	case r.IsNewUser:
		return core.ExchangeOutcomeMinted
	case r.FromCache:
		return core.ExchangeOutcomeCacheHit
	default:
		return core.ExchangeOutcomeRefreshed
	}
}
