package issuer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	retry "github.com/appleboy/go-httpretry"

	"github.com/DominikMe/acs-token-exchange/internal/core"
)

// Compile-time interface check.
var _ core.TokenIssuer = (*HTTPIssuer)(nil)

// HTTPIssuer mints and refreshes tokens against the communication identity
// service's HTTP API.
type HTTPIssuer struct {
	baseURL     string
	retryClient *retry.Client
}

// NewHTTPIssuer creates an issuer client for the given API base URL.
func NewHTTPIssuer(baseURL string, retryClient *retry.Client) *HTTPIssuer {
	return &HTTPIssuer{
		baseURL:     baseURL,
		retryClient: retryClient,
	}
}

type mintRequest struct {
	Scopes []string `json:"scopes"`
}

type mintResponse struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresOn time.Time `json:"expiresOn"`
}

type refreshRequest struct {
	Scopes []string `json:"scopes"`
}

type refreshResponse struct {
	Token     string    `json:"token"`
	ExpiresOn time.Time `json:"expiresOn"`
}

// doPostRequest performs a POST with a JSON body and returns the response body.
func (p *HTTPIssuer) doPostRequest(
	ctx context.Context,
	endpoint string,
	reqBody any,
) ([]byte, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := p.retryClient.Post(
		ctx,
		p.baseURL+endpoint,
		retry.WithBody("application/json", bytes.NewBuffer(jsonData)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIssuerConnection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response", ErrIssuerInvalidResp)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return nil, fmt.Errorf("%w: HTTP %d - %s", ErrIssuerRejected, resp.StatusCode, bodyPreview)
	}

	return body, nil
}

// Mint creates a new backing identity with an initial token.
func (p *HTTPIssuer) Mint(ctx context.Context, scopes []string) (*core.MintResult, error) {
	body, err := p.doPostRequest(ctx, "/identities", mintRequest{Scopes: scopes})
	if err != nil {
		return nil, err
	}

	var apiResp mintResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIssuerInvalidResp, err)
	}
	if apiResp.UserID == "" || apiResp.Token == "" {
		return nil, fmt.Errorf("%w: mint response missing userId or token", ErrIssuerInvalidResp)
	}

	return &core.MintResult{
		BackingUserID: apiResp.UserID,
		Token:         apiResp.Token,
		ExpiresOn:     apiResp.ExpiresOn.UTC(),
	}, nil
}

// Refresh issues a new token for an existing backing identity.
func (p *HTTPIssuer) Refresh(
	ctx context.Context,
	backingUserID string,
	scopes []string,
) (*core.RefreshResult, error) {
	endpoint := "/identities/" + url.PathEscape(backingUserID) + "/token"
	body, err := p.doPostRequest(ctx, endpoint, refreshRequest{Scopes: scopes})
	if err != nil {
		return nil, err
	}

	var apiResp refreshResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIssuerInvalidResp, err)
	}
	if apiResp.Token == "" {
		return nil, fmt.Errorf("%w: refresh response missing token", ErrIssuerInvalidResp)
	}

	return &core.RefreshResult{
		Token:     apiResp.Token,
		ExpiresOn: apiResp.ExpiresOn.UTC(),
	}, nil
}

// Name returns provider name for logging
func (p *HTTPIssuer) Name() string {
	return "http_api"
}
