package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DominikMe/acs-token-exchange/internal/services"
	"github.com/DominikMe/acs-token-exchange/internal/store"
)

// ExchangeHandler serves the token exchange endpoint. Transport-level trust is
// delegated to the upstream gateway, which injects the identity headers; the
// handler itself performs no authentication.
type ExchangeHandler struct {
	exchangeService *services.ExchangeService
	userIDHeader    string
	providerHeader  string
}

// NewExchangeHandler creates the exchange handler with the configured header
// names for the gateway-asserted identity.
func NewExchangeHandler(
	svc *services.ExchangeService,
	userIDHeader, providerHeader string,
) *ExchangeHandler {
	return &ExchangeHandler{
		exchangeService: svc,
		userIDHeader:    userIDHeader,
		providerHeader:  providerHeader,
	}
}

// ExchangeResponse is the JSON body returned on a successful exchange.
type ExchangeResponse struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresOn string `json:"expiresOn"`
	IsNewUser bool   `json:"isNewUser"`
	FromCache bool   `json:"fromCache"`
}

// Exchange godoc
//
//	@Summary		Exchange gateway identity for a communication token
//	@Description	Returns a chat/voip token for the externally-authenticated user, minting or refreshing as needed
//	@Tags			Token
//	@Produce		json
//	@Param			X-External-User-Id	header		string	true	"External user id asserted by the gateway"
//	@Param			X-Identity-Provider	header		string	true	"Identity provider label"
//	@Success		200					{object}	ExchangeResponse
//	@Failure		401					{string}	string	"Missing identity headers"
//	@Failure		500					{string}	string	"Store invariant violation"
//	@Failure		502					{string}	string	"Dependency failure"
//	@Router			/token/exchange [post]
func (h *ExchangeHandler) Exchange(c *gin.Context) {
	externalUserID := c.GetHeader(h.userIDHeader)
	identityProvider := c.GetHeader(h.providerHeader)

	if externalUserID == "" || identityProvider == "" {
		c.String(http.StatusUnauthorized, "missing identity headers")
		return
	}

	result, err := h.exchangeService.Resolve(c.Request.Context(), externalUserID, identityProvider)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthenticated):
			c.String(http.StatusUnauthorized, "missing identity headers")
		case errors.Is(err, store.ErrMultipleMappings):
			c.String(http.StatusInternalServerError, "found more than one mapping for user")
		default:
			c.String(http.StatusBadGateway, "dependency call failed")
		}
		return
	}

	c.JSON(http.StatusOK, ExchangeResponse{
		UserID:    result.BackingUserID,
		Token:     result.Token,
		ExpiresOn: result.ExpiresOn.UTC().Format(time.RFC3339),
		IsNewUser: result.IsNewUser,
		FromCache: result.FromCache,
	})
}
