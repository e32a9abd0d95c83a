package server

import (
	"encoding/json"
	"net/http"

	"github.com/hire3x/talent-match/internal/config"
)

// AuthHandler exchanges client API keys for JWT access tokens. API keys are
// never stored in the clear; the server is provisioned with a bcrypt hash and
// verifies presented keys against it.
type AuthHandler struct {
	keyConfig  *config.APIKeyConfig
	apiKeyHash string
	jwtService *JWTService
}

// NewAuthHandler creates an AuthHandler verifying keys against apiKeyHash.
func NewAuthHandler(keyConfig *config.APIKeyConfig, apiKeyHash string, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		keyConfig:  keyConfig,
		apiKeyHash: apiKeyHash,
		jwtService: jwtService,
	}
}

// TokenRequest is the POST /auth/token request body.
type TokenRequest struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
}

// TokenResponse is the POST /auth/token response body.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if req.ClientID == "" {
		writeError(w, &ErrValidation{Field: "client_id", Message: "client_id is required"})
		return
	}
	if req.APIKey == "" {
		writeError(w, &ErrValidation{Field: "api_key", Message: "api_key is required"})
		return
	}

	if h.apiKeyHash == "" || !h.keyConfig.VerifyKey(req.APIKey, h.apiKeyHash) {
		writeError(w, &ErrInvalidAPIKey{})
		return
	}

	token, err := h.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: h.jwtService.config.ExpirationHours * 3600,
	})
}
