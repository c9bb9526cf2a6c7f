package dto

import "github.com/golang-jwt/jwt/v5"

// Token type markers embedded in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims represents the custom JWT claims carried by both token types.
// Access tokens embed the username and email; refresh tokens only the
// subject.
type TokenClaims struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenRequest represents the credentials posted to /token/.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest represents the body posted to /token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// AuthUser is the user block returned after a successful token obtain.
type AuthUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Refresh  string `json:"refresh"`
	Access   string `json:"access"`
}

// TokenPairResponse wraps the user block for the /token/ response body.
type TokenPairResponse struct {
	User AuthUser `json:"user"`
}
