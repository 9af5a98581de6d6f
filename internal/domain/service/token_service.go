package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed identity payload carried by every protected request.
// Subject is the user ID as a decimal string; expiry lives in RegisteredClaims.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the
// self-contained bearer tokens. Tokens are stateless: expiry is the only
// revocation mechanism, there is no server-side denylist.
type TokenService interface {
	// Issue creates a signed token for a user, expiring TTL() from now.
	Issue(userID uint, username string) (string, error)

	// Validate verifies the signature and expiry of a token string and
	// returns its claims. Tampered, malformed or expired tokens fail;
	// no issuer or audience checks are performed.
	Validate(tokenString string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
