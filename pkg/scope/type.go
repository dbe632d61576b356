package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload represents the JWT token claims.
type Payload struct {
	jwt.RegisteredClaims
	UserID         string `json:"sub"`
	OrganizationID string `json:"org"`
	Role           string `json:"role"`
}

type implManager struct {
	secretKey string
	ttl       time.Duration
}

type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
