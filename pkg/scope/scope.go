package scope

import (
	"fmt"
	"time"

	"alert-srv/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Verify verifies the JWT token and returns the payload if valid.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	var payload Payload
	_, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if payload.OrganizationID == "" {
		return Payload{}, fmt.Errorf("%w: organization claim missing", ErrInvalidToken)
	}

	return payload, nil
}

// CreateToken signs the payload with HS256. Expiry defaults to TokenExpirationDuration.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.NotBefore = jwt.NewNumericDate(now)
	if payload.ExpiresAt == nil {
		payload.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}
	payload.ID = fmt.Sprintf("%d", now.UnixNano())

	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(m.secretKey))
}

// NewScope builds the request scope from verified claims.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:         payload.UserID,
		OrganizationID: payload.OrganizationID,
		Role:           payload.Role,
		JTI:            payload.ID,
	}
}
