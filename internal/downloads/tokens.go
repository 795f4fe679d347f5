// Package downloads implements signed download links for docuvault.
// A short-lived HS256 token bound to a single document acts as the
// credential for an unauthenticated download.
package downloads

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LinkTokens signs and verifies single-document download tokens.
type LinkTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewLinkTokens creates a token signer with the given secret and lifetime.
func NewLinkTokens(secret string, ttl time.Duration) *LinkTokens {
	return &LinkTokens{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

type linkClaims struct {
	DocumentID string `json:"document_id"`
	jwt.RegisteredClaims
}

// Sign issues a download token bound to the given document.
func (t *LinkTokens) Sign(documentID uuid.UUID) (string, error) {
	now := time.Now()
	claims := linkClaims{
		DocumentID: documentID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign download token: %w", err)
	}
	return signed, nil
}

// Verify validates a download token's signature and expiry and confirms it
// was issued for the given document. Tokens for a different document fail
// even when otherwise valid.
func (t *LinkTokens) Verify(token string, documentID uuid.UUID) error {
	var claims linkClaims

	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}

	if claims.DocumentID != documentID.String() {
		return ErrInvalidToken
	}

	return nil
}
