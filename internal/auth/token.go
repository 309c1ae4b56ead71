// Package auth issues and verifies the short-lived purchase tokens that
// authorize one-click upsell actions after a successful checkout.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid purchase token")

// PurchaseToken is the verified content of a one-click authorization. It
// binds the upsell action to the session and original order that earned it.
type PurchaseToken struct {
	SessionID uuid.UUID
	OrderID   uuid.UUID
}

type purchaseClaims struct {
	SessionID string `json:"sid"`
	OrderID   string `json:"oid"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 purchase tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token valid for the configured TTL.
func (i *TokenIssuer) Issue(sessionID, orderID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := purchaseClaims{
		SessionID: sessionID.String(),
		OrderID:   orderID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing purchase token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token, rejecting anything expired, tampered
// with, or signed with a different method.
func (i *TokenIssuer) Verify(raw string) (*PurchaseToken, error) {
	var claims purchaseClaims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	orderID, err := uuid.Parse(claims.OrderID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &PurchaseToken{SessionID: sessionID, OrderID: orderID}, nil
}
