package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	sessionID := uuid.New()
	orderID := uuid.New()

	raw, err := issuer.Issue(sessionID, orderID)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	token, err := issuer.Verify(raw)
	require.NoError(t, err)

	assert.Equal(t, sessionID, token.SessionID)
	assert.Equal(t, orderID, token.OrderID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	raw, err := issuer.Issue(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	raw, err := NewTokenIssuer("secret-a", time.Minute).Issue(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Minute).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)

	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
