package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamdb-api/models"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewTokenService("super-secret", time.Hour)
	user := models.User{ID: 42, Username: "alice", Role: models.RoleModerator}

	tok, expiresAt, err := svc.Generate(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "moderator", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, _, err := svc.Generate(models.User{ID: 1, Username: "u1"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	tok, _, err := NewTokenService("right-secret", time.Hour).Generate(models.User{ID: 2, Username: "u2"})
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	_, err := NewTokenService("k", time.Hour).Validate("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(time.Hour).Unix()})
	s, err := tok.SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenService("k", time.Hour).Validate(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_EmptySecret(t *testing.T) {
	_, _, err := NewTokenService("", time.Hour).Generate(models.User{ID: 1})
	assert.Error(t, err)
}
