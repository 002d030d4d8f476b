package auth

import (
	"testing"
	"time"

	"bicycle-maintenance-backend/internal/database/models"
	apperrors "bicycle-maintenance-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Rider",
		Email:     "rider@test.com",
	}
}

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	user := testUser()

	signed, err := tokens.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := &TokenService{secret: []byte("test-secret"), expiry: -time.Minute}

	signed, err := tokens.Issue(testUser())
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestExpiryDefaultsWhenNonPositive(t *testing.T) {
	tokens := NewTokenService("test-secret", 0)
	assert.Equal(t, time.Hour, tokens.expiry)
}
