package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("test-secret", 0).WithClock(fixedClock(now))
	userID := uuid.New()

	token, expiresAt, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.Equal(t, now.Add(7*24*time.Hour), expiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestTokenService_Expired(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenService("test-secret", DefaultTokenTTL).WithClock(fixedClock(issued))

	token, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	withinWindow := issuer.WithClock(fixedClock(issued.Add(6 * 24 * time.Hour)))
	_, err = withinWindow.Verify(token)
	require.NoError(t, err)

	afterExpiry := issuer.WithClock(fixedClock(issued.Add(DefaultTokenTTL + time.Minute)))
	_, err = afterExpiry.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, _, err := NewTokenService("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: uuid.New().String(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "abc", strings.Repeat("x.", 3)} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestTokenService_RejectsNonUUIDSubject(t *testing.T) {
	secret := []byte("secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "42",
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
