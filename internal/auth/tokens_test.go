package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

var admin = domain.User{ID: 1, Email: "admin@example.com", Role: domain.RoleAdmin}

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens("s3cret", time.Hour)

	raw, err := tokens.Issue(admin)
	require.NoError(t, err)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin())
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokens_VerifyRejects(t *testing.T) {
	tokens := NewTokens("s3cret", time.Hour)
	valid, err := tokens.Issue(admin)
	require.NoError(t, err)

	expired := NewTokens("s3cret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredRaw, err := expired.Issue(admin)
	require.NoError(t, err)

	otherSecret, err := NewTokens("different", time.Hour).Issue(admin)
	require.NoError(t, err)

	staffRaw, err := tokens.Issue(domain.User{ID: 2, Email: "staff@example.com", Role: domain.RoleStaff})
	require.NoError(t, err)
	// Admin header and signature around a staff payload.
	v, s := strings.Split(valid, "."), strings.Split(staffRaw, ".")
	tampered := v[0] + "." + s[1] + "." + v[2]

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
		UserID: 1,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 1,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expiredRaw},
		{name: "wrong secret", token: otherSecret},
		{name: "wrong algorithm", token: hs384},
		{name: "alg none", token: unsigned},
		{name: "garbage", token: "not.a.token"},
		{name: "tampered", token: tampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokens.Verify(tt.token)
			assert.Nil(t, claims)

			ue, ok := apperrors.IsUnauthorizedError(err)
			require.True(t, ok, "expected unauthorized, got %v", err)
			assert.Equal(t, "Invalid or expired token", ue.Message)
		})
	}
}

func TestTokens_MissingSecret(t *testing.T) {
	tokens := NewTokens("", time.Hour)

	_, err := tokens.Issue(admin)
	ie, ok := apperrors.IsInternalError(err)
	require.True(t, ok)
	assert.Equal(t, "Server misconfigured", ie.Message)

	_, err = tokens.Verify("anything")
	_, ok = apperrors.IsInternalError(err)
	assert.True(t, ok)
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	ok, err := CheckPassword(hash, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "battery staple")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPassword("not-a-bcrypt-hash", "x")
	assert.Error(t, err)
}
