package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

const (
	msgMisconfigured = "Server misconfigured"
	msgInvalidToken  = "Invalid or expired token"
)

// Claims is the payload of an access token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// Tokens issues and verifies HS256 access tokens.
type Tokens struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokens(secret string, expiry time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

func (t *Tokens) Issue(user domain.User) (string, error) {
	if len(t.secret) == 0 {
		return "", apperrors.NewInternalError(msgMisconfigured, fmt.Errorf("JWT secret is not set"))
	}

	now := t.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", apperrors.NewInternalError("Token signing failed", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every token problem is an
// UnauthorizedError; a missing secret is an InternalError.
func (t *Tokens) Verify(raw string) (*Claims, error) {
	if len(t.secret) == 0 {
		return nil, apperrors.NewInternalError(msgMisconfigured, fmt.Errorf("JWT secret is not set"))
	}

	var claims Claims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(tk *jwt.Token) (any, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", tk.Method.Alg())
		}
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !tkn.Valid {
		return nil, apperrors.NewUnauthorizedError(msgInvalidToken)
	}

	return &claims, nil
}
