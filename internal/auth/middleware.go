package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "storefront/internal/errors"
	"storefront/internal/httpjson"
)

type contextKey struct{}

// Verifier turns a bearer token into claims.
type Verifier interface {
	Verify(raw string) (*Claims, error)
}

type Middleware struct {
	verifier Verifier
	logger   *zap.Logger
}

func NewMiddleware(verifier Verifier, logger *zap.Logger) *Middleware {
	return &Middleware{verifier: verifier, logger: logger}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims in the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			httpjson.WriteError(w, apperrors.NewUnauthorizedError("Missing authorization token"), m.logger)
			return
		}

		claims, err := m.verifier.Verify(raw)
		if err != nil {
			if _, ok := apperrors.IsUnauthorizedError(err); ok {
				m.logger.Debug("token rejected", zap.String("path", r.URL.Path))
			}
			httpjson.WriteError(w, err, m.logger)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin must run after RequireAuth.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin() {
			httpjson.WriteError(w, apperrors.NewForbiddenError("Forbidden: admin only"), m.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
