// Package auth implements the admin session gate: signed, time-limited
// tokens carried in a cookie. The gate is stateless; everything needed to
// validate is embedded in the token. No revocation list — a leaked token
// stays valid until it expires.
package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gallicus_site/internal/domain"
)

const CookieName = "admin_session"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken issues a fresh admin session token with a fixed validity
// window from now.
func SignToken(secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", domain.ErrMisconfigured
	}
	c := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// VerifyToken is the single acceptance check for session tokens; every
// entry point (cookie or bearer header) funnels through it. All failure
// modes collapse to ErrUnauthorized so callers cannot distinguish a
// malformed token from an expired one.
func VerifyToken(secret, token string) error {
	if secret == "" {
		return domain.ErrMisconfigured
	}
	if token == "" {
		return domain.ErrUnauthorized
	}
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return domain.ErrUnauthorized
	}
	return nil
}

// TokenFromRequest extracts the raw token from the session cookie, falling
// back to an Authorization bearer header. Extraction only; verification is
// always VerifyToken.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// SessionCookie wraps a signed token in the HttpOnly cookie the admin UI
// rides on.
func SessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedSessionCookie expires the session cookie. Idempotent.
func ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
