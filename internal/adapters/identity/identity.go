// Package identity resolves the stable submitting identity behind a request:
// the authenticated session subject when a valid bearer token is presented,
// else a persistent per-browser id issued via cookie.
package identity

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "invisioo_browser_id"

type Provider struct {
	secret []byte
}

func New(jwtSecret string) *Provider {
	return &Provider{secret: []byte(jwtSecret)}
}

// Resolve returns the identity for the request, minting and setting a
// browser-id cookie when the request carries neither a session nor one.
func (p *Provider) Resolve(w http.ResponseWriter, r *http.Request) string {
	if sub := p.sessionSubject(r); sub != "" {
		return sub
	}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// sessionSubject extracts email (preferred) or sub from a valid HS256 bearer
// token. Anything invalid falls through to the browser id.
func (p *Provider) sessionSubject(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix || len(p.secret) == 0 {
		return ""
	}
	tok, err := jwt.Parse(auth[len(prefix):], func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !tok.Valid {
		return ""
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if email, _ := claims["email"].(string); email != "" {
		return email
	}
	if sub, _ := claims["sub"].(string); sub != "" {
		return sub
	}
	return ""
}
