package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	csrfCookie = "csrf_nonce"
	csrfField  = "csrf_token"
	csrfTTL    = 12 * time.Hour
)

// CSRF issues and checks double-submit tokens: a random nonce lives in a
// cookie and every form carries an HS256 token whose subject is that nonce.
// A nil *CSRF disables protection.
type CSRF struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCSRF(secret string) *CSRF {
	if secret == "" {
		return nil
	}
	return &CSRF{secret: []byte(secret), ttl: csrfTTL, now: time.Now}
}

// Token returns the form token for this browser, setting the nonce cookie
// on first use.
func (c *CSRF) Token(w http.ResponseWriter, r *http.Request) (string, error) {
	if c == nil {
		return "", nil
	}

	nonce := ""
	if cookie, err := r.Cookie(csrfCookie); err == nil && cookie.Value != "" {
		nonce = cookie.Value
	} else {
		nonce = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     csrfCookie,
			Value:    nonce,
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}

	now := c.now()
	claims := &jwt.RegisteredClaims{
		Subject:   nonce,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Protect rejects requests whose csrf_token (form body or query) does not
// match the nonce cookie.
func (c *CSRF) Protect(next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.valid(r) {
			http.Error(w, "Invalid CSRF token", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *CSRF) valid(r *http.Request) bool {
	cookie, err := r.Cookie(csrfCookie)
	if err != nil || cookie.Value == "" {
		return false
	}

	tokenString := r.FormValue(csrfField)
	if tokenString == "" {
		return false
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(claims.Subject), []byte(cookie.Value)) == 1
}
