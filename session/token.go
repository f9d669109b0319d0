package session

import (
	"time"

	"github.com/golang-jwt/jwt"
)

var clock = time.Now

// Tokens about to lapse are treated as stale so the guard re-verifies
// instead of racing the expiry.
const expiryMargin = 30 * time.Second

// TokenFresh reports whether the held access cookie carries a JWT that is
// still comfortably inside its validity window. The signature is not
// checked; this is a local heuristic to skip redundant verify calls, the
// server remains the authority.
func (m *Manager) TokenFresh() bool {
	if m.cookies == nil {
		return false
	}

	cookie, found := m.cookies.SessionCookie()
	if !found {
		return false
	}

	return tokenFresh(cookie.Value, clock())
}

func tokenFresh(token string, now time.Time) bool {
	claims := &jwt.StandardClaims{}

	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}

	if claims.ExpiresAt == 0 {
		return false
	}

	return now.Add(expiryMargin).Unix() < claims.ExpiresAt
}
