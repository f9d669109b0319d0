package session

import (
	"net/http"
	"testing"
	"time"

	"github.com/casaview/dashboard/state"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func mintToken(t *testing.T, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "u1",
		ExpiresAt: expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}

	return signed
}

func Test_tokenFresh(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("a token well inside its validity window is fresh", func(t *testing.T) {
		assert.True(t, tokenFresh(mintToken(t, now.Add(time.Hour)), now))
	})

	t.Run("an expired token is stale", func(t *testing.T) {
		assert.False(t, tokenFresh(mintToken(t, now.Add(-time.Hour)), now))
	})

	t.Run("a token expiring within the margin is stale", func(t *testing.T) {
		assert.False(t, tokenFresh(mintToken(t, now.Add(10*time.Second)), now))
	})

	t.Run("garbage is stale", func(t *testing.T) {
		assert.False(t, tokenFresh("not-a-jwt", now))
	})

	t.Run("a token without expiry is stale", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{Subject: "u1"})
		signed, err := token.SignedString([]byte("test-key"))
		assert.NoError(t, err)

		assert.False(t, tokenFresh(signed, now))
	})
}

func TestManager_TokenFresh(t *testing.T) {
	t.Run("reads the access cookie from the transport", func(t *testing.T) {
		mcs := mockCookieSource{}
		defer mcs.AssertExpectations(t)

		mcs.On("SessionCookie").Return(&http.Cookie{Name: "accessToken", Value: mintToken(t, clock().Add(time.Hour))}, true)

		m := NewManager(&mockAuthService{}, nil, &mcs, state.NullEventPublisher, discardLogger())

		assert.True(t, m.TokenFresh())
	})

	t.Run("no cookie means not fresh", func(t *testing.T) {
		mcs := mockCookieSource{}
		defer mcs.AssertExpectations(t)

		mcs.On("SessionCookie").Return(nil, false)

		m := NewManager(&mockAuthService{}, nil, &mcs, state.NullEventPublisher, discardLogger())

		assert.False(t, m.TokenFresh())
	})
}
