package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour, false)

	token, err := issuer.GenerateJWTToken("alice", "manager")
	require.NoError(t, err)

	claims, err := issuer.ParseJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "manager", claims.Role)
}

func TestTokenIssuer_RejectsOtherSecret(t *testing.T) {
	token, err := NewTokenIssuer("one", time.Hour, false).GenerateJWTToken("alice", "staff")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Hour, false).ParseJWTToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute, false)
	token, err := issuer.GenerateJWTToken("alice", "staff")
	require.NoError(t, err)

	_, err = issuer.ParseJWTToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_SetJWTCookie(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour, false)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		issuer.SetJWTCookie(c, "abc")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookieName, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}
