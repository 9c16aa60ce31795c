package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopmonitor/utils"
)

const (
	UsernameKey = "username"
	RoleKey     = "role"
)

// JWTMiddleware accepts a token from the Authorization header or the jwt
// cookie and stores the username and role in Locals. Requests whose path
// is listed in skip pass through untouched; a trailing slash is ignored,
// as the router ignores it.
func JWTMiddleware(tokens *utils.TokenIssuer, skip ...string) fiber.Handler {
	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipped[trimSlash(p)] = true
	}

	return func(c *fiber.Ctx) error {
		if skipped[trimSlash(c.Path())] {
			return c.Next()
		}

		token := ""
		if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		} else {
			token = c.Cookies(utils.TokenCookieName)
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		claims, err := tokens.ParseJWTToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(UsernameKey, claims.Subject)
		c.Locals(RoleKey, claims.Role)
		return c.Next()
	}
}

func trimSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}
