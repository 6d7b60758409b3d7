package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets the subject into c.Locals("subject").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return unauthorized(c, "empty token")
		}
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			return unauthorized(c, "invalid or expired token")
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return unauthorized(c, "invalid token claims")
		}
		if expectedIssuer != "" && claims.RegisteredClaims.Issuer != expectedIssuer {
			return unauthorized(c, "invalid token issuer")
		}
		c.Locals("subject", claims.RegisteredClaims.Subject)
		if claims.Client != "" {
			c.Locals("client", claims.Client)
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": msg})
}
