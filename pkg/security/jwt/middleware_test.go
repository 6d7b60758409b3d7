package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware(secret, issuer))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		sub, _ := c.Locals("subject").(string)
		return c.SendString(sub)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	app := newGuardedApp(secret, "resumeparser")

	valid, err := NewGenerator(secret, "resumeparser", time.Hour).Generate("ingest", "batch")
	require.NoError(t, err)
	otherIssuer, err := NewGenerator(secret, "someone-else", time.Hour).Generate("ingest", "")
	require.NoError(t, err)
	wrongSecret, err := NewGenerator("other", "resumeparser", time.Hour).Generate("ingest", "")
	require.NoError(t, err)
	past := time.Now().Add(-2 * time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "resumeparser",
		Subject:   "ingest",
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
	}}).SignedString([]byte(secret))
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"bearer", "Bearer " + valid, http.StatusOK},
		{"bare token", valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"issuer mismatch", "Bearer " + otherIssuer, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + wrongSecret, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestGenerateRequiresSubject(t *testing.T) {
	_, err := NewGenerator("s", "i", time.Hour).Generate("", "")
	assert.Error(t, err)
}
