package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims включает стандартные поля и имя клиента API.
type Claims struct {
	jwt.RegisteredClaims
	Client string `json:"client,omitempty"`
}

// Generate signs an HS256 token for subject. A zero ttl yields a token without expiry.
func (g *Generator) Generate(subject, client string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   g.issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Client: client,
	}
	if g.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(g.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}
