// Command mktoken mints a bearer token for the parse API using JWT_SECRET and
// JWT_ISSUER from the environment or .env.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/security/jwt"
)

func main() {
	cfg := config.Load()
	sub := flag.String("sub", "", "token subject (required)")
	client := flag.String("client", "", "client name stored in the token")
	ttl := flag.Duration("ttl", time.Duration(cfg.JWTTTLMinutes)*time.Minute, "token lifetime, 0 for no expiry")
	flag.Parse()

	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(2)
	}
	token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, *ttl).Generate(*sub, *client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mktoken: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
