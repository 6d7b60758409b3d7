package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel slog.Level

	R2 R2Config

	DatabaseURL string
	DBMaxConns  int
	SQLitePath  string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	LexiconPath  string
	NLPModel     string
	MaxFileBytes int64
}

// R2Config describes the Cloudflare R2 bucket holding uploaded documents.
type R2Config struct {
	Endpoint        string
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
}

const (
	NLPModelLexical = "lexical"
	NLPModelProse   = "prose"
	NLPModelNone    = "none"
)

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),
		R2: R2Config{
			Endpoint:        os.Getenv("R2_ENDPOINT_URL"),
			AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			Bucket:          os.Getenv("R2_BUCKET_NAME"),
			Region:          getEnv("R2_REGION", "auto"),
		},
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 4),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnv("JWT_ISSUER", "resumeparser"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60*24*30),
		LexiconPath:   os.Getenv("LEXICON_PATH"),
		NLPModel:      strings.ToLower(getEnv("NLP_MODEL", NLPModelLexical)),
		MaxFileBytes:  int64(getEnvInt("MAX_FILE_BYTES", 15<<20)),
	}
	return cfg
}

// EndpointURL returns the explicit endpoint or the account-derived R2 one.
func (c R2Config) EndpointURL() string {
	if c.Endpoint != "" {
		return strings.TrimRight(c.Endpoint, "/")
	}
	if c.AccountID != "" {
		return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID)
	}
	return ""
}

// Validate reports missing settings the server cannot start without.
func (c Config) Validate() error {
	var missing []string
	if c.R2.EndpointURL() == "" {
		missing = append(missing, "R2_ENDPOINT_URL or CLOUDFLARE_ACCOUNT_ID")
	}
	if c.R2.Bucket == "" {
		missing = append(missing, "R2_BUCKET_NAME")
	}
	if c.R2.AccessKeyID == "" || c.R2.SecretAccessKey == "" {
		missing = append(missing, "R2_ACCESS_KEY_ID/R2_SECRET_ACCESS_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	switch c.NLPModel {
	case NLPModelLexical, NLPModelProse, NLPModelNone:
	default:
		return fmt.Errorf("unknown NLP_MODEL %q", c.NLPModel)
	}
	return nil
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
