package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "R2_REGION", "NLP_MODEL", "MAX_FILE_BYTES", "JWT_ISSUER"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "auto", cfg.R2.Region)
	assert.Equal(t, NLPModelLexical, cfg.NLPModel)
	assert.Equal(t, int64(15<<20), cfg.MaxFileBytes)
	assert.Equal(t, "resumeparser", cfg.JWTIssuer)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NLP_MODEL", "None")
	t.Setenv("MAX_FILE_BYTES", "1024")
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "abc123")
	t.Setenv("R2_ENDPOINT_URL", "")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, NLPModelNone, cfg.NLPModel)
	assert.Equal(t, int64(1024), cfg.MaxFileBytes)
	assert.Equal(t, "https://abc123.r2.cloudflarestorage.com", cfg.R2.EndpointURL())
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "https://r2.local", R2Config{Endpoint: "https://r2.local/", AccountID: "x"}.EndpointURL())
	assert.Equal(t, "", R2Config{}.EndpointURL())
}

func TestValidate(t *testing.T) {
	ok := Config{
		R2:       R2Config{AccountID: "acc", Bucket: "resumes", AccessKeyID: "id", SecretAccessKey: "secret"},
		NLPModel: NLPModelLexical,
	}
	require.NoError(t, ok.Validate())

	noBucket := ok
	noBucket.R2.Bucket = ""
	assert.ErrorContains(t, noBucket.Validate(), "R2_BUCKET_NAME")

	proseModel := ok
	proseModel.NLPModel = NLPModelProse
	require.NoError(t, proseModel.Validate())

	badModel := ok
	badModel.NLPModel = "spacy"
	assert.ErrorContains(t, badModel.Validate(), "spacy")
}
