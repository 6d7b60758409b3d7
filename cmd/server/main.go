package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	// internal imports
	"github.com/artem13815/resumeparser/api/http"
	"github.com/artem13815/resumeparser/api/http/handlers"
	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/extract"
	"github.com/artem13815/resumeparser/pkg/health"
	"github.com/artem13815/resumeparser/pkg/health/checkers"
	"github.com/artem13815/resumeparser/pkg/lexicon"
	"github.com/artem13815/resumeparser/pkg/nlp"
	pgrepo "github.com/artem13815/resumeparser/pkg/repository/postgres"
	sqliterepo "github.com/artem13815/resumeparser/pkg/repository/sqlite"
	"github.com/artem13815/resumeparser/pkg/resume"
	"github.com/artem13815/resumeparser/pkg/security/jwt"
	"github.com/artem13815/resumeparser/pkg/storage/objectstore"
	"github.com/artem13815/resumeparser/pkg/storage/postgres"
	"github.com/artem13815/resumeparser/pkg/storage/sqlite"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		fatal(log, "invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lx, err := lexicon.Load(cfg.LexiconPath)
	if err != nil {
		fatal(log, "load lexicon", err)
	}
	recognizer, err := nlp.New(cfg.NLPModel, lx)
	if err != nil {
		// the parser works without entities, just less precisely
		log.Warn("language model unavailable, continuing without it", "model", cfg.NLPModel, "err", err)
		recognizer = nlp.Disabled{}
	}
	parser := resume.NewParser(
		resume.WithLexicon(lx),
		resume.WithRecognizer(recognizer),
		resume.WithLogger(log.With("component", "parser")),
	)

	store, err := objectstore.New(objectstore.Config{
		Endpoint:        cfg.R2.EndpointURL(),
		Region:          cfg.R2.Region,
		AccessKeyID:     cfg.R2.AccessKeyID,
		SecretAccessKey: cfg.R2.SecretAccessKey,
		Bucket:          cfg.R2.Bucket,
		MaxBytes:        cfg.MaxFileBytes,
	})
	if err != nil {
		fatal(log, "object store", err)
	}
	probes := []health.Checker{checkers.NewObjectStoreChecker(store)}

	// Optional result store: postgres wins over sqlite when both are set.
	var repo resume.Repository
	switch {
	case cfg.DatabaseURL != "":
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolSize(cfg.DBMaxConns))
		if err != nil {
			fatal(log, "postgres connect", err)
		}
		defer pool.Close()
		pgRepo, err := pgrepo.NewResultRepository(pool)
		if err != nil {
			fatal(log, "init result repo", err)
		}
		repo = pgRepo
		probes = append(probes, checkers.NewPostgresChecker(pool))
	case cfg.SQLitePath != "":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			fatal(log, "sqlite open", err)
		}
		defer db.Close()
		liteRepo, err := sqliterepo.NewResultRepository(db)
		if err != nil {
			fatal(log, "init result repo", err)
		}
		repo = liteRepo
		probes = append(probes, checkers.NewSQLiteChecker(db))
	default:
		log.Info("no result store configured, results are not kept")
	}

	docs := resume.NewDocumentService(store, extract.New(), parser, repo, log.With("component", "documents"))

	var guard fiber.Handler
	if cfg.JWTSecret != "" {
		guard = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	app := fiber.New(fiber.Config{
		AppName:               "resumeparser",
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          60 * time.Second,
	})
	http.Register(app, log, http.Handlers{
		Health:  handlers.NewHealthHandler(health.NewService(probes...)),
		Parse:   handlers.NewParseHandler(docs),
		Results: handlers.NewResultsHandler(docs),
		Guard:   guard,
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	// Start server
	log.Info("HTTP server listening", "port", cfg.Port, "nlp", cfg.NLPModel, "bucket", store.Bucket(), "auth", guard != nil)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "server stopped", err)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	os.Exit(1)
}
