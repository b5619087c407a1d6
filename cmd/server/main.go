package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"advocate-backend/advisor"
	"advocate-backend/config"
	"advocate-backend/handlers"
	"advocate-backend/logging"
	"advocate-backend/metrics"
	"advocate-backend/repository"
	"advocate-backend/service"
	"advocate-backend/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reference tables are validated before anything else is started
	adv, err := initAdvisor(cfg.ReferenceFile)
	if err != nil {
		logger.Fatal("Invalid reference data", zap.String("file", cfg.ReferenceFile), zap.Error(err))
	}
	logger.Info("Reference data loaded",
		zap.Int("issues", adv.Store().Len()),
		zap.Int("keywords", adv.Keywords().Len()),
	)

	db, err := initPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Postgres connection established")

	rdb, err := initRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer rdb.Close()
	logger.Info("Redis connection established")

	documentStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	logger.Info("Storage initialized")

	m := metrics.New()

	// Initialize repositories
	conversationRepo := repository.NewConversationRepository(rdb, cfg.ConversationTTL)
	sessionRepo := repository.NewSessionRepository(rdb)
	userRepo := repository.NewUserRepository(db)
	crimeRepo := repository.NewCrimeRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	adviceService := service.NewAdviceService(
		service.AdviceWithAdvisor(adv),
		service.AdviceWithConversationLog(conversationRepo),
		service.AdviceWithMetrics(m),
		service.AdviceWithLogger(logger),
	)
	documentService := service.NewDocumentService(
		service.DocumentWithCrimeStore(crimeRepo),
		service.DocumentWithDocumentStore(documentRepo),
		service.DocumentWithStorage(documentStorage),
		service.DocumentWithLogger(logger),
	)
	datasetService := service.NewDatasetService(
		service.DatasetWithCrimeStore(crimeRepo),
		service.DatasetWithLogger(logger),
	)
	preferenceService := service.NewPreferenceService(
		service.PreferenceWithStore(preferenceRepo),
	)
	authService := service.NewAuthService(
		service.AuthWithUserStore(userRepo),
		service.AuthWithSessionStore(sessionRepo),
		service.AuthWithSessionTTL(cfg.SessionTTL),
		service.AuthWithLogger(logger),
	)

	router := handlers.NewRouter(handlers.RouterConfig{
		Mode:          cfg.Mode,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.SecureCookies,
		Logger:        logger,
		Metrics:       m,
		Advice:        handlers.NewAdviceHandler(adviceService),
		Documents:     handlers.NewDocumentHandler(documentService),
		Dataset:       handlers.NewDatasetHandler(datasetService),
		Preferences:   handlers.NewPreferenceHandler(preferenceService),
		Auth:          handlers.NewAuthHandler(authService),
		AuthService:   authService,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("mode", string(cfg.Mode)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func initAdvisor(path string) (*advisor.Advisor, error) {
	if path == "" {
		return advisor.NewDefault()
	}
	return advisor.LoadReferenceFile(path)
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func initRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}
