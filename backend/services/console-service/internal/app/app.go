package app

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	libdb "aether/backend/libs/db"
	libredis "aether/backend/libs/redis"
	"aether/backend/services/console-service/internal/artifact"
	"aether/backend/services/console-service/internal/assess"
	"aether/backend/services/console-service/internal/auth"
	"aether/backend/services/console-service/internal/cache"
	"aether/backend/services/console-service/internal/config"
	httpserver "aether/backend/services/console-service/internal/http"
	"aether/backend/services/console-service/internal/http/handlers"
	"aether/backend/services/console-service/internal/http/middleware"
	"aether/backend/services/console-service/internal/report"
	"aether/backend/services/console-service/internal/repository"
	"aether/backend/services/console-service/internal/service"
	"aether/backend/services/console-service/internal/storage"
	"aether/backend/services/console-service/internal/ws"
)

// App wires console-service dependencies.
type App struct {
	server      *httpserver.Server
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph. Artifact load failures and a missing
// object-storage endpoint are survivable: the affected strategy reports
// unavailable instead of taking the whole console down.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := libdb.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	redisClient, err := libredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	classifier, err := artifact.LoadClassifier(cfg.Artifacts.ClassifierPath)
	if err != nil {
		logger.Error("classifier artifact unavailable", zap.Error(err))
	}
	forecaster, err := artifact.LoadForecaster(cfg.Artifacts.ForecasterPath)
	if err != nil {
		logger.Error("forecaster artifact unavailable", zap.Error(err))
	}
	assessor := assess.New(classifier, forecaster, logger)

	var fetcher service.DatasetFetcher
	if cfg.Storage.Endpoint != "" {
		reader, err := storage.NewObjectReader(storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
			Object:    cfg.Storage.Object,
		})
		if err != nil {
			logger.Warn("object storage unavailable, historical feed disabled", zap.Error(err))
		} else {
			fetcher = reader
		}
	} else {
		logger.Warn("object storage not configured, historical feed disabled")
	}

	datasetCache := cache.NewDatasetCache(redisClient, cfg.DatasetTTL(), logger)
	repo := repository.NewIncidentRepository(sqlDB)
	renderer := report.NewPDFRenderer()

	svc := service.NewConsoleService(assessor, fetcher, datasetCache, repo, renderer, cfg.Forecast.BaselineTemp, logger)

	operators := make([]auth.Operator, 0, len(cfg.Auth.Operators))
	for _, op := range cfg.Auth.Operators {
		operators = append(operators, auth.Operator{
			Name:         op.Name,
			PasswordHash: op.PasswordHash,
			Role:         op.Role,
		})
	}
	registry := auth.NewRegistry(operators)
	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.TokenTTL())

	feed := ws.NewFeed(svc, assessor.Window(), cfg.Forecast.BaselineTemp, cfg.FeedInterval(), logger)

	routes := httpserver.Routes{
		Login:     handlers.NewLoginHandler(registry, tokens),
		Evaluate:  handlers.NewEvaluateHandler(svc),
		Forecast:  handlers.NewForecastHandler(svc),
		Audit:     handlers.NewAuditHandler(svc),
		Audits:    handlers.NewRecentAuditsHandler(svc),
		History:   handlers.NewHistoryHandler(svc),
		CreateRpt: handlers.NewCreateReportHandler(svc),
		ReportPDF: handlers.NewReportPDFHandler(svc),
		Feed:      feed.HandleWS,
		Health:    handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes, middleware.Auth(tokens))
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		db:          sqlDB,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
