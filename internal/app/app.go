package app

import (
	"fmt"
	"net/http"
	"time"

	"collabhive-go/internal/config"
	"collabhive-go/internal/db"
	collaborationdomain "collabhive-go/internal/domain/collaboration"
	profiledomain "collabhive-go/internal/domain/profile"
	projectdomain "collabhive-go/internal/domain/project"
	"collabhive-go/internal/metrics"
	"collabhive-go/internal/repository/inmemory"
	collaborationrepo "collabhive-go/internal/repository/postgres/collaboration"
	profilerepo "collabhive-go/internal/repository/postgres/profile"
	projectrepo "collabhive-go/internal/repository/postgres/project"
	rediscache "collabhive-go/internal/repository/redis"
	"collabhive-go/internal/transport/httpserver"
	"collabhive-go/internal/transport/httpserver/handler"
	collaborationhandler "collabhive-go/internal/transport/httpserver/handler/collaboration"
	commonhandler "collabhive-go/internal/transport/httpserver/handler/common"
	profileshandler "collabhive-go/internal/transport/httpserver/handler/profiles"
	projectshandler "collabhive-go/internal/transport/httpserver/handler/projects"
	"collabhive-go/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	redis      *goredis.Client
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(dbConn, log); err != nil {
			closeDB(dbConn)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	m := metrics.New()

	log.Info("app: initializing search cache", "driver", cfg.Cache.Driver)
	cache, redisClient, err := newSearchCache(cfg, log)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}
	if cache != nil {
		cache = metrics.InstrumentCache(cache, m)
	}

	collaborationService := collaborationdomain.NewService(collaborationrepo.NewPostgres(dbConn), log)
	projectService := projectdomain.NewService(projectrepo.NewPostgres(dbConn), cache, log, cfg.Cache.SearchTTL)
	profileService := profiledomain.NewService(profilerepo.NewPostgres(dbConn), log)

	sqlDB, err := dbConn.DB()
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	handlers := handler.New(
		commonhandler.New(sqlDB, log),
		projectshandler.New(projectService, collaborationService, log),
		collaborationhandler.New(collaborationService, log),
		profileshandler.New(profileService, log),
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, profileService, m, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		redis:      redisClient,
		log:        log,
	}, nil
}

func newSearchCache(cfg config.Config, log logger.Logger) (projectdomain.Cache, *goredis.Client, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		client, err := db.NewRedis(cfg.Redis, log)
		if err != nil {
			return nil, nil, err
		}
		return rediscache.NewSearchCache(client), client, nil
	case config.CacheDriverNone:
		return nil, nil, nil
	default:
		return inmemory.NewSearchCache(), nil, nil
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) ShutdownTimeout() time.Duration {
	if a.cfg.HTTPTimeout.Shutdown <= 0 {
		return 10 * time.Second
	}
	return a.cfg.HTTPTimeout.Shutdown
}

func (a *App) Env() string {
	return a.cfg.Env
}

func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("app: redis close failed", "err", err)
		}
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB) {
	if sqlDB, err := dbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
