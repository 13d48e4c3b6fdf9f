package di

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weathereats/config"
	"weathereats/dao/redis"
	"weathereats/db"
	"weathereats/ranking"
	"weathereats/server"
	"weathereats/server/handlers"
	services "weathereats/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                *config.Config
	Logger                *slog.Logger
	RedisClient           db.RedisClient
	RedisVenueDao         *redis.RedisVenueDAO
	Engine                *ranking.Engine
	Registry              *prometheus.Registry
	RankingMetrics        *services.RankingMetrics
	RankingService        *services.RankingService
	VenueService          *services.VenueService
	VenueCatalogLoader    *services.VenueCatalogLoader
	RankingHandler        *handlers.RankingHandler
	VenueHandler          *handlers.VenueHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	WeatherEatsHttpServer *server.WeatherEatsHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside prod the
// venue store is the in-memory mock.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	logger.Info("initializing container", "env", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if cfg.Env != "prod" {
		logger.Info("using mock redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		geoClient, err := db.NewGeoRedisClient(ctx, redisInternalClient, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisClient = geoClient
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient, logger)

	registry := prometheus.NewRegistry()
	rankingMetrics := services.NewRankingMetrics()
	if err := rankingMetrics.Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	engine := ranking.NewEngine(ranking.WithWorkers(cfg.ScoringWorkers))
	rankingService := services.NewRankingService(
		engine, redisVenueDao, cfg.DefaultPreferences(), cfg.MaxResults, rankingMetrics, logger)
	venueService := services.NewVenueService(redisVenueDao)
	catalogLoader := services.NewVenueCatalogLoader(redisVenueDao, cfg.CatalogSeedPath, rankingMetrics, logger)

	rankingHandler := handlers.NewRankingHandler(rankingService, logger)
	venueHandler := handlers.NewVenueHandler(venueService, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(rankingHandler, venueHandler, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), muxRouter)
	httpServer := server.NewWeatherEatsHttpServer(router, muxRouter, cfg.Port, logger)

	return &Container{
		Config:                cfg,
		Logger:                logger,
		RedisClient:           redisClient,
		RedisVenueDao:         redisVenueDao,
		Engine:                engine,
		Registry:              registry,
		RankingMetrics:        rankingMetrics,
		RankingService:        rankingService,
		VenueService:          venueService,
		VenueCatalogLoader:    catalogLoader,
		RankingHandler:        rankingHandler,
		VenueHandler:          venueHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		WeatherEatsHttpServer: httpServer,
	}, nil
}
