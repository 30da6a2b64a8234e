package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/rahat-dev/ramadan-times-api/api/swagger"
	"github.com/rahat-dev/ramadan-times-api/internal/handler"
	"github.com/rahat-dev/ramadan-times-api/internal/middleware"
	"github.com/rahat-dev/ramadan-times-api/internal/repository"
	"github.com/rahat-dev/ramadan-times-api/internal/service"
	"github.com/rahat-dev/ramadan-times-api/pkg/cache"
	"github.com/rahat-dev/ramadan-times-api/pkg/config"
	"github.com/rahat-dev/ramadan-times-api/pkg/database"
	"github.com/rahat-dev/ramadan-times-api/pkg/logger"
	corsmiddleware "github.com/rahat-dev/ramadan-times-api/pkg/middleware/cors"
	reqidmiddleware "github.com/rahat-dev/ramadan-times-api/pkg/middleware/requestid"
)

// @title Ramadan Times API
// @version 1.0.0
// @description Sehri/Iftar timetable lookup for Bangladesh divisions and districts
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	validate := validator.New()

	scheduleRepo, err := repository.NewScheduleRepository(repository.ScheduleRepositoryOptions{
		Path:   cfg.Dataset.Path,
		Strict: cfg.Dataset.Strict,
	}, validate, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to load schedule dataset", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, redisErr := cache.NewRedis(cfg.Redis)
		if redisErr != nil {
			logr.Warn("redis unavailable, timetable cache disabled", zap.Error(redisErr))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	resolverSvc := service.NewResolverService(scheduleRepo, logr)
	timetableSvc := service.NewTimetableService(resolverSvc, cacheSvc, cfg.Cache.TTL, cfg.Dataset.Timezone, logr)
	contentSvc := service.NewContentService()

	var exportSvc *service.ExportService
	if cfg.Export.Enabled {
		exportSvc = service.NewExportService(timetableSvc, logr)
	}

	var contactHandler *handler.ContactHandler
	if cfg.Contact.Enabled {
		db, dbErr := database.NewPostgres(cfg.Database)
		if dbErr != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", dbErr)
		}
		leadRepo := repository.NewLeadRepository(db)
		contactSvc := service.NewContactService(leadRepo, validate, logr)
		contactHandler = handler.NewContactHandler(contactSvc, contentSvc)
	}

	timetableHandler := buildTimetableHandler(timetableSvc, exportSvc)
	locationHandler := handler.NewLocationHandler(resolverSvc)
	contentHandler := handler.NewContentHandler(contentSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.GET("/divisions", locationHandler.Divisions)
	api.GET("/divisions/:name/districts", locationHandler.Districts)
	api.GET("/timetable", timetableHandler.Timetable)
	api.GET("/timetable/today", timetableHandler.Today)
	api.GET("/timetable/share", timetableHandler.Share)
	api.GET("/timetable/export", timetableHandler.Export)
	api.GET("/offers", contentHandler.Offers)
	api.GET("/duas", contentHandler.Duas)
	if contactHandler != nil {
		api.POST("/contact", contactHandler.Create)
		api.GET("/contact/types", contactHandler.WebsiteTypes)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildTimetableHandler keeps the nil-interface trap out of the wiring: a
// typed nil *ExportService must not become a non-nil exporter interface.
func buildTimetableHandler(timetableSvc *service.TimetableService, exportSvc *service.ExportService) *handler.TimetableHandler {
	if exportSvc == nil {
		return handler.NewTimetableHandler(timetableSvc, nil)
	}
	return handler.NewTimetableHandler(timetableSvc, exportSvc)
}
