package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sorsu-bulan/campus-content-api/api/swagger"
	"github.com/sorsu-bulan/campus-content-api/internal/handler"
	"github.com/sorsu-bulan/campus-content-api/internal/middleware"
	"github.com/sorsu-bulan/campus-content-api/internal/models"
	"github.com/sorsu-bulan/campus-content-api/internal/repository"
	"github.com/sorsu-bulan/campus-content-api/internal/service"
	"github.com/sorsu-bulan/campus-content-api/internal/store"
	"github.com/sorsu-bulan/campus-content-api/pkg/cache"
	"github.com/sorsu-bulan/campus-content-api/pkg/config"
	"github.com/sorsu-bulan/campus-content-api/pkg/database"
	"github.com/sorsu-bulan/campus-content-api/pkg/logger"
	corsmiddleware "github.com/sorsu-bulan/campus-content-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sorsu-bulan/campus-content-api/pkg/middleware/requestid"
)

// @title Campus Content API
// @version 1.0.0
// @description Content service for the SorSU Bulan campus site
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

	db, err := database.NewSQLite(cfg.Storage)
	if err != nil {
		logr.Fatal("failed to open content database", zap.Error(err))
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	contentRepo := repository.NewContentRepository(db, metricsSvc)
	if err := contentRepo.EnsureSchema(context.Background()); err != nil {
		logr.Fatal("failed to prepare content schema", zap.Error(err))
	}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewRedisCacheRepository(redisClient)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	userSeed, err := store.UserSeed(cfg.Accounts)
	if err != nil {
		logr.Fatal("failed to seed accounts", zap.Error(err))
	}

	facultyStore := store.NewFacultyStore(contentRepo, logr)
	announcementStore := store.NewAnnouncementStore(contentRepo, logr)
	eventStore := store.NewEventStore(contentRepo, logr)
	calendarStore := store.NewCalendarStore(contentRepo, logr)
	userStore := store.NewUserStore(contentRepo, userSeed, logr)

	validate := validator.New()

	ranking := service.DirectoryRanking{
		PriorityDepartment: cfg.Directory.PriorityDepartment,
		PriorityNames:      cfg.Directory.PriorityNames,
	}

	facultySvc := service.NewFacultyService(facultyStore, cacheSvc, ranking, validate, logr)
	announcementSvc := service.NewAnnouncementService(announcementStore, cacheSvc, validate, logr)
	eventSvc := service.NewEventService(eventStore, cacheSvc, validate, logr)
	calendarSvc := service.NewCalendarService(calendarStore, cacheSvc, validate, logr)
	authSvc := service.NewAuthService(userStore, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, validate, logr)
	exportSvc := service.NewExportService(facultyStore, eventStore, cfg.Exports.Enabled, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	facultyHandler := handler.NewFacultyHandler(facultySvc, exportSvc)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)
	eventHandler := handler.NewEventHandler(eventSvc, exportSvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)

	auth := api.Group("")
	auth.Use(middleware.JWT(authSvc))
	auth.GET("/auth/me", authHandler.Me)
	auth.POST("/auth/change-password", authHandler.ChangePassword)

	api.GET("/announcements", announcementHandler.PublicList)
	api.GET("/announcements/:id", announcementHandler.PublicGet)
	api.POST("/announcements/:id/views", announcementHandler.IncrementViews)
	api.GET("/events", eventHandler.PublicList)
	api.GET("/events/:id", eventHandler.PublicGet)
	api.GET("/faculty", facultyHandler.PublicList)
	api.GET("/faculty/:id", facultyHandler.PublicGet)
	api.GET("/calendar", calendarHandler.PublicList)

	admin := api.Group("/admin")
	admin.Use(middleware.JWT(authSvc))

	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	admin.GET("/announcements", adminOnly, announcementHandler.List)
	admin.POST("/announcements", adminOnly, announcementHandler.Create)
	admin.GET("/announcements/:id", adminOnly, announcementHandler.Get)
	admin.PUT("/announcements/:id", adminOnly, announcementHandler.Update)
	admin.DELETE("/announcements/:id", adminOnly, announcementHandler.Delete)

	admin.GET("/events", adminOnly, eventHandler.List)
	admin.POST("/events", adminOnly, eventHandler.Create)
	admin.GET("/events/export", adminOnly, eventHandler.Export)
	admin.GET("/events/:id", adminOnly, eventHandler.Get)
	admin.PUT("/events/:id", adminOnly, eventHandler.Update)
	admin.PATCH("/events/:id/status", adminOnly, eventHandler.UpdateStatus)
	admin.DELETE("/events/:id", adminOnly, eventHandler.Delete)

	admin.GET("/faculty", adminOnly, facultyHandler.List)
	admin.POST("/faculty", adminOnly, facultyHandler.Create)
	admin.GET("/faculty/export", adminOnly, facultyHandler.Export)
	admin.GET("/faculty/:id", adminOnly, facultyHandler.Get)
	admin.PUT("/faculty/:id", middleware.RBAC(string(models.RoleAdmin), "SELF"), facultyHandler.Update)
	admin.DELETE("/faculty/:id", adminOnly, facultyHandler.Delete)

	admin.GET("/calendar", adminOnly, calendarHandler.List)
	admin.POST("/calendar", adminOnly, calendarHandler.Create)
	admin.GET("/calendar/:id", adminOnly, calendarHandler.Get)
	admin.PUT("/calendar/:id", adminOnly, calendarHandler.Update)
	admin.DELETE("/calendar/:id", adminOnly, calendarHandler.Delete)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
