package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/course-planner-api/api/swagger"
	"github.com/noah-isme/course-planner-api/internal/handler"
	"github.com/noah-isme/course-planner-api/internal/middleware"
	"github.com/noah-isme/course-planner-api/internal/repository"
	"github.com/noah-isme/course-planner-api/internal/service"
	"github.com/noah-isme/course-planner-api/pkg/cache"
	"github.com/noah-isme/course-planner-api/pkg/config"
	"github.com/noah-isme/course-planner-api/pkg/database"
	"github.com/noah-isme/course-planner-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-planner-api/pkg/middleware/requestid"
)

// @title Course Planner API
// @version 1.0.0
// @description Catalog browsing and timetable conflict checking for term planning
// @BasePath /
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, catalog caching disabled", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if redisClient != nil {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, cfg.Catalog.CacheEnabled)
	}

	courseRepo := repository.NewCourseRepository(db)
	catalogSvc := service.NewCatalogService(courseRepo, cacheSvc, metricsSvc, validate, logr, cfg.Catalog.CacheTTL)
	plannerSvc := service.NewPlannerService(courseRepo, metricsSvc, validate, logr, cfg.Planner.MaxSelection)

	advisorSvc := service.NewAdvisorService(courseRepo, nil, cfg.Advisor, validate, logr)
	if cfg.Advisor.Enabled {
		advisorClient, err := service.NewOpenAIAdvisorClient(cfg.Advisor)
		if err != nil {
			logr.Warn("advisor disabled", zap.Error(err))
		} else {
			advisorSvc = service.NewAdvisorService(courseRepo, advisorClient, cfg.Advisor, validate, logr)
		}
	}

	catalogHandler := handler.NewCatalogHandler(catalogSvc, cfg.Catalog.ImportMaxBytes)
	plannerHandler := handler.NewPlannerHandler(plannerSvc)
	advisorHandler := handler.NewAdvisorHandler(advisorSvc)
	systemHandler := handler.NewSystemHandler(metricsSvc, db, redisClient)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", systemHandler.Health)
	r.GET("/ready", systemHandler.Ready)
	r.GET("/metrics", systemHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/courses", catalogHandler.List)
		api.GET("/courses/:code", catalogHandler.Get)
		api.POST("/courses/import", catalogHandler.Import)

		api.POST("/planner/conflicts", plannerHandler.Conflicts)
		api.POST("/planner/check-clash", plannerHandler.CheckClash)
		api.POST("/planner/grid", plannerHandler.Grid)
		api.POST("/planner/export", plannerHandler.Export)

		api.POST("/advisor/review", advisorHandler.Review)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
