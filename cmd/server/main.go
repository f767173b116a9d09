package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"intelliwheels/internal/config"
	cronrunner "intelliwheels/internal/cron"
	"intelliwheels/internal/db"
	"intelliwheels/internal/handler"
	"intelliwheels/internal/logger"
	gormrepository "intelliwheels/internal/repository/gorm"
	"intelliwheels/internal/service"
)

func main() {
	// Local development convenience; env vars already set win.
	_ = godotenv.Load()

	cfgPath := os.Getenv("IW_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("IW_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	importService := &service.ImportService{
		Store:  store,
		Config: cfg.Import,
		Logger: logger,
	}
	dealerService := &service.DealerService{
		Repo:            store,
		Logger:          logger,
		DefaultRadiusKm: cfg.Search.DefaultRadiusKm,
		MaxReviews:      cfg.Search.MaxReviews,
	}
	queryService := &service.CatalogQueryService{Repo: store, Logger: logger}
	watchlistService := &service.WatchlistService{Repo: store, Logger: logger}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Idempotent: a populated store makes this a no-op unless forced.
	if result, err := importService.Run(ctx, cfg.Import.Force); err != nil {
		logger.Warn("startup import failed (continuing)", zap.Error(err))
	} else {
		logger.Info("startup import done",
			zap.Int("cars_imported", result.CarsImported),
			zap.Bool("cars_skipped", result.CarsSkipped),
			zap.Int("dealers_imported", result.DealersImported),
			zap.Bool("dealers_skipped", result.DealersSkipped),
		)
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn}
	healthHandler.Register(engine)
	dealerHandler := &handler.DealerHandler{Service: dealerService, Logger: logger}
	dealerHandler.Register(engine)
	carHandler := &handler.CarHandler{Query: queryService, Logger: logger}
	carHandler.Register(engine)
	watchlistHandler := &handler.WatchlistHandler{Service: watchlistService, Logger: logger}
	watchlistHandler.Register(engine)
	importHandler := &handler.ImportHandler{Service: importService, Logger: logger}
	importHandler.Register(engine)

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		_, err := cronRunner.Add(cfg.Cron.ImportResync, "import_resync", func(ctx context.Context) {
			result, err := importService.Run(ctx, false)
			if err != nil {
				logger.Warn("cron import resync failed", zap.Error(err))
				return
			}
			if !result.CarsSkipped || !result.DealersSkipped {
				logger.Info("cron import resync loaded data",
					zap.Int("cars_imported", result.CarsImported),
					zap.Int("dealers_imported", result.DealersImported),
				)
			}
		})
		if err != nil {
			logger.Warn("cron register import resync failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-User-ID")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
