package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"article-service/internal/auth"
	"article-service/internal/config"
	"article-service/internal/db"
	"article-service/internal/logger"
	"article-service/internal/mapper"
	"article-service/internal/repository"
	"article-service/internal/server"
	"article-service/internal/service"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped with error", "error", err)
	}
	sugar.Info("Server stopped gracefully")
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Setup database connection pool
	pool, err := db.NewPostgresPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	sugar.Info("Connected to PostgreSQL successfully")

	if cfg.AutoMigrate {
		if err := db.ApplySchema(ctx, pool); err != nil {
			return err
		}
		sugar.Info("Database schema applied")
	}

	// 2. Setup cache
	redisClient, err := db.NewRedisClient(ctx, cfg.Redis, sugar)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()
	sugar.Infow("Connected to Redis successfully", "addr", cfg.Redis.Addr)

	// 3. Create repositories and services
	users := repository.NewUserPostgresRepository(pool)
	articles := repository.NewArticlePostgresRepository(pool)

	articleService := service.NewArticleService(users, articles, redisClient, mapper.NewMapper(), sugar)
	authService := service.NewAuthService(users, auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL), cfg.BcryptCost, sugar)

	// 4. Setup HTTP and gRPC health servers
	api := server.NewServer(server.Deps{
		Articles:  articleService,
		Auth:      authService,
		JWTSecret: cfg.JWTSecret,
		Logger:    sugar,
		HealthChecks: map[string]server.HealthCheck{
			"postgres": pool.Ping,
			"redis":    redisClient.HealthCheck,
		},
	})
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	healthServer := server.NewHealthServer()
	listener, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("Article Service (HTTP) listening", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sugar.Infow("Health Service (gRPC) listening", "port", cfg.GRPCPort)
		return healthServer.Serve(listener)
	})

	healthServer.SetServing(true)

	// 5. Wait for shutdown signal and perform graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		sugar.Info("Shutting down servers...")

		healthServer.SetServing(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		healthServer.Stop()
		return err
	})

	return g.Wait()
}
