package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/inventario-app/inventario/internal/config"
	"github.com/inventario-app/inventario/internal/events"
	"github.com/inventario-app/inventario/internal/httperr"
	"github.com/inventario-app/inventario/internal/httpserver"
	"github.com/inventario-app/inventario/internal/logging"
	authmw "github.com/inventario-app/inventario/internal/middleware/auth"
	"github.com/inventario-app/inventario/internal/middleware/sanitize"
	"github.com/inventario-app/inventario/internal/repo"
	"github.com/inventario-app/inventario/internal/service"
	"github.com/inventario-app/inventario/internal/session"
	"github.com/inventario-app/inventario/pkg/db"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatalf("redis ping: %v", err)
	}
	pingCancel()

	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)
	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if producer == nil {
		logger.Warn("no kafka brokers configured, inventory events disabled")
	}

	repository := repo.New(database)
	productSvc := &service.ProductService{Repo: repository, Producer: producer}
	authSvc := &service.AuthService{Repo: repository, Sessions: sessions}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httperr.Handler
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(echomw.Secure())
	e.Use(echomw.BodyLimit("10M"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(sanitize.Middleware())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHandler{Svc: productSvc},
		AuthHandler:    &httpserver.AuthHandler{Svc: authSvc, Sessions: sessions, SessionTTL: cfg.SessionTTL},
		AuthMW:         authmw.NewMiddleware(sessions),
		DB:             database,
		Redis:          redisClient,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("inventario listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("redis close error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
