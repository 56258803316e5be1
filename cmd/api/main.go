package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/pkg/logger"
	"starwars/internal/repository"
	"starwars/internal/server"
)

func main() {
	// .env is optional; real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(nil, "info", false).Fatal("config", "error", err)
	}

	log := logger.New(nil, cfg.LogLevel, cfg.IsProd())
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("database close", "error", err)
		}
	}()

	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate", "error", err)
	}
	log.Info("schema ready")

	srv := server.New(cfg, db, log)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr, "env", cfg.AppEnv)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	srv.Hub.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
