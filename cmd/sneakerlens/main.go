package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/SneakerLens/pkg/infra/logger"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/NeuralTrust/SneakerLens/pkg/server"
	"github.com/NeuralTrust/SneakerLens/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger("sneakerlens")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		if !errors.Is(err, config.ErrConfigFileNotFound) {
			logger.Fatalf("failed to load config: %v", err)
		}
		logger.Info("no config file found, using defaults and environment")
	}
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: cfg.Metrics.EnableLatency,
	})

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalf("failed to build dependencies: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"version":     version.Version,
		"environment": cfg.Server.Environment,
		"provider":    cfg.Embedding.Provider,
		"index":       cfg.Pinecone.IndexName,
		"redis":       container.Cache.RedisEnabled(),
	}).Info("starting sneakerlens")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// connectivity is only logged; the server starts regardless
	go container.HealthChecker.Startup(ctx)

	srv := server.NewAPIServer(server.APIServerDI{
		Config:              cfg,
		Logger:              logger,
		MiddlewareTransport: container.MiddlewareTransport,
		HandlerTransport:    container.HandlerTransport,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), common.ShutdownTimeout)
	defer shutdownCancel()

	exitCode := 0
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("error shutting down server")
		exitCode = 1
	}
	if err := container.Close(); err != nil {
		logger.WithError(err).Error("error releasing resources")
		exitCode = 1
	}
	logger.Info("server gracefully stopped")
	os.Exit(exitCode)
}
