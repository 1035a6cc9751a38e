package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/config"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	dotenvErr := godotenv.Load()

	env, err := config.LoadEnv()
	if err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}

	logger := log.NewLogger(log.Options{
		Level:  env.LogLevel,
		AppEnv: env.AppEnv,
	})
	if dotenvErr != nil && !errors.Is(dotenvErr, os.ErrNotExist) {
		logger.Warnf("Error loading .env file: %v", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithEnv(env),
		config.WithUtils(),
		config.WithDatabase(ctx),
		config.WithRedisCache(),
		config.WithInferenceClient(ctx),
		config.WithMiddleware(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run()
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	logger.Info("Server started successfully")

	if err := g.Wait(); err != nil {
		logger.Fatalf("Server stopped with error: %v", err)
	}
	logger.Info("Server stopped")
}
