package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/dependency_container"
	infraLogger "github.com/deepx/semspace/pkg/infra/logger"
	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/deepx/semspace/pkg/server"
	"github.com/deepx/semspace/pkg/server/router"
	"github.com/joho/godotenv"
)

// @title SemSpace API
// @version 0.3.0
// @description Idea expansion, sentence embedding and 3D semantic exploration.
// @BasePath /
func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, logWriter := infraLogger.NewLogger("semspace")
	if err := prometheus.RegisterLogDropped(logWriter.Dropped); err != nil {
		logger.WithError(err).Warn("failed to register log metrics")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../config"
	}
	if err := config.Load(configPath); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize dependencies: %v", err)
	}

	srv := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(container.MiddlewareTransport, container.HandlerTransport),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	exitCode := 0
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		exitCode = 1
	}
	if err := container.Close(); err != nil {
		logger.WithError(err).Warn("failed to close dependencies")
	}
	if dropped := logWriter.Dropped(); dropped > 0 {
		fmt.Println("log lines dropped:", dropped)
	}
	// flush queued log lines before the process exits
	logWriter.Close()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	fmt.Println("server gracefully stopped")
}
