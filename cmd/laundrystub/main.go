package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"laundry-booking-client/config"
	"laundry-booking-client/internal/stub"
)

func main() {
	logger := log.New(os.Stdout, "laundry-stub ", log.LstdFlags)

	_ = godotenv.Load()

	var cfg *config.Config
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		cfg = loaded
		logger.Printf("configuration loaded successfully from %s", configPath)
	} else {
		cfg = config.Default()
	}

	db, err := stub.InitDB(cfg.Stub.DSN)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	router := stub.NewRouter(db, cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Stub.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("stub API listening on port %d", cfg.Stub.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
