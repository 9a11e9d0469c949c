package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"laundry-booking-client/config"
	"laundry-booking-client/internal/api"
	"laundry-booking-client/internal/app"
	"laundry-booking-client/internal/session"
	"laundry-booking-client/internal/tui"
)

func main() {
	logger := log.New(os.Stderr, "laundry-tui ", log.LstdFlags)

	// .env is optional; the yaml config carries the real settings.
	_ = godotenv.Load()

	var cfg *config.Config
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	storePath := cfg.Session.Path
	if storePath == "" {
		p, err := session.DefaultStorePath()
		if err != nil {
			logger.Fatalf("failed to resolve session store path: %v", err)
		}
		storePath = p
	}

	client := api.New(cfg.API.BaseURL)
	sess := session.NewManager(session.NewStore(storePath))
	a := app.New(cfg, client, sess)

	program := tea.NewProgram(tui.New(a, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Fatalf("program error: %v", err)
	}
}
