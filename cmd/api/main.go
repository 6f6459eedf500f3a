package main

import (
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/vinaysurtani/Trivia-API/config"
	"github.com/vinaysurtani/Trivia-API/handler"
	"github.com/vinaysurtani/Trivia-API/internal/jsonlog"
	"github.com/vinaysurtani/Trivia-API/repository"
	"github.com/vinaysurtani/Trivia-API/repository/postgres"
	"github.com/vinaysurtani/Trivia-API/repository/sqlite"
	"github.com/vinaysurtani/Trivia-API/service"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration from a YAML file when one is given,
	// from environment variables otherwise.
	configFile := flag.String("config", os.Getenv("CONFIG"), "Path to YAML config file")
	flag.Parse()
	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := openDB(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", map[string]string{
		"driver": cfg.Database.Driver,
	})

	// Shared in-memory cache for the category mapping
	cache := ttlcache.New(ttlcache.WithTTL[string, map[string]string](30 * time.Minute))
	go cache.Start()
	defer cache.Stop()

	// Application layers
	var repo repository.Repository
	switch cfg.Database.Driver {
	case "sqlite3":
		repo = sqlite.New(db)
	default:
		repo = postgres.New(db)
	}
	service := service.New(cfg, logger, repo)
	handler := handler.New(cfg, logger, cache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

// openDB opens the connection pool for the configured store driver.
func openDB(cfg config.Config) (*sql.DB, error) {
	if cfg.Database.Driver == "sqlite3" {
		return sqlite.OpenDB(cfg.Database.Path)
	}
	return postgres.OpenDB(cfg)
}
