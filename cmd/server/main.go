package main

import (
	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/logger"
	"taskboard/internal/server"
)

// @title           Taskboard API
// @version         1.0
// @description     Team projects, tasks, tags and comments with per-project membership.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("closing database", "error", err)
		}
	}()

	if cfg.AutoMigrate {
		if err := database.Migrate(db, cfg.DBDriver); err != nil {
			logger.Fatal("migration failed", "error", err)
		}
	}

	if err := server.New(cfg, db).Run(); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
