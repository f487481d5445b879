package main

import (
	"flag"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/logger"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	defer database.Close(db)

	if *down > 0 {
		if cfg.DBDriver != config.DriverPostgres {
			logger.Fatal("rollback is only supported for postgres", "driver", cfg.DBDriver)
		}
		if err := database.MigrateDown(db, *down); err != nil {
			logger.Fatal("rollback failed", "error", err)
		}
		logger.Info("rolled back migrations", "steps", *down)
		return
	}

	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
}
