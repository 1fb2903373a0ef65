package main

import (
	"flag"
	"fmt"

	"github.com/pageza/recipebook/config"
	"github.com/pageza/recipebook/internal/database"
	"github.com/pageza/recipebook/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "driver", cfg.DBDriver, "err", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to apply migrations", "err", err)
	}

	fmt.Println("All migrations applied successfully.")
}
