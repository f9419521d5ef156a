package main

import (
	"flag"
	"fmt"
	"os"

	"restaurant-intel/pkg/config"
	"restaurant-intel/pkg/logger"
	"restaurant-intel/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	action := flag.String("action", "up", "Action: up, down, status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Named("migrate")

	mg, err := postgres.NewMigrator(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to open migrations", zap.Error(err))
	}
	defer func() {
		if err := mg.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	switch *action {
	case "up":
		err = mg.Up()
	case "down":
		err = mg.Down()
	case "status":
		var st *postgres.MigrationStatus
		st, err = mg.Status()
		if err == nil {
			log.Info("Migration status",
				zap.Uint("version", st.Version),
				zap.Bool("dirty", st.Dirty),
				zap.Bool("applied", st.Applied),
			)
		}
	default:
		log.Fatal("Unknown action. Use: up, down, status", zap.String("action", *action))
	}
	if err != nil {
		log.Fatal("Migration failed", zap.String("action", *action), zap.Error(err))
	}
}
