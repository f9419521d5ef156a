package postgres

import (
	"errors"
	"fmt"

	"restaurant-intel/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

type MigrationStatus struct {
	Version uint
	Dirty   bool
	Applied bool
}

// Migrator applies the SQL files under cfg.MigrationsPath.
type Migrator struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

func NewMigrator(cfg *config.DatabaseConfig, logger *zap.Logger) (*Migrator, error) {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}
	return &Migrator{m: m, logger: logger}, nil
}

func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return mg.logVersion("Migrations applied")
}

// Down rolls back the most recent migration.
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return mg.logVersion("Migration rolled back")
}

func (mg *Migrator) Status() (*MigrationStatus, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return &MigrationStatus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}
	return &MigrationStatus{Version: version, Dirty: dirty, Applied: true}, nil
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (mg *Migrator) logVersion(msg string) error {
	st, err := mg.Status()
	if err != nil {
		return err
	}
	mg.logger.Info(msg, zap.Uint("version", st.Version), zap.Bool("dirty", st.Dirty))
	return nil
}
