package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"medverify/internal/pkg/config"
	"medverify/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

// RunMigrations applies all pending schema migrations before the rest of the
// application starts taking traffic.
func RunMigrations(cfg config.Config) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to load migration source: %w", err)
	}

	dbURL := fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName, cfg.DB.SSLMode,
	)

	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Migrations applied", "version", version, "dirty", dirty)
	return nil
}
