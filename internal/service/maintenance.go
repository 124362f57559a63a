package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/onboarded/internal/database"
	"github.com/jask/onboarded/internal/database/repository"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes every stored setting and reseeds the defaults, leaving the
// store signed out.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := repository.NewSettingsRepo(s.DB).WithTx(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return database.SeedDefaults(ctx, s.DB)
}
