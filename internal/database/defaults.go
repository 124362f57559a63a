package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/onboarded/internal/database/repository"
)

// defaultSettings are written on first start so readers always find the flag.
var defaultSettings = map[string]string{
	"signed_in": "false",
}

// SeedDefaults ensures baseline settings exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewSettingsRepo(db)
	for key, value := range defaultSettings {
		if err := repo.SetIfAbsent(ctx, key, value); err != nil {
			return fmt.Errorf("seed %s: %w", key, err)
		}
	}
	return nil
}
