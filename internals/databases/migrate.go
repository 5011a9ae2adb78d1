package database

import (
	"embed"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// RunMigrations applies the embedded SQL migrations against the connected DB.
// Call after ConnectDB.
func RunMigrations() {
	if err := runMigrations(); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migrations up to date.")
}

func runMigrations() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("sql db: %w", err)
	}

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
