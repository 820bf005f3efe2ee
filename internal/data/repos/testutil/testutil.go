package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// OpenTarget returns a migrated target-schema database for repo tests.
// With TEST_TARGET_DSN set it connects to that Postgres instance,
// otherwise it falls back to an in-memory sqlite database. The sqlite
// fallback covers everything except jsonb-specific behavior.
func OpenTarget(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	if dsn := os.Getenv("TEST_TARGET_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
	}
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&target.User{},
		&target.Profile{},
		&target.Service{},
		&target.Skill{},
		&target.Tag{},
		&target.Industry{},
		&target.ContactMethod{},
		&target.PaymentMethod{},
		&target.SettlementMethod{},
		&target.Category{},
		&target.Subcategory{},
	); err != nil {
		t.Fatalf("automigrate test schema: %v", err)
	}

	t.Cleanup(func() {
		for _, table := range []string{
			"services", "profiles", "users",
			"subcategories", "categories",
			"settlement_methods", "payment_methods", "contact_methods",
			"industries", "tags", "skills",
		} {
			db.Exec("DELETE FROM " + table)
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Log returns a silent logger for repo constructors.
func Log(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.Nop()
}
