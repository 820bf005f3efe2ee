package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/envutil"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// TargetService wraps the read-write connection to the normalized store.
type TargetService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTargetService(logg *logger.Logger) (*TargetService, error) {
	serviceLog := logg.With("service", "TargetService")

	dsn := envutil.String("TARGET_DATABASE_URL", "")
	if dsn == "" {
		return nil, fmt.Errorf("TARGET_DATABASE_URL is not set")
	}

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target store: %w", err)
	}

	return &TargetService{db: gdb, log: serviceLog}, nil
}

func (s *TargetService) DB() *gorm.DB { return s.db }

// AutoMigrateAll creates the target tables the pipelines write to.
func (s *TargetService) AutoMigrateAll() error {
	return s.db.AutoMigrate(
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
	)
}

func (s *TargetService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
