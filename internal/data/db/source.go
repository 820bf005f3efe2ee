package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/damigrowth/migrator/internal/platform/envutil"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// SourceService wraps the read-only connection to the legacy CMS store.
type SourceService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSourceService(logg *logger.Logger) (*SourceService, error) {
	serviceLog := logg.With("service", "SourceService")

	dsn := envutil.String("SOURCE_DATABASE_URL", "")
	if dsn == "" {
		return nil, fmt.Errorf("SOURCE_DATABASE_URL is not set")
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

	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to source store: %w", err)
	}

	// The legacy store is never written to.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(envutil.Int("SOURCE_MAX_OPEN_CONNS", 4))

	return &SourceService{db: gdb, log: serviceLog}, nil
}

func (s *SourceService) DB() *gorm.DB { return s.db }

func (s *SourceService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
