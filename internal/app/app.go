package app

import (
	"fmt"
	"os"

	"github.com/damigrowth/migrator/internal/data/db"
	"github.com/damigrowth/migrator/internal/migrate"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// App owns the connections and repo sets shared by the migration
// binaries. Source is nil when the binary only touches the target
// store (rollback, analyze, test).
type App struct {
	Log    *logger.Logger
	Source *db.SourceService
	Target *db.TargetService

	SourceRepos SourceRepos
	TargetRepos TargetRepos
	Tx          migrate.TxRunner
}

func New() (*App, error) {
	a, err := NewTargetOnly()
	if err != nil {
		return nil, err
	}

	src, err := db.NewSourceService(a.Log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init source store: %w", err)
	}
	a.Source = src
	a.SourceRepos = wireSourceRepos(src.DB(), a.Log)
	return a, nil
}

// NewTargetOnly connects to the target store alone.
func NewTargetOnly() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tgt, err := db.NewTargetService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init target store: %w", err)
	}
	if err := tgt.AutoMigrateAll(); err != nil {
		tgt.Close()
		log.Sync()
		return nil, fmt.Errorf("target automigrate: %w", err)
	}

	return &App{
		Log:         log,
		Target:      tgt,
		TargetRepos: wireTargetRepos(tgt.DB(), log),
		Tx:          migrate.NewGormTxRunner(tgt.DB()),
	}, nil
}

func (a *App) Close() {
	if a.Source != nil {
		if err := a.Source.Close(); err != nil {
			a.Log.Warn("closing source store", "error", err)
		}
	}
	if a.Target != nil {
		if err := a.Target.Close(); err != nil {
			a.Log.Warn("closing target store", "error", err)
		}
	}
	a.Log.Sync()
}
