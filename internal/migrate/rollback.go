package migrate

import (
	"context"

	"gorm.io/gorm"

	targetrepo "github.com/damigrowth/migrator/internal/data/repos/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// Rollbacker bulk-deletes migrated rows of one kind so re-runs start from
// a clean target state. Users are never deleted; their role discriminator
// is reset instead.
type Rollbacker struct {
	tx       TxRunner
	users    targetrepo.UserRepo
	profiles targetrepo.ProfileRepo
	services targetrepo.ServiceRepo
	taxonomy targetrepo.TaxonomyRepo
	log      *logger.Logger
}

func NewRollbacker(tx TxRunner, users targetrepo.UserRepo, profiles targetrepo.ProfileRepo, services targetrepo.ServiceRepo, taxonomy targetrepo.TaxonomyRepo, baseLog *logger.Logger) *Rollbacker {
	return &Rollbacker{
		tx:       tx,
		users:    users,
		profiles: profiles,
		services: services,
		taxonomy: taxonomy,
		log:      baseLog.With("component", "Rollbacker"),
	}
}

// RollbackProfiles removes every migrated profile and resets user roles in
// one transaction.
func (r *Rollbacker) RollbackProfiles(ctx context.Context) (profiles, users int64, err error) {
	err = r.tx.InTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		profiles, txErr = r.profiles.DeleteAll(ctx, tx)
		if txErr != nil {
			return txErr
		}
		users, txErr = r.users.ResetRoles(ctx, tx)
		return txErr
	})
	if err == nil {
		r.log.Info("rolled back profiles", "deleted", profiles, "roles_reset", users)
	}
	return profiles, users, err
}

func (r *Rollbacker) RollbackServices(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.tx.InTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		deleted, txErr = r.services.DeleteAll(ctx, tx)
		return txErr
	})
	if err == nil {
		r.log.Info("rolled back services", "deleted", deleted)
	}
	return deleted, err
}

// RollbackTaxonomies deletes child kinds before parents so foreign keys
// never dangle mid-transaction.
func (r *Rollbacker) RollbackTaxonomies(ctx context.Context) (int64, error) {
	var total int64
	err := r.tx.InTx(ctx, func(tx *gorm.DB) error {
		for i := len(targetrepo.AllTaxonomyKinds) - 1; i >= 0; i-- {
			n, txErr := r.taxonomy.DeleteAll(ctx, tx, targetrepo.AllTaxonomyKinds[i])
			if txErr != nil {
				return txErr
			}
			total += n
		}
		return nil
	})
	if err == nil {
		r.log.Info("rolled back taxonomies", "deleted", total)
	}
	return total, err
}
