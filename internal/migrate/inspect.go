package migrate

import (
	"context"
	"fmt"
	"strconv"

	targetrepo "github.com/damigrowth/migrator/internal/data/repos/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

// Inspector backs the manual verification commands: `test <key>` fetches
// one migrated row, `analyze` prints aggregate statistics.
type Inspector struct {
	users    targetrepo.UserRepo
	profiles targetrepo.ProfileRepo
	services targetrepo.ServiceRepo
	taxonomy targetrepo.TaxonomyRepo
	log      *logger.Logger
}

func NewInspector(users targetrepo.UserRepo, profiles targetrepo.ProfileRepo, services targetrepo.ServiceRepo, taxonomy targetrepo.TaxonomyRepo, baseLog *logger.Logger) *Inspector {
	return &Inspector{
		users:    users,
		profiles: profiles,
		services: services,
		taxonomy: taxonomy,
		log:      baseLog.With("component", "Inspector"),
	}
}

// ProfileByKey accepts a legacy numeric id or a target account email.
func (i *Inspector) ProfileByKey(ctx context.Context, key string) (any, error) {
	if legacyID, err := strconv.Atoi(key); err == nil {
		p, err := i.profiles.GetByLegacyID(ctx, nil, legacyID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("no migrated profile for legacy id %d", legacyID)
		}
		return p, nil
	}
	u, err := i.users.GetByEmail(ctx, nil, NormalizeEmail(key))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("no target user for email %q", key)
	}
	p, err := i.profiles.GetByUserID(ctx, nil, u.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("user %q has no migrated profile", key)
	}
	return p, nil
}

func (i *Inspector) ServiceByKey(ctx context.Context, key string) (any, error) {
	legacyID, err := strconv.Atoi(key)
	if err != nil {
		return nil, fmt.Errorf("service key must be a legacy numeric id, got %q", key)
	}
	s, err := i.services.GetByLegacyID(ctx, nil, legacyID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("no migrated service for legacy id %d", legacyID)
	}
	return s, nil
}

// AnalyzeProfiles returns aggregate statistics over migrated rows. Map
// keys are stable output labels.
func (i *Inspector) AnalyzeProfiles(ctx context.Context) (map[string]any, error) {
	total, err := i.profiles.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	byType, err := i.profiles.CountByType(ctx, nil)
	if err != nil {
		return nil, err
	}
	byRole, err := i.users.CountByRole(ctx, nil)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"profiles_total":   total,
		"profiles_by_type": byType,
		"users_by_role":    byRole,
	}, nil
}

func (i *Inspector) AnalyzeServices(ctx context.Context) (map[string]any, error) {
	total, err := i.services.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	byStatus, err := i.services.CountByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"services_total":     total,
		"services_by_status": byStatus,
	}, nil
}

func (i *Inspector) AnalyzeTaxonomies(ctx context.Context) (map[string]any, error) {
	out := map[string]any{}
	for _, kind := range targetrepo.AllTaxonomyKinds {
		n, err := i.taxonomy.Count(ctx, nil, kind)
		if err != nil {
			return nil, err
		}
		out[string(kind)] = n
	}
	return out, nil
}
