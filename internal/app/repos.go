package app

import (
	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/data/repos/source"
	targetrepo "github.com/damigrowth/migrator/internal/data/repos/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

type SourceRepos struct {
	Freelancers source.FreelancerRepo
	Identity    source.IdentityRepo
	Components  source.ComponentRepo
	Taxonomies  source.TaxonomyLinkRepo
	Media       source.MediaRepo
	Reviews     source.ReviewRepo
	Services    source.ServiceRepo
	Tables      source.TaxonomyTableRepo
}

type TargetRepos struct {
	Users    targetrepo.UserRepo
	Profiles targetrepo.ProfileRepo
	Services targetrepo.ServiceRepo
	Taxonomy targetrepo.TaxonomyRepo
}

func wireSourceRepos(db *gorm.DB, log *logger.Logger) SourceRepos {
	return SourceRepos{
		Freelancers: source.NewFreelancerRepo(db, log),
		Identity:    source.NewIdentityRepo(db, log),
		Components:  source.NewComponentRepo(db, log),
		Taxonomies:  source.NewTaxonomyLinkRepo(db, log),
		Media:       source.NewMediaRepo(db, log),
		Reviews:     source.NewReviewRepo(db, log),
		Services:    source.NewServiceRepo(db, log),
		Tables:      source.NewTaxonomyTableRepo(db, log),
	}
}

func wireTargetRepos(db *gorm.DB, log *logger.Logger) TargetRepos {
	return TargetRepos{
		Users:    targetrepo.NewUserRepo(db, log),
		Profiles: targetrepo.NewProfileRepo(db, log),
		Services: targetrepo.NewServiceRepo(db, log),
		Taxonomy: targetrepo.NewTaxonomyRepo(db, log),
	}
}
