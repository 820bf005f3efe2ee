package migrate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/damigrowth/migrator/internal/data/repos/source"
	targetrepo "github.com/damigrowth/migrator/internal/data/repos/target"
	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/domain/target"
	"github.com/damigrowth/migrator/internal/platform/logger"
)

const morphTypeService = "service"

type ServiceDeps struct {
	Services   source.ServiceRepo
	Taxonomies source.TaxonomyLinkRepo
	Media      source.MediaRepo
	Reviews    source.ReviewRepo

	TargetProfiles targetrepo.ProfileRepo
	TargetServices targetrepo.ServiceRepo
	TargetUsers    targetrepo.UserRepo

	Tx  TxRunner
	Log *logger.Logger
}

// ServiceRunner migrates service listings. Profiles must already be in the
// target store: a service whose owner has not been migrated fails with
// ErrProfileMissing and is never given a placeholder profile.
type ServiceRunner struct {
	deps ServiceDeps
	opts Options
	ups  *Upserter
	log  *logger.Logger
}

func NewServiceRunner(deps ServiceDeps, opts Options) *ServiceRunner {
	return &ServiceRunner{
		deps: deps,
		opts: opts,
		ups:  NewUpserter(deps.Tx, deps.TargetUsers, deps.TargetProfiles, deps.TargetServices, deps.Log),
		log:  deps.Log.With("pipeline", "services"),
	}
}

type serviceBatch struct {
	services        []*legacy.Service
	freelancerLinks map[int]int
	profiles        []*target.Profile
	existing        []*target.Service
	tags            map[int][]int
	categories      map[int]int
	subcategories   map[int]int
	media           map[int][]*legacy.File
	buckets         map[int]source.StarBuckets
}

func (r *ServiceRunner) Run(ctx context.Context) (*Report, error) {
	report := NewReport("services")

	r.log.Info("loading legacy services and side tables")
	batch, err := r.load(ctx)
	if err != nil {
		report.Finish()
		return report, fmt.Errorf("loading: %w", err)
	}
	r.log.Info("loaded batch",
		"services", len(batch.services),
		"profiles", len(batch.profiles),
		"existing", len(batch.existing),
	)

	profileByLegacy := make(map[int]*target.Profile, len(batch.profiles))
	for _, p := range batch.profiles {
		profileByLegacy[p.LegacyID] = p
	}
	existingByLegacy := make(map[int]*target.Service, len(batch.existing))
	for _, s := range batch.existing {
		existingByLegacy[s.LegacyID] = s
	}

	for _, s := range batch.services {
		key := fmt.Sprintf("service:%d", s.ID)

		freelancerID, linked := batch.freelancerLinks[s.ID]
		if !linked {
			report.UnmatchedUsers++
			report.Record(key, OutcomeSkipped, "no owning freelancer link")
			continue
		}
		profile := profileByLegacy[freelancerID]
		if profile == nil {
			report.Record(key, OutcomeFailed, ErrProfileMissing.Error())
			continue
		}
		report.Matched++

		payload, perr := r.buildPayload(batch, s, profile)
		if perr != nil {
			report.Record(key, OutcomeFailed, perr.Error())
			continue
		}

		outcome, detail, uerr := r.ups.UpsertService(ctx, payload, r.opts.UpdateExisting, existingByLegacy[s.ID])
		if uerr != nil {
			if IsConnectivity(uerr) {
				report.Finish()
				return report, fmt.Errorf("service %d: %w", s.ID, uerr)
			}
			report.Record(key, OutcomeFailed, uerr.Error())
			continue
		}
		if outcome == OutcomeCreated {
			existingByLegacy[s.ID] = &payload.Service
		}
		report.Record(key, outcome, detail)
		r.log.Info("processed service", "id", s.ID, "outcome", string(outcome))
	}

	report.Finish()
	return report, nil
}

func (r *ServiceRunner) buildPayload(batch *serviceBatch, s *legacy.Service, profile *target.Profile) (*ServicePayload, error) {
	rating, reviewCount := ReduceRating(batch.buckets[s.ID], s.Rating, s.ReviewsTotal, r.opts.Rounding)

	tags, err := marshalJSON(orEmpty(batch.tags[s.ID]))
	if err != nil {
		return nil, err
	}
	media, err := marshalJSON(FlattenMedia(batch.media[s.ID]))
	if err != nil {
		return nil, err
	}

	status := s.Status
	if status == "" {
		if s.PublishedAt != nil {
			status = "published"
		} else {
			status = "draft"
		}
	}

	svc := target.Service{
		ProfileID:   profile.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		Fixed:       s.Fixed,
		Status:      status,
		Tags:        tags,
		Media:       media,
		Rating:      rating,
		ReviewCount: reviewCount,
	}
	if id, ok := batch.categories[s.ID]; ok {
		svc.CategoryID = &id
	}
	if id, ok := batch.subcategories[s.ID]; ok {
		svc.SubcategoryID = &id
	}

	return &ServicePayload{LegacyID: s.ID, Service: svc}, nil
}

func (r *ServiceRunner) load(ctx context.Context) (*serviceBatch, error) {
	services, err := r.deps.Services.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if r.opts.Limit > 0 && len(services) > r.opts.Limit {
		services = services[:r.opts.Limit]
	}
	ids := make([]int, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}

	batch := &serviceBatch{services: services}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		batch.freelancerLinks, err = r.deps.Services.FreelancerLinks(gctx)
		return
	})
	g.Go(func() (err error) {
		batch.profiles, err = r.deps.TargetProfiles.All(gctx, nil)
		return
	})
	g.Go(func() (err error) {
		batch.existing, err = r.deps.TargetServices.All(gctx, nil)
		return
	})
	g.Go(func() (err error) {
		batch.tags, err = r.deps.Taxonomies.ServiceTags(gctx, ids)
		return
	})
	g.Go(func() (err error) {
		batch.categories, err = r.deps.Taxonomies.ServiceCategories(gctx, ids)
		return
	})
	g.Go(func() (err error) {
		batch.subcategories, err = r.deps.Taxonomies.ServiceSubcategories(gctx, ids)
		return
	})
	g.Go(func() (err error) {
		batch.media, err = r.deps.Media.FilesFor(gctx, morphTypeService, ids)
		return
	})
	g.Go(func() (err error) {
		batch.buckets, err = r.deps.Reviews.ServiceBuckets(gctx, ids)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batch, nil
}

func orEmpty(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
