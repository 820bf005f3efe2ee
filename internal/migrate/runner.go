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

const morphTypeFreelancer = "freelancer"

// Options control a forward run.
type Options struct {
	UpdateExisting bool
	Rounding       RoundingMode
	Limit          int
}

// ProfileDeps are the collaborators of the profile pipeline, all behind
// interfaces so tests can substitute in-memory fakes.
type ProfileDeps struct {
	Freelancers source.FreelancerRepo
	Identity    source.IdentityRepo
	Components  source.ComponentRepo
	Taxonomies  source.TaxonomyLinkRepo
	Media       source.MediaRepo
	Reviews     source.ReviewRepo

	Users    targetrepo.UserRepo
	Profiles targetrepo.ProfileRepo
	Services targetrepo.ServiceRepo

	Tx  TxRunner
	Log *logger.Logger
}

// ProfileRunner drives Loading -> Processing(linked) -> Processing(orphans)
// -> Reporting for the freelancer pipeline. A single entity failure never
// aborts the run; only connectivity loss does.
type ProfileRunner struct {
	deps ProfileDeps
	opts Options
	ups  *Upserter
	log  *logger.Logger
}

func NewProfileRunner(deps ProfileDeps, opts Options) *ProfileRunner {
	return &ProfileRunner{
		deps: deps,
		opts: opts,
		ups:  NewUpserter(deps.Tx, deps.Users, deps.Profiles, deps.Services, deps.Log),
		log:  deps.Log.With("pipeline", "profiles"),
	}
}

// profileBatch is everything loaded up front for one run.
type profileBatch struct {
	freelancers []*legacy.Freelancer
	typeSlugs   map[int]string
	userLinks   map[int]int
	legacyUsers map[int]*legacy.User
	targetUsers []*target.User
	profiles    []*target.Profile
	components  ComponentData
	taxonomies  *TaxonomyLinks
	media       map[int][]*legacy.File
	buckets     map[int]source.StarBuckets
}

func (r *ProfileRunner) Run(ctx context.Context) (*Report, error) {
	report := NewReport("profiles")

	r.log.Info("loading legacy entities and side tables")
	batch, err := r.load(ctx)
	if err != nil {
		report.Finish()
		return report, fmt.Errorf("loading: %w", err)
	}
	r.log.Info("loaded batch",
		"entities", len(batch.freelancers),
		"target_users", len(batch.targetUsers),
		"existing_profiles", len(batch.profiles),
	)

	resolver := NewResolver(batch.userLinks, batch.legacyUsers, batch.targetUsers)
	flattened := FlattenAll(entityIDs(batch.freelancers), batch.components)

	index := newProfileIndex(batch.profiles)

	var orphans []*legacy.Freelancer
	for _, f := range batch.freelancers {
		user, rerr := resolver.Resolve(f.ID)
		switch rerr {
		case nil:
			report.Matched++
			if err := r.processOne(ctx, report, batch, flattened[f.ID], index, f, user); err != nil {
				report.Finish()
				return report, err
			}
		case ErrUnlinked:
			orphans = append(orphans, f)
		case ErrUserNotFound:
			report.UnmatchedUsers++
			report.Record(entityKey(f.ID), OutcomeSkipped, "no target user for legacy email")
		}
	}

	r.log.Info("processing orphans", "count", len(orphans))
	for _, f := range orphans {
		if err := r.processOrphan(ctx, report, batch, flattened[f.ID], index, resolver, f); err != nil {
			report.Finish()
			return report, err
		}
	}

	report.Finish()
	return report, nil
}

// processOne migrates one linked entity. The returned error is non-nil
// only for connectivity-level failures.
func (r *ProfileRunner) processOne(ctx context.Context, report *Report, batch *profileBatch, flat *Flattened, index *profileIndex, f *legacy.Freelancer, user *target.User) error {
	key := entityKey(f.ID)
	for _, w := range flat.Warnings {
		report.Warn(key, w)
	}

	payload, err := r.buildPayload(batch, flat, f, user)
	if err != nil {
		report.Record(key, OutcomeFailed, err.Error())
		return nil
	}

	existing := index.byLegacy[f.ID]
	ownerProfile := index.byUser[user.ID.String()]
	outcome, detail, err := r.ups.UpsertProfile(ctx, payload, r.opts.UpdateExisting, existing, ownerProfile)
	if err != nil {
		if IsConnectivity(err) {
			return fmt.Errorf("entity %d: %w", f.ID, err)
		}
		report.Record(key, OutcomeFailed, err.Error())
		return nil
	}
	if outcome == OutcomeCreated {
		index.add(&payload.Profile)
	}
	report.Record(key, outcome, detail)
	r.log.Info("processed entity", "id", f.ID, "outcome", string(outcome))
	return nil
}

func (r *ProfileRunner) processOrphan(ctx context.Context, report *Report, batch *profileBatch, flat *Flattened, index *profileIndex, resolver *Resolver, f *legacy.Freelancer) error {
	key := entityKey(f.ID)
	if NormalizeEmail(f.Email) == "" {
		report.Record(key, OutcomeSkipped, "no match")
		return nil
	}
	user, ok := resolver.ResolveByEmail(f.Email)
	if !ok {
		report.Record(key, OutcomeSkipped, "no match")
		return nil
	}
	if index.byUser[user.ID.String()] != nil {
		report.Record(key, OutcomeSkipped, "matched user already owns a profile")
		return nil
	}
	report.EmailMatched++
	return r.processOne(ctx, report, batch, flat, index, f, user)
}

func (r *ProfileRunner) buildPayload(batch *profileBatch, flat *Flattened, f *legacy.Freelancer, user *target.User) (*ProfilePayload, error) {
	typeSlug := batch.typeSlugs[f.ID]
	if typeSlug == "" {
		typeSlug = "user"
	}

	rating, reviewCount := ReduceRating(batch.buckets[f.ID], f.Rating, f.ReviewsTotal, r.opts.Rounding)

	userChanges := map[string]any{
		"display_name": f.DisplayName,
		"first_name":   f.FirstName,
		"last_name":    f.LastName,
		"phone":        f.Phone,
	}
	if typeSlug != target.ProfileFreelancer && typeSlug != target.ProfileCompany {
		userChanges["role"] = target.RoleSimple
		return &ProfilePayload{
			LegacyID:    f.ID,
			TypeSlug:    typeSlug,
			User:        user,
			UserChanges: userChanges,
		}, nil
	}

	coverage, err := marshalJSON(flat.Coverage)
	if err != nil {
		return nil, err
	}
	visibility, err := marshalJSON(flat.Visibility)
	if err != nil {
		return nil, err
	}
	billing, err := marshalJSON(flat.Billing)
	if err != nil {
		return nil, err
	}
	socials, err := marshalJSON(flat.Socials)
	if err != nil {
		return nil, err
	}
	media, err := marshalJSON(FlattenMedia(batch.media[f.ID]))
	if err != nil {
		return nil, err
	}

	taxo := batch.taxonomies
	skills, err := marshalJSON(taxo.Skills[f.ID])
	if err != nil {
		return nil, err
	}
	tags, err := marshalJSON(taxo.Tags[f.ID])
	if err != nil {
		return nil, err
	}
	industries, err := marshalJSON(taxo.Industries[f.ID])
	if err != nil {
		return nil, err
	}
	contactMethods, err := marshalJSON(taxo.ContactMethods[f.ID])
	if err != nil {
		return nil, err
	}
	paymentMethods, err := marshalJSON(taxo.PaymentMethods[f.ID])
	if err != nil {
		return nil, err
	}
	settlementMethods, err := marshalJSON(taxo.SettlementMethods[f.ID])
	if err != nil {
		return nil, err
	}

	profile := target.Profile{
		Type:              typeSlug,
		Tagline:           f.Tagline,
		Description:       f.Description,
		Website:           f.Website,
		Rate:              f.Rate,
		Commencement:      f.Commencement,
		Size:              f.Size,
		Featured:          f.Featured,
		Coverage:          coverage,
		Visibility:        visibility,
		Billing:           billing,
		Socials:           socials,
		Media:             media,
		Skills:            skills,
		Tags:              tags,
		Industries:        industries,
		ContactMethods:    contactMethods,
		PaymentMethods:    paymentMethods,
		SettlementMethods: settlementMethods,
		Rating:            rating,
		ReviewCount:       reviewCount,
	}
	if id, ok := taxo.Categories[f.ID]; ok {
		profile.CategoryID = &id
	}
	if id, ok := taxo.Subcategories[f.ID]; ok {
		profile.SubcategoryID = &id
	}

	return &ProfilePayload{
		LegacyID:    f.ID,
		TypeSlug:    typeSlug,
		User:        user,
		Profile:     profile,
		UserChanges: userChanges,
	}, nil
}

func (r *ProfileRunner) load(ctx context.Context) (*profileBatch, error) {
	freelancers, err := r.deps.Freelancers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if r.opts.Limit > 0 && len(freelancers) > r.opts.Limit {
		freelancers = freelancers[:r.opts.Limit]
	}
	ids := entityIDs(freelancers)

	batch := &profileBatch{freelancers: freelancers}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		batch.typeSlugs, err = r.deps.Freelancers.TypeSlugs(gctx, ids)
		return
	})
	g.Go(func() (err error) {
		batch.userLinks, err = r.deps.Identity.UserLinks(gctx)
		return
	})
	g.Go(func() (err error) {
		batch.legacyUsers, err = r.deps.Identity.Users(gctx)
		return
	})
	g.Go(func() (err error) {
		batch.targetUsers, err = r.deps.Users.All(gctx, nil)
		return
	})
	g.Go(func() (err error) {
		batch.profiles, err = r.deps.Profiles.All(gctx, nil)
		return
	})
	g.Go(func() (err error) {
		batch.taxonomies, err = AggregateTaxonomies(gctx, r.deps.Taxonomies, ids)
		return
	})
	g.Go(func() (err error) {
		batch.media, err = r.deps.Media.FilesFor(gctx, morphTypeFreelancer, ids)
		return
	})
	g.Go(func() (err error) {
		batch.buckets, err = r.deps.Reviews.FreelancerBuckets(gctx, ids)
		return
	})
	g.Go(func() (err error) {
		batch.components.Links, err = r.deps.Components.Links(gctx, ids)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Typed component tables depend on the junction contents.
	byType := map[string][]int{}
	for _, link := range batch.components.Links {
		byType[link.ComponentType] = append(byType[link.ComponentType], link.ComponentID)
	}
	var socialIDs []int
	for _, t := range []string{
		legacy.ComponentSocialFacebook, legacy.ComponentSocialLinkedIn,
		legacy.ComponentSocialX, legacy.ComponentSocialYoutube,
		legacy.ComponentSocialGithub, legacy.ComponentSocialInstagram,
		legacy.ComponentSocialBehance, legacy.ComponentSocialDribbble,
	} {
		socialIDs = append(socialIDs, byType[t]...)
	}
	coverageIDs := byType[legacy.ComponentCoverage]

	g2, g2ctx := errgroup.WithContext(ctx)
	g2.Go(func() (err error) {
		batch.components.Coverages, err = r.deps.Components.Coverages(g2ctx, coverageIDs)
		return
	})
	g2.Go(func() (err error) {
		batch.components.CoverageCounties, err = r.deps.Components.CoverageCounties(g2ctx, coverageIDs)
		return
	})
	g2.Go(func() (err error) {
		batch.components.CoverageAreas, err = r.deps.Components.CoverageAreas(g2ctx, coverageIDs)
		return
	})
	g2.Go(func() (err error) {
		batch.components.Visibilities, err = r.deps.Components.Visibilities(g2ctx, byType[legacy.ComponentVisibility])
		return
	})
	g2.Go(func() (err error) {
		batch.components.Billings, err = r.deps.Components.Billings(g2ctx, byType[legacy.ComponentBilling])
		return
	})
	g2.Go(func() (err error) {
		batch.components.SocialSingles, err = r.deps.Components.SocialSingles(g2ctx, socialIDs)
		return
	})
	if err := g2.Wait(); err != nil {
		return nil, err
	}
	return batch, nil
}

// profileIndex tracks existing profiles by legacy id and owning user so
// the one-profile-per-user guard holds within a run.
type profileIndex struct {
	byLegacy map[int]*target.Profile
	byUser   map[string]*target.Profile
}

func newProfileIndex(profiles []*target.Profile) *profileIndex {
	idx := &profileIndex{
		byLegacy: make(map[int]*target.Profile, len(profiles)),
		byUser:   make(map[string]*target.Profile, len(profiles)),
	}
	for _, p := range profiles {
		idx.add(p)
	}
	return idx
}

func (idx *profileIndex) add(p *target.Profile) {
	idx.byLegacy[p.LegacyID] = p
	idx.byUser[p.UserID.String()] = p
}

func entityIDs(rows []*legacy.Freelancer) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func entityKey(id int) string {
	return fmt.Sprintf("freelancer:%d", id)
}
