package migrate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/damigrowth/migrator/internal/data/repos/source"
)

// TaxonomyLinks holds the aggregated associations for a batch. Every
// requested entity id has an entry in every multi-valued map, empty when
// the entity has no links of that kind.
type TaxonomyLinks struct {
	Skills            map[int][]int
	Tags              map[int][]int
	Industries        map[int][]int
	ContactMethods    map[int][]int
	PaymentMethods    map[int][]int
	SettlementMethods map[int][]int
	Categories        map[int]int
	Subcategories     map[int]int
}

// AggregateTaxonomies issues one query per kind for the whole batch and
// groups in memory. This is what keeps the pipeline out of
// O(entities x kinds) query fan-out.
func AggregateTaxonomies(ctx context.Context, repo source.TaxonomyLinkRepo, entityIDs []int) (*TaxonomyLinks, error) {
	out := &TaxonomyLinks{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Skills, err = repo.Skills(gctx, entityIDs)
		return
	})
	g.Go(func() (err error) {
		out.Tags, err = repo.Tags(gctx, entityIDs)
		return
	})
	g.Go(func() (err error) {
		out.Industries, err = repo.Industries(gctx, entityIDs)
		return
	})
	g.Go(func() (err error) {
		out.ContactMethods, err = repo.ContactMethods(gctx, entityIDs)
		return
	})
	g.Go(func() (err error) {
		out.PaymentMethods, err = repo.PaymentMethods(gctx, entityIDs)
		return
	})
	g.Go(func() (err error) {
		out.SettlementMethods, err = repo.SettlementMethods(gctx, entityIDs)
		return
	})
	g.Go(func() (err error) {
		out.Categories, err = repo.Categories(gctx, entityIDs)
		return
	})
	g.Go(func() (err error) {
		out.Subcategories, err = repo.Subcategories(gctx, entityIDs)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, m := range []map[int][]int{
		out.Skills, out.Tags, out.Industries,
		out.ContactMethods, out.PaymentMethods, out.SettlementMethods,
	} {
		ensureEmpty(m, entityIDs)
	}
	return out, nil
}

// ensureEmpty guarantees an empty array, never a missing key, for every
// entity in the batch.
func ensureEmpty(m map[int][]int, entityIDs []int) {
	for _, id := range entityIDs {
		if _, ok := m[id]; !ok {
			m[id] = []int{}
		}
	}
}
