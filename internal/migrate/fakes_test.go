package migrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damigrowth/migrator/internal/data/repos/source"
	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/domain/target"
)

// In-memory stand-ins for the repo interfaces. Write paths apply changes
// to the held rows so a second run sees the first run's effects.

type fakeTx struct {
	err error
}

func (f *fakeTx) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type fakeUsers struct {
	rows      map[uuid.UUID]*target.User
	updateErr error
}

func newFakeUsers(rows ...*target.User) *fakeUsers {
	f := &fakeUsers{rows: map[uuid.UUID]*target.User{}}
	for _, u := range rows {
		f.rows[u.ID] = u
	}
	return f
}

func (f *fakeUsers) All(ctx context.Context, tx *gorm.DB) ([]*target.User, error) {
	out := make([]*target.User, 0, len(f.rows))
	for _, u := range f.rows {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*target.User, error) {
	return f.rows[id], nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*target.User, error) {
	for _, u := range f.rows {
		if NormalizeEmail(u.Email) == NormalizeEmail(email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	for k, v := range changes {
		switch k {
		case "display_name":
			u.DisplayName = v.(string)
		case "first_name":
			u.FirstName = v.(string)
		case "last_name":
			u.LastName = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "username":
			u.Username = v.(string)
		case "role":
			u.Role = v.(string)
		}
	}
	return nil
}

func (f *fakeUsers) ResetRoles(ctx context.Context, tx *gorm.DB) (int64, error) {
	var n int64
	for _, u := range f.rows {
		if u.Role == target.RolePro {
			u.Role = target.RoleSimple
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) CountByRole(ctx context.Context, tx *gorm.DB) (map[string]int, error) {
	out := map[string]int{}
	for _, u := range f.rows {
		out[u.Role]++
	}
	return out, nil
}

type fakeProfiles struct {
	rows      map[int]*target.Profile
	createErr func(row *target.Profile) error
	updates   int
}

func newFakeProfiles(rows ...*target.Profile) *fakeProfiles {
	f := &fakeProfiles{rows: map[int]*target.Profile{}}
	for _, p := range rows {
		f.rows[p.LegacyID] = p
	}
	return f
}

func (f *fakeProfiles) All(ctx context.Context, tx *gorm.DB) ([]*target.Profile, error) {
	out := make([]*target.Profile, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfiles) GetByLegacyID(ctx context.Context, tx *gorm.DB, legacyID int) (*target.Profile, error) {
	return f.rows[legacyID], nil
}

func (f *fakeProfiles) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*target.Profile, error) {
	for _, p := range f.rows {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfiles) Create(ctx context.Context, tx *gorm.DB, row *target.Profile) error {
	if f.createErr != nil {
		if err := f.createErr(row); err != nil {
			return err
		}
	}
	cp := *row
	f.rows[row.LegacyID] = &cp
	return nil
}

func (f *fakeProfiles) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error {
	f.updates++
	return nil
}

func (f *fakeProfiles) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	n := int64(len(f.rows))
	f.rows = map[int]*target.Profile{}
	return n, nil
}

func (f *fakeProfiles) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeProfiles) CountByType(ctx context.Context, tx *gorm.DB) (map[string]int, error) {
	out := map[string]int{}
	for _, p := range f.rows {
		out[p.Type]++
	}
	return out, nil
}

type fakeTargetServices struct {
	rows      map[int]*target.Service
	createErr func(row *target.Service) error
	updates   int
}

func newFakeTargetServices(rows ...*target.Service) *fakeTargetServices {
	f := &fakeTargetServices{rows: map[int]*target.Service{}}
	for _, s := range rows {
		f.rows[s.LegacyID] = s
	}
	return f
}

func (f *fakeTargetServices) All(ctx context.Context, tx *gorm.DB) ([]*target.Service, error) {
	out := make([]*target.Service, 0, len(f.rows))
	for _, s := range f.rows {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeTargetServices) GetByLegacyID(ctx context.Context, tx *gorm.DB, legacyID int) (*target.Service, error) {
	return f.rows[legacyID], nil
}

func (f *fakeTargetServices) Create(ctx context.Context, tx *gorm.DB, row *target.Service) error {
	if f.createErr != nil {
		if err := f.createErr(row); err != nil {
			return err
		}
	}
	cp := *row
	f.rows[row.LegacyID] = &cp
	return nil
}

func (f *fakeTargetServices) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, changes map[string]any) error {
	f.updates++
	return nil
}

func (f *fakeTargetServices) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	n := int64(len(f.rows))
	f.rows = map[int]*target.Service{}
	return n, nil
}

func (f *fakeTargetServices) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeTargetServices) CountByStatus(ctx context.Context, tx *gorm.DB) (map[string]int, error) {
	out := map[string]int{}
	for _, s := range f.rows {
		out[s.Status]++
	}
	return out, nil
}

type fakeFreelancers struct {
	rows  []*legacy.Freelancer
	slugs map[int]string
}

func (f *fakeFreelancers) ListAll(ctx context.Context) ([]*legacy.Freelancer, error) {
	return f.rows, nil
}

func (f *fakeFreelancers) GetByID(ctx context.Context, id int) (*legacy.Freelancer, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeFreelancers) TypeSlugs(ctx context.Context, freelancerIDs []int) (map[int]string, error) {
	return f.slugs, nil
}

type fakeIdentity struct {
	links map[int]int
	users map[int]*legacy.User
}

func (f *fakeIdentity) UserLinks(ctx context.Context) (map[int]int, error) {
	return f.links, nil
}

func (f *fakeIdentity) Users(ctx context.Context) (map[int]*legacy.User, error) {
	return f.users, nil
}

type fakeComponents struct {
	data ComponentData
}

func (f *fakeComponents) Links(ctx context.Context, entityIDs []int) ([]*legacy.ComponentLink, error) {
	return f.data.Links, nil
}

func (f *fakeComponents) Coverages(ctx context.Context, componentIDs []int) (map[int]*legacy.Coverage, error) {
	return f.data.Coverages, nil
}

func (f *fakeComponents) CoverageCounties(ctx context.Context, coverageIDs []int) (map[int][]int, error) {
	return f.data.CoverageCounties, nil
}

func (f *fakeComponents) CoverageAreas(ctx context.Context, coverageIDs []int) (map[int][]int, error) {
	return f.data.CoverageAreas, nil
}

func (f *fakeComponents) Visibilities(ctx context.Context, componentIDs []int) (map[int]*legacy.Visibility, error) {
	return f.data.Visibilities, nil
}

func (f *fakeComponents) Billings(ctx context.Context, componentIDs []int) (map[int]*legacy.Billing, error) {
	return f.data.Billings, nil
}

func (f *fakeComponents) SocialSingles(ctx context.Context, componentIDs []int) (map[int]*legacy.SocialSingle, error) {
	return f.data.SocialSingles, nil
}

type fakeTaxLinks struct {
	skills            map[int][]int
	tags              map[int][]int
	industries        map[int][]int
	contactMethods    map[int][]int
	paymentMethods    map[int][]int
	settlementMethods map[int][]int
	categories        map[int]int
	subcategories     map[int]int

	serviceTags          map[int][]int
	serviceCategories    map[int]int
	serviceSubcategories map[int]int
}

func (f *fakeTaxLinks) Skills(ctx context.Context, ids []int) (map[int][]int, error) {
	return copyMulti(f.skills), nil
}

func (f *fakeTaxLinks) Tags(ctx context.Context, ids []int) (map[int][]int, error) {
	return copyMulti(f.tags), nil
}

func (f *fakeTaxLinks) Industries(ctx context.Context, ids []int) (map[int][]int, error) {
	return copyMulti(f.industries), nil
}

func (f *fakeTaxLinks) ContactMethods(ctx context.Context, ids []int) (map[int][]int, error) {
	return copyMulti(f.contactMethods), nil
}

func (f *fakeTaxLinks) PaymentMethods(ctx context.Context, ids []int) (map[int][]int, error) {
	return copyMulti(f.paymentMethods), nil
}

func (f *fakeTaxLinks) SettlementMethods(ctx context.Context, ids []int) (map[int][]int, error) {
	return copyMulti(f.settlementMethods), nil
}

func (f *fakeTaxLinks) Categories(ctx context.Context, ids []int) (map[int]int, error) {
	return copySingle(f.categories), nil
}

func (f *fakeTaxLinks) Subcategories(ctx context.Context, ids []int) (map[int]int, error) {
	return copySingle(f.subcategories), nil
}

func (f *fakeTaxLinks) ServiceTags(ctx context.Context, ids []int) (map[int][]int, error) {
	return copyMulti(f.serviceTags), nil
}

func (f *fakeTaxLinks) ServiceCategories(ctx context.Context, ids []int) (map[int]int, error) {
	return copySingle(f.serviceCategories), nil
}

func (f *fakeTaxLinks) ServiceSubcategories(ctx context.Context, ids []int) (map[int]int, error) {
	return copySingle(f.serviceSubcategories), nil
}

func copyMulti(m map[int][]int) map[int][]int {
	out := make(map[int][]int, len(m))
	for k, v := range m {
		out[k] = append([]int{}, v...)
	}
	return out
}

func copySingle(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type fakeMedia struct {
	files map[int][]*legacy.File
}

func (f *fakeMedia) FilesFor(ctx context.Context, relatedType string, relatedIDs []int) (map[int][]*legacy.File, error) {
	return f.files, nil
}

type fakeReviews struct {
	freelancer map[int]source.StarBuckets
	service    map[int]source.StarBuckets
}

func (f *fakeReviews) FreelancerBuckets(ctx context.Context, ids []int) (map[int]source.StarBuckets, error) {
	return f.freelancer, nil
}

func (f *fakeReviews) ServiceBuckets(ctx context.Context, ids []int) (map[int]source.StarBuckets, error) {
	return f.service, nil
}

type fakeSourceServices struct {
	rows  []*legacy.Service
	links map[int]int
}

func (f *fakeSourceServices) ListAll(ctx context.Context) ([]*legacy.Service, error) {
	return f.rows, nil
}

func (f *fakeSourceServices) GetByID(ctx context.Context, id int) (*legacy.Service, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeSourceServices) FreelancerLinks(ctx context.Context) (map[int]int, error) {
	return f.links, nil
}
