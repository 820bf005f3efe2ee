package migrate

import (
	"fmt"

	"github.com/damigrowth/migrator/internal/domain/legacy"
	"github.com/damigrowth/migrator/internal/domain/target"
)

// ComponentData is everything the flattener needs for a batch: the typed
// component rows keyed by component id, fetched once per table up front.
type ComponentData struct {
	Links            []*legacy.ComponentLink
	Coverages        map[int]*legacy.Coverage
	CoverageCounties map[int][]int
	CoverageAreas    map[int][]int
	Visibilities     map[int]*legacy.Visibility
	Billings         map[int]*legacy.Billing
	SocialSingles    map[int]*legacy.SocialSingle
}

// Flattened is the fixed-shape result for one entity. Every field is
// populated; missing legacy data degrades to the type's default shape.
type Flattened struct {
	Coverage   target.CoverageShape
	Visibility target.VisibilityShape
	// Billing stays nil when the entity has no billing component at all,
	// which is distinct from billing-present-but-empty.
	Billing  *target.BillingShape
	Socials  target.SocialsShape
	Warnings []string
}

// linksByEntity groups junction rows per entity id, preserving order.
func linksByEntity(links []*legacy.ComponentLink) map[int][]*legacy.ComponentLink {
	out := make(map[int][]*legacy.ComponentLink)
	for _, l := range links {
		out[l.EntityID] = append(out[l.EntityID], l)
	}
	return out
}

// FlattenAll flattens component rows for every entity in the batch.
// Entities with no components get the default shape.
func FlattenAll(entityIDs []int, data ComponentData) map[int]*Flattened {
	grouped := linksByEntity(data.Links)
	out := make(map[int]*Flattened, len(entityIDs))
	for _, id := range entityIDs {
		out[id] = flattenOne(id, grouped[id], data)
	}
	return out
}

func flattenOne(entityID int, links []*legacy.ComponentLink, data ComponentData) *Flattened {
	f := &Flattened{
		Coverage:   target.DefaultCoverage(),
		Visibility: target.DefaultVisibility(),
	}
	for _, link := range links {
		switch link.ComponentType {
		case legacy.ComponentCoverage:
			f.flattenCoverage(entityID, link.ComponentID, data)
		case legacy.ComponentVisibility:
			f.flattenVisibility(entityID, link.ComponentID, data)
		case legacy.ComponentBilling:
			f.flattenBilling(entityID, link.ComponentID, data)
		case legacy.ComponentSocialFacebook, legacy.ComponentSocialLinkedIn,
			legacy.ComponentSocialX, legacy.ComponentSocialYoutube,
			legacy.ComponentSocialGithub, legacy.ComponentSocialInstagram,
			legacy.ComponentSocialBehance, legacy.ComponentSocialDribbble:
			f.flattenSocial(entityID, link.ComponentType, link.ComponentID, data)
		default:
			f.warnf(entityID, "unknown component type %q", link.ComponentType)
		}
	}
	return f
}

func (f *Flattened) warnf(entityID int, format string, args ...any) {
	f.Warnings = append(f.Warnings, fmt.Sprintf("entity %d: %s", entityID, fmt.Sprintf(format, args...)))
}

func (f *Flattened) flattenCoverage(entityID, componentID int, data ComponentData) {
	row, ok := data.Coverages[componentID]
	if !ok {
		f.warnf(entityID, "coverage component %d has no row, using defaults", componentID)
		return
	}
	cov := target.DefaultCoverage()
	if row.Online != nil {
		cov.Online = *row.Online
	}
	if row.Onsite != nil {
		cov.Onsite = *row.Onsite
	}
	if row.Onbase != nil {
		cov.Onbase = *row.Onbase
	}
	cov.Address = row.Address
	cov.CountyID = row.CountyID
	cov.AreaID = row.AreaID
	cov.ZipcodeID = row.ZipcodeID
	if ids := data.CoverageCounties[componentID]; len(ids) > 0 {
		cov.Counties = ids
	}
	if ids := data.CoverageAreas[componentID]; len(ids) > 0 {
		cov.Areas = ids
	}
	f.Coverage = cov
}

func (f *Flattened) flattenVisibility(entityID, componentID int, data ComponentData) {
	row, ok := data.Visibilities[componentID]
	if !ok {
		f.warnf(entityID, "visibility component %d has no row, using defaults", componentID)
		return
	}
	vis := target.DefaultVisibility()
	if row.Email != nil {
		vis.Email = *row.Email
	}
	if row.Phone != nil {
		vis.Phone = *row.Phone
	}
	if row.Address != nil {
		vis.Address = *row.Address
	}
	f.Visibility = vis
}

func (f *Flattened) flattenBilling(entityID, componentID int, data ComponentData) {
	row, ok := data.Billings[componentID]
	if !ok {
		f.warnf(entityID, "billing component %d has no row, using defaults", componentID)
		f.Billing = &target.BillingShape{}
		return
	}
	b := &target.BillingShape{
		AFM:        row.AFM,
		DOY:        row.DOY,
		BrandName:  row.BrandName,
		Profession: row.Profession,
		Address:    row.Address,
	}
	if row.Receipt != nil {
		b.Receipt = *row.Receipt
	}
	if row.Invoice != nil {
		b.Invoice = *row.Invoice
	}
	f.Billing = b
}

func (f *Flattened) flattenSocial(entityID int, componentType string, componentID int, data ComponentData) {
	row, ok := data.SocialSingles[componentID]
	if !ok {
		f.warnf(entityID, "social component %d (%s) has no row", componentID, componentType)
		return
	}
	url := row.URL
	if url != nil && *url == "" {
		url = nil
	}
	switch componentType {
	case legacy.ComponentSocialFacebook:
		f.Socials.Facebook = url
	case legacy.ComponentSocialLinkedIn:
		f.Socials.LinkedIn = url
	case legacy.ComponentSocialX:
		f.Socials.X = url
	case legacy.ComponentSocialYoutube:
		f.Socials.Youtube = url
	case legacy.ComponentSocialGithub:
		f.Socials.Github = url
	case legacy.ComponentSocialInstagram:
		f.Socials.Instagram = url
	case legacy.ComponentSocialBehance:
		f.Socials.Behance = url
	case legacy.ComponentSocialDribbble:
		f.Socials.Dribbble = url
	}
}

// FlattenMedia converts ordered file rows into the media shape. Always a
// non-nil list.
func FlattenMedia(files []*legacy.File) []target.MediaItem {
	out := make([]target.MediaItem, 0, len(files))
	for _, f := range files {
		if f == nil || f.URL == "" {
			continue
		}
		out = append(out, target.MediaItem{URL: f.URL, Name: f.Name})
	}
	return out
}
