package legacy

// Component type tags as stored on the polymorphic junction. The socials
// component is one sub-record per platform, each tagged with its own type.
const (
	ComponentCoverage   = "location.coverage"
	ComponentVisibility = "settings.visibility"
	ComponentBilling    = "billing.details"

	ComponentSocialFacebook  = "socials.facebook"
	ComponentSocialLinkedIn  = "socials.linkedin"
	ComponentSocialX         = "socials.x"
	ComponentSocialYoutube   = "socials.youtube"
	ComponentSocialGithub    = "socials.github"
	ComponentSocialInstagram = "socials.instagram"
	ComponentSocialBehance   = "socials.behance"
	ComponentSocialDribbble  = "socials.dribbble"
)

// ComponentLink is the generic junction row fanning out to the typed
// component tables below.
type ComponentLink struct {
	EntityID      int    `gorm:"column:entity_id" json:"entity_id"`
	ComponentID   int    `gorm:"column:component_id" json:"component_id"`
	ComponentType string `gorm:"column:component_type" json:"component_type"`
	Order         int    `gorm:"column:ord" json:"ord"`
}

func (ComponentLink) TableName() string { return "freelancers_cmps" }

// Coverage holds where and how a freelancer provides services. Single
// relations are FK columns; ordered multi relations live in the link
// tables below.
type Coverage struct {
	ID        int     `gorm:"primaryKey" json:"id"`
	Online    *bool   `gorm:"column:online" json:"online"`
	Onsite    *bool   `gorm:"column:onsite" json:"onsite"`
	Onbase    *bool   `gorm:"column:onbase" json:"onbase"`
	Address   *string `gorm:"column:address" json:"address"`
	CountyID  *int    `gorm:"column:county_id" json:"county_id"`
	AreaID    *int    `gorm:"column:area_id" json:"area_id"`
	ZipcodeID *int    `gorm:"column:zipcode_id" json:"zipcode_id"`
}

func (Coverage) TableName() string { return "components_location_coverages" }

type CoverageCountyLink struct {
	CoverageID int `gorm:"column:coverage_id" json:"coverage_id"`
	CountyID   int `gorm:"column:county_id" json:"county_id"`
	Order      int `gorm:"column:ord" json:"ord"`
}

func (CoverageCountyLink) TableName() string { return "components_location_coverages_counties_links" }

type CoverageAreaLink struct {
	CoverageID int `gorm:"column:coverage_id" json:"coverage_id"`
	AreaID     int `gorm:"column:area_id" json:"area_id"`
	Order      int `gorm:"column:ord" json:"ord"`
}

func (CoverageAreaLink) TableName() string { return "components_location_coverages_areas_links" }

type Visibility struct {
	ID      int   `gorm:"primaryKey" json:"id"`
	Email   *bool `gorm:"column:email" json:"email"`
	Phone   *bool `gorm:"column:phone" json:"phone"`
	Address *bool `gorm:"column:address" json:"address"`
}

func (Visibility) TableName() string { return "components_settings_visibilities" }

type Billing struct {
	ID         int     `gorm:"primaryKey" json:"id"`
	Receipt    *bool   `gorm:"column:receipt" json:"receipt"`
	Invoice    *bool   `gorm:"column:invoice" json:"invoice"`
	AFM        *string `gorm:"column:afm" json:"afm"`
	DOY        *string `gorm:"column:doy" json:"doy"`
	BrandName  *string `gorm:"column:brand_name" json:"brand_name"`
	Profession *string `gorm:"column:profession" json:"profession"`
	Address    *string `gorm:"column:address" json:"address"`
}

func (Billing) TableName() string { return "components_billing_details" }

// SocialSingle backs every socials.* component type.
type SocialSingle struct {
	ID    int     `gorm:"primaryKey" json:"id"`
	URL   *string `gorm:"column:url" json:"url"`
	Label *string `gorm:"column:label" json:"label"`
}

func (SocialSingle) TableName() string { return "components_socials_singles" }
