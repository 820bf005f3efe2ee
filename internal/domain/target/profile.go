package target

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile types carried over from the legacy discriminator.
const (
	ProfileFreelancer = "freelancer"
	ProfileCompany    = "company"
)

// Profile is the migrated professional profile. Exactly one per owning
// user. LegacyID keys idempotent re-runs.
type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	LegacyID int       `gorm:"column:legacy_id;not null;uniqueIndex" json:"legacy_id"`

	Type         string   `gorm:"column:type;not null" json:"type"`
	Tagline      string   `gorm:"column:tagline" json:"tagline"`
	Description  string   `gorm:"column:description;type:text" json:"description"`
	Website      string   `gorm:"column:website" json:"website"`
	Rate         *float64 `gorm:"column:rate" json:"rate"`
	Commencement *int     `gorm:"column:commencement" json:"commencement"`
	Size         *string  `gorm:"column:size" json:"size"`
	Featured     bool     `gorm:"column:featured" json:"featured"`

	CategoryID    *int `gorm:"column:category_id;index" json:"category_id"`
	SubcategoryID *int `gorm:"column:subcategory_id;index" json:"subcategory_id"`

	Coverage   datatypes.JSON `gorm:"column:coverage;type:jsonb" json:"coverage"`
	Visibility datatypes.JSON `gorm:"column:visibility;type:jsonb" json:"visibility"`
	Billing    datatypes.JSON `gorm:"column:billing;type:jsonb" json:"billing,omitempty"`
	Socials    datatypes.JSON `gorm:"column:socials;type:jsonb" json:"socials"`
	Media      datatypes.JSON `gorm:"column:media;type:jsonb" json:"media"`

	Skills            datatypes.JSON `gorm:"column:skills;type:jsonb" json:"skills"`
	Tags              datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags"`
	Industries        datatypes.JSON `gorm:"column:industries;type:jsonb" json:"industries"`
	ContactMethods    datatypes.JSON `gorm:"column:contact_methods;type:jsonb" json:"contact_methods"`
	PaymentMethods    datatypes.JSON `gorm:"column:payment_methods;type:jsonb" json:"payment_methods"`
	SettlementMethods datatypes.JSON `gorm:"column:settlement_methods;type:jsonb" json:"settlement_methods"`

	Rating      float64 `gorm:"column:rating" json:"rating"`
	ReviewCount int     `gorm:"column:review_count" json:"review_count"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
