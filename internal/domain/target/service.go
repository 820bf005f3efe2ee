package target

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Service is a migrated service listing. Its owning profile must already
// exist in the target store when the row is written.
type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"profile_id"`
	LegacyID  int       `gorm:"column:legacy_id;not null;uniqueIndex" json:"legacy_id"`

	Title       string   `gorm:"column:title;not null" json:"title"`
	Description string   `gorm:"column:description;type:text" json:"description"`
	Price       *float64 `gorm:"column:price" json:"price"`
	Fixed       bool     `gorm:"column:fixed" json:"fixed"`
	Status      string   `gorm:"column:status;index" json:"status"`

	CategoryID    *int `gorm:"column:category_id;index" json:"category_id"`
	SubcategoryID *int `gorm:"column:subcategory_id;index" json:"subcategory_id"`

	Tags  datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags"`
	Media datatypes.JSON `gorm:"column:media;type:jsonb" json:"media"`

	Rating      float64 `gorm:"column:rating" json:"rating"`
	ReviewCount int     `gorm:"column:review_count" json:"review_count"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Service) TableName() string { return "services" }
