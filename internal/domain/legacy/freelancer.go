package legacy

import "time"

// Freelancer is the main legacy content row. The source store is read-only;
// none of these models carry write paths.
type Freelancer struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"column:username" json:"username"`
	Email        string     `gorm:"column:email" json:"email"`
	DisplayName  string     `gorm:"column:display_name" json:"display_name"`
	FirstName    string     `gorm:"column:first_name" json:"first_name"`
	LastName     string     `gorm:"column:last_name" json:"last_name"`
	Phone        string     `gorm:"column:phone" json:"phone"`
	Website      string     `gorm:"column:website" json:"website"`
	Tagline      string     `gorm:"column:tagline" json:"tagline"`
	Description  string     `gorm:"column:description" json:"description"`
	Rate         *float64   `gorm:"column:rate" json:"rate"`
	Commencement *int       `gorm:"column:commencement" json:"commencement"`
	Size         *string    `gorm:"column:size" json:"size"`
	Featured     bool       `gorm:"column:featured" json:"featured"`
	Rating       *float64   `gorm:"column:rating" json:"rating"`
	ReviewsTotal *int       `gorm:"column:reviews_total" json:"reviews_total"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
	PublishedAt  *time.Time `gorm:"column:published_at" json:"published_at"`
}

func (Freelancer) TableName() string { return "freelancers" }

// FreelancerUserLink joins a freelancer to its owning CMS account.
type FreelancerUserLink struct {
	FreelancerID int `gorm:"column:freelancer_id" json:"freelancer_id"`
	UserID       int `gorm:"column:user_id" json:"user_id"`
}

func (FreelancerUserLink) TableName() string { return "freelancers_user_links" }

// FreelancerTypeLink is the single-valued type selection (user, freelancer,
// company). The slug lives on the freelancer_types row.
type FreelancerTypeLink struct {
	FreelancerID     int `gorm:"column:freelancer_id" json:"freelancer_id"`
	FreelancerTypeID int `gorm:"column:freelancer_type_id" json:"freelancer_type_id"`
}

func (FreelancerTypeLink) TableName() string { return "freelancers_type_links" }

type FreelancerType struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Slug string `gorm:"column:slug" json:"slug"`
}

func (FreelancerType) TableName() string { return "freelancer_types" }
