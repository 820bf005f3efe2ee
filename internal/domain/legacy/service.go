package legacy

import "time"

type Service struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"column:title" json:"title"`
	Description  string     `gorm:"column:description" json:"description"`
	Price        *float64   `gorm:"column:price" json:"price"`
	Fixed        bool       `gorm:"column:fixed" json:"fixed"`
	Status       string     `gorm:"column:status" json:"status"`
	Rating       *float64   `gorm:"column:rating" json:"rating"`
	ReviewsTotal *int       `gorm:"column:reviews_total" json:"reviews_total"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
	PublishedAt  *time.Time `gorm:"column:published_at" json:"published_at"`
}

func (Service) TableName() string { return "services" }

type ServiceFreelancerLink struct {
	ServiceID    int `gorm:"column:service_id" json:"service_id"`
	FreelancerID int `gorm:"column:freelancer_id" json:"freelancer_id"`
}

func (ServiceFreelancerLink) TableName() string { return "services_freelancer_links" }

type ServiceTagLink struct {
	ServiceID int `gorm:"column:service_id" json:"service_id"`
	TagID     int `gorm:"column:tag_id" json:"tag_id"`
}

func (ServiceTagLink) TableName() string { return "services_tags_links" }

type ServiceCategoryLink struct {
	ServiceID  int `gorm:"column:service_id" json:"service_id"`
	CategoryID int `gorm:"column:category_id" json:"category_id"`
}

func (ServiceCategoryLink) TableName() string { return "services_category_links" }

type ServiceSubcategoryLink struct {
	ServiceID     int `gorm:"column:service_id" json:"service_id"`
	SubcategoryID int `gorm:"column:subcategory_id" json:"subcategory_id"`
}

func (ServiceSubcategoryLink) TableName() string { return "services_subcategory_links" }
