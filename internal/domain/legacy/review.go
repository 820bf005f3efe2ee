package legacy

import "time"

// Review carries a 1..5 star rating; per-entity star buckets are derived by
// one grouped query, never per-entity reads.
type Review struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Rating    int       `gorm:"column:rating" json:"rating"`
	Comment   string    `gorm:"column:comment" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

type ReviewFreelancerLink struct {
	ReviewID     int `gorm:"column:review_id" json:"review_id"`
	FreelancerID int `gorm:"column:freelancer_id" json:"freelancer_id"`
}

func (ReviewFreelancerLink) TableName() string { return "reviews_freelancer_links" }

type ReviewServiceLink struct {
	ReviewID  int `gorm:"column:review_id" json:"review_id"`
	ServiceID int `gorm:"column:service_id" json:"service_id"`
}

func (ReviewServiceLink) TableName() string { return "reviews_service_links" }
