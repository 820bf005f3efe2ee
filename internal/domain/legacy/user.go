package legacy

import "time"

// User is a CMS account row (up_users). Its email is the only durable key
// shared with the target system.
type User struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"column:username" json:"username"`
	Email     string    `gorm:"column:email" json:"email"`
	Confirmed bool      `gorm:"column:confirmed" json:"confirmed"`
	Blocked   bool      `gorm:"column:blocked" json:"blocked"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "up_users" }
