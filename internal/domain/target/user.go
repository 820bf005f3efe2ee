package target

import (
	"time"

	"github.com/google/uuid"
)

// User roles. The migration only moves users between these; it never
// creates accounts.
const (
	RoleSimple = "simple"
	RolePro    = "pro"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Username    string    `gorm:"column:username" json:"username"`
	DisplayName string    `gorm:"column:display_name" json:"display_name"`
	FirstName   string    `gorm:"column:first_name" json:"first_name"`
	LastName    string    `gorm:"column:last_name" json:"last_name"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	Role        string    `gorm:"column:role;not null;default:simple;index" json:"role"`
	Confirmed   bool      `gorm:"column:confirmed" json:"confirmed"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "users" }
