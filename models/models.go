package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents a registered learner or administrator
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;default:student" json:"role"`
}

// IsAdmin reports whether the user holds the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Course represents a purchasable course in the catalog
type Course struct {
	gorm.Model
	Title       string          `gorm:"not null;index" json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Duration    int             `gorm:"not null;default:0" json:"duration"` // minutes
	Modules     []Module        `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

// Module is a single unit of course content. Modules are ordered by Position.
type Module struct {
	gorm.Model
	CourseID uint   `gorm:"not null;index" json:"course_id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
	Position int    `gorm:"not null;default:0" json:"position"`
}
