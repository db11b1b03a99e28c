package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleMember = "member"
	RoleExpert = "expert"
	RoleAdmin  = "admin"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	// ExternalID is the opaque subject id issued by the identity provider.
	ExternalID string `gorm:"size:255;not null;unique" json:"external_id"`

	Name     string `gorm:"size:255;not null" json:"name"`
	Username string `gorm:"size:100;not null;unique" json:"username"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Role     string `gorm:"size:20;not null;default:'member'" json:"role"`

	Bio          *string `gorm:"type:text" json:"bio"`
	PictureURL   *string `gorm:"size:255" json:"picture_url"`
	Location     *string `gorm:"size:100" json:"location"`
	PortfolioURL *string `gorm:"size:255" json:"portfolio_url"`

	Reputation int `gorm:"default:0" json:"reputation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
