package models

import "time"

const (
	RoleGuest         = "guest"
	RoleReceptionist  = "receptionist"
	RoleAdministrator = "administrator"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleGuest, RoleReceptionist, RoleAdministrator:
		return true
	}
	return false
}

type SystemUser struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:150;index" json:"email"`
	Role      string    `gorm:"size:32" json:"role"`
	Status    string    `gorm:"size:16" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
