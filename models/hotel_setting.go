package models

import "time"

type HotelSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`

	// HH:MM, local hotel time
	CheckInTime  string `gorm:"size:5" json:"checkInTime"`
	CheckOutTime string `gorm:"size:5" json:"checkOutTime"`

	FreeCancellationHours int `json:"freeCancellationHours"`
	DepositPercent        int `json:"depositPercent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
