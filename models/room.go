package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "cleaning"
)

var roomStatuses = map[string]struct{}{
	RoomStatusAvailable:   {},
	RoomStatusOccupied:    {},
	RoomStatusMaintenance: {},
	RoomStatusCleaning:    {},
}

// IsValidRoomStatus reports whether s is one of the room status values.
func IsValidRoomStatus(s string) bool {
	_, ok := roomStatuses[s]
	return ok
}

type Room struct {
	ID          string                      `gorm:"primaryKey;size:64" json:"id"`
	Number      string                      `gorm:"column:number;uniqueIndex;size:50" json:"number"`
	Type        string                      `gorm:"size:100" json:"type"`
	Price       float64                     `json:"price"`
	Capacity    int                         `json:"capacity"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities"`
	Status      string                      `gorm:"size:32;index" json:"status"`
	Description string                      `gorm:"type:text" json:"description"`

	// set while a guest is checked in
	CurrentGuest string `gorm:"column:current_guest;size:255" json:"currentGuest,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CatalogRoom is the guest-facing view of a room.
type CatalogRoom struct {
	Room
	Available bool `json:"available"`
}
