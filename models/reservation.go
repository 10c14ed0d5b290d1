package models

import "time"

const (
	ReservationPending    = "pending"
	ReservationConfirmed  = "confirmed"
	ReservationCancelled  = "cancelled"
	ReservationCheckedIn  = "checked-in"
	ReservationCheckedOut = "checked-out"
)

var reservationStatuses = map[string]struct{}{
	ReservationPending:    {},
	ReservationConfirmed:  {},
	ReservationCancelled:  {},
	ReservationCheckedIn:  {},
	ReservationCheckedOut: {},
}

func IsValidReservationStatus(s string) bool {
	_, ok := reservationStatuses[s]
	return ok
}

// Reservation keeps a denormalized copy of the room number and type; RoomID
// is informational and not a foreign key.
type Reservation struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	RoomID     string `gorm:"column:room_id;size:64;index" json:"roomId"`
	RoomNumber string `gorm:"column:room_number;size:50;index" json:"roomNumber"`
	RoomType   string `gorm:"column:room_type;size:100" json:"roomType"`

	GuestName  string `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestEmail string `gorm:"column:guest_email;size:150;index" json:"guestEmail"`

	CheckIn  time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out" json:"checkOut"`
	Guests   int       `gorm:"column:guests" json:"guests"`
	Total    float64   `gorm:"column:total" json:"total"`
	Status   string    `gorm:"column:status;size:32;index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
