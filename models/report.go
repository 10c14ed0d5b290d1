package models

type RoomTypeStat struct {
	Type     string  `json:"type"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// Report holds the administrator's headline figures. The values are a fixed
// snapshot and are not computed from reservations.
type Report struct {
	TotalRevenue      float64        `json:"totalRevenue"`
	OccupancyRate     float64        `json:"occupancyRate"`
	TotalReservations int            `json:"totalReservations"`
	AverageStay       float64        `json:"averageStay"`
	MonthlyRevenue    []float64      `json:"monthlyRevenue"`
	RoomTypeStats     []RoomTypeStat `json:"roomTypeStats"`
}

// FrontDeskStats summarises the receptionist dashboard.
type FrontDeskStats struct {
	TotalReservations int `json:"totalReservations"`
	PendingCheckIns   int `json:"pendingCheckIns"`
	PendingCheckOuts  int `json:"pendingCheckOuts"`
	OccupiedRooms     int `json:"occupiedRooms"`
	AvailableRooms    int `json:"availableRooms"`
}
