package services

import "hotel-reservation/models"

// ReportService serves the administrator's headline figures. They are a
// fixed snapshot and do not follow the reservation data.
type ReportService struct {
	snapshot models.Report
}

func NewReportService() *ReportService {
	return &ReportService{snapshot: models.Report{
		TotalRevenue:      15420,
		OccupancyRate:     78,
		TotalReservations: 156,
		AverageStay:       3.2,
		MonthlyRevenue:    []float64{8500, 9200, 10100, 11500, 12800, 15420},
		RoomTypeStats: []models.RoomTypeStat{
			{Type: "Single", Bookings: 45, Revenue: 3600},
			{Type: "Double", Bookings: 67, Revenue: 8040},
			{Type: "Suite", Bookings: 44, Revenue: 8800},
		},
	}}
}

// Report returns a copy of the snapshot.
func (s *ReportService) Report() models.Report {
	r := s.snapshot
	r.MonthlyRevenue = append([]float64(nil), s.snapshot.MonthlyRevenue...)
	r.RoomTypeStats = append([]models.RoomTypeStat(nil), s.snapshot.RoomTypeStats...)
	return r
}
