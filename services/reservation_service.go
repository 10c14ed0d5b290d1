package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"hotel-reservation/models"
	"hotel-reservation/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReservationService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewReservationService(db *gorm.DB, log *zap.Logger) *ReservationService {
	return &ReservationService{DB: db, Log: log}
}

// StayNights is the stay length in days, rounded up. Non-positive ranges
// yield zero.
func StayNights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

type Quote struct {
	RoomID        string    `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int       `json:"nights"`
	PricePerNight float64   `json:"pricePerNight"`
	Total         float64   `json:"total"`
}

func quoteFor(room models.Room, checkIn, checkOut time.Time) (Quote, error) {
	nights := StayNights(checkIn, checkOut)
	if nights == 0 {
		return Quote{}, ErrInvalidStay
	}
	return Quote{
		RoomID:        room.ID,
		RoomNumber:    room.Number,
		RoomType:      room.Type,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		PricePerNight: room.Price,
		Total:         float64(nights) * room.Price,
	}, nil
}

func (s *ReservationService) findRoom(ctx context.Context, roomID string) (models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to find room %s: %w", roomID, err)
	}
	return room, nil
}

// Quote prices a stay without booking it.
func (s *ReservationService) Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (Quote, error) {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return Quote{}, err
	}
	return quoteFor(room, checkIn, checkOut)
}

type NewReservation struct {
	RoomID     string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	GuestName  string
	GuestEmail string
}

// Create books a room as pending. Overlapping stays and room capacity are
// not checked.
func (s *ReservationService) Create(ctx context.Context, in NewReservation) (models.Reservation, error) {
	room, err := s.findRoom(ctx, in.RoomID)
	if err != nil {
		return models.Reservation{}, err
	}
	q, err := quoteFor(room, in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Reservation{}, err
	}

	guests := in.Guests
	if guests <= 0 {
		guests = 1
	}

	res := models.Reservation{
		ID:         utils.NewID(),
		RoomID:     room.ID,
		RoomNumber: room.Number,
		RoomType:   room.Type,
		GuestName:  in.GuestName,
		GuestEmail: in.GuestEmail,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     guests,
		Total:      q.Total,
		Status:     models.ReservationPending,
	}
	if err := s.DB.WithContext(ctx).Create(&res).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.Log.Info("reservation created",
		zap.String("reservation_id", res.ID),
		zap.String("room_number", res.RoomNumber),
		zap.Int("nights", q.Nights),
		zap.Float64("total", res.Total),
	)
	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrReservationNotFound
		}
		return res, fmt.Errorf("failed to find reservation %s: %w", id, err)
	}
	return res, nil
}

func (s *ReservationService) all(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]models.Reservation, error) {
	var list []models.Reservation
	q := s.DB.WithContext(ctx)
	if scope != nil {
		q = scope(q)
	}
	if err := q.Order("check_in ASC").Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

// FilterReservations keeps reservations whose guest name contains term
// (case-insensitive), or whose room number or id contains term. An empty
// term keeps everything.
func FilterReservations(list []models.Reservation, term string) []models.Reservation {
	term = strings.TrimSpace(term)
	if term == "" {
		return list
	}
	lower := strings.ToLower(term)
	out := make([]models.Reservation, 0, len(list))
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.GuestName), lower) ||
			strings.Contains(r.RoomNumber, term) ||
			strings.Contains(r.ID, term) {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReservationService) List(ctx context.Context, term string) ([]models.Reservation, error) {
	list, err := s.all(ctx, nil)
	if err != nil {
		return nil, err
	}
	return FilterReservations(list, term), nil
}

func (s *ReservationService) ListByGuestEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	return s.all(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("guest_email = ?", email)
	})
}

// Arrivals lists the reservations the front desk still has to act on.
func (s *ReservationService) Arrivals(ctx context.Context) ([]models.Reservation, error) {
	return s.all(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status IN ?", []string{models.ReservationConfirmed, models.ReservationCheckedIn})
	})
}

// Cancel marks a guest's own pending or confirmed reservation as cancelled.
func (s *ReservationService) Cancel(ctx context.Context, id, guestEmail string) (models.Reservation, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return res, err
	}
	if res.GuestEmail != guestEmail {
		return models.Reservation{}, ErrReservationNotFound
	}
	if res.Status != models.ReservationPending && res.Status != models.ReservationConfirmed {
		return models.Reservation{}, fmt.Errorf("%w: reservation %s is %s", ErrNotCancellable, res.ID, res.Status)
	}
	return s.setStatus(ctx, res, models.ReservationCancelled)
}

// UpdateStatus reassigns the reservation status without a transition table.
func (s *ReservationService) UpdateStatus(ctx context.Context, id, status string) (models.Reservation, error) {
	if !models.IsValidReservationStatus(status) {
		return models.Reservation{}, fmt.Errorf("%w: %q", ErrInvalidReservationStatus, status)
	}
	res, err := s.Get(ctx, id)
	if err != nil {
		return res, err
	}
	return s.setStatus(ctx, res, status)
}

func (s *ReservationService) setStatus(ctx context.Context, res models.Reservation, status string) (models.Reservation, error) {
	if err := s.DB.WithContext(ctx).Model(&res).Update("status", status).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to update reservation %s: %w", res.ID, err)
	}
	res.Status = status
	return res, nil
}

// CheckIn marks the reservation checked-in and the room with the same number
// occupied by the guest.
func (s *ReservationService) CheckIn(ctx context.Context, id string) (models.Reservation, error) {
	return s.frontDeskTransition(ctx, id, models.ReservationCheckedIn, func(res models.Reservation) map[string]interface{} {
		return map[string]interface{}{"status": models.RoomStatusOccupied, "current_guest": res.GuestName}
	})
}

// CheckOut marks the reservation checked-out and sends the room to cleaning.
func (s *ReservationService) CheckOut(ctx context.Context, id string) (models.Reservation, error) {
	return s.frontDeskTransition(ctx, id, models.ReservationCheckedOut, func(models.Reservation) map[string]interface{} {
		return map[string]interface{}{"status": models.RoomStatusCleaning, "current_guest": ""}
	})
}

func (s *ReservationService) frontDeskTransition(
	ctx context.Context,
	id string,
	status string,
	roomUpdates func(models.Reservation) map[string]interface{},
) (models.Reservation, error) {
	var out models.Reservation

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Where("id = ?", id).First(&res).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := tx.Model(&res).Update("status", status).Error; err != nil {
			return err
		}
		res.Status = status

		// rooms are matched by the denormalized number; a missing room is not an error
		if err := tx.Model(&models.Room{}).
			Where("number = ?", res.RoomNumber).
			Updates(roomUpdates(res)).Error; err != nil {
			return err
		}

		out = res
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return models.Reservation{}, err
		}
		return models.Reservation{}, fmt.Errorf("failed to move reservation %s to %s: %w", id, status, err)
	}

	s.Log.Info("front desk transition",
		zap.String("reservation_id", out.ID),
		zap.String("status", status),
		zap.String("room_number", out.RoomNumber),
	)
	return out, nil
}

// Stats counts the figures shown on the front desk dashboard.
func (s *ReservationService) Stats(ctx context.Context) (models.FrontDeskStats, error) {
	var stats models.FrontDeskStats

	type statusCount struct {
		Status string
		Total  int
	}

	var resCounts []statusCount
	if err := s.DB.WithContext(ctx).Model(&models.Reservation{}).
		Select("status, COUNT(*) AS total").Group("status").Scan(&resCounts).Error; err != nil {
		return stats, fmt.Errorf("failed to count reservations: %w", err)
	}
	for _, c := range resCounts {
		stats.TotalReservations += c.Total
		switch c.Status {
		case models.ReservationConfirmed:
			stats.PendingCheckIns = c.Total
		case models.ReservationCheckedIn:
			stats.PendingCheckOuts = c.Total
		}
	}

	var roomCounts []statusCount
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).
		Select("status, COUNT(*) AS total").Group("status").Scan(&roomCounts).Error; err != nil {
		return stats, fmt.Errorf("failed to count rooms: %w", err)
	}
	for _, c := range roomCounts {
		switch c.Status {
		case models.RoomStatusOccupied:
			stats.OccupiedRooms = c.Total
		case models.RoomStatusAvailable:
			stats.AvailableRooms = c.Total
		}
	}
	return stats, nil
}
