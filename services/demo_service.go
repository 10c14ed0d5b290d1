package services

import (
	"context"
	"fmt"
	"time"

	"hotel-reservation/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func demoRooms() []models.Room {
	amen := func(a ...string) datatypes.JSONSlice[string] { return datatypes.NewJSONSlice(a) }
	return []models.Room{
		{ID: "1", Number: "101", Type: "Single Room", Price: 80, Capacity: 1,
			Amenities: amen("WiFi", "TV", "Air Conditioning"), Status: models.RoomStatusAvailable,
			Description: "Comfortable room for one person with all the basic amenities."},
		{ID: "2", Number: "102", Type: "Single Room", Price: 80, Capacity: 1,
			Amenities: amen("WiFi", "TV", "Air Conditioning"), Status: models.RoomStatusCleaning,
			Description: "Quiet single room facing the inner garden."},
		{ID: "3", Number: "201", Type: "Double Room", Price: 120, Capacity: 2,
			Amenities: amen("WiFi", "TV", "Air Conditioning", "Minibar"), Status: models.RoomStatusAvailable,
			Description: "Spacious room for two people with minibar included."},
		{ID: "4", Number: "202", Type: "Double Room", Price: 120, Capacity: 2,
			Amenities: amen("WiFi", "TV", "Air Conditioning", "Minibar"), Status: models.RoomStatusOccupied,
			CurrentGuest: "Juan Pérez", Description: "Double room with city view."},
		{ID: "5", Number: "301", Type: "Executive Suite", Price: 200, Capacity: 4,
			Amenities: amen("WiFi", "TV", "Air Conditioning", "Minibar", "Jacuzzi", "Sea View"), Status: models.RoomStatusOccupied,
			CurrentGuest: "María González", Description: "Luxury suite with jacuzzi and panoramic sea view."},
		{ID: "6", Number: "302", Type: "Executive Suite", Price: 200, Capacity: 4,
			Amenities: amen("WiFi", "TV", "Air Conditioning", "Minibar", "Jacuzzi"), Status: models.RoomStatusMaintenance,
			Description: "Suite under scheduled maintenance."},
		{ID: "7", Number: "401", Type: "Presidential Suite", Price: 350, Capacity: 6,
			Amenities: amen("WiFi", "TV", "Air Conditioning", "Minibar", "Jacuzzi", "Sea View", "Living Room", "Kitchen"),
			Status: models.RoomStatusMaintenance, Description: "Top floor suite with living room and kitchen."},
	}
}

func demoReservations() []models.Reservation {
	return []models.Reservation{
		{ID: "1", RoomID: "3", RoomNumber: "201", RoomType: "Double Room",
			GuestName: "Juan Pérez", GuestEmail: "juan@guest",
			CheckIn: mustDate("2024-01-15"), CheckOut: mustDate("2024-01-18"),
			Guests: 2, Total: 360, Status: models.ReservationConfirmed},
		{ID: "2", RoomID: "5", RoomNumber: "301", RoomType: "Executive Suite",
			GuestName: "María González", GuestEmail: "maria@email.com",
			CheckIn: mustDate("2024-01-16"), CheckOut: mustDate("2024-01-20"),
			Guests: 3, Total: 800, Status: models.ReservationCheckedIn},
		{ID: "3", RoomID: "1", RoomNumber: "101", RoomType: "Single Room",
			GuestName: "Carlos López", GuestEmail: "carlos@email.com",
			CheckIn: mustDate("2024-01-14"), CheckOut: mustDate("2024-01-16"),
			Guests: 1, Total: 160, Status: models.ReservationPending},
	}
}

func demoUsers() []models.SystemUser {
	return []models.SystemUser{
		{ID: "1", Name: "Juan Pérez", Email: "juan@guest", Role: models.RoleGuest,
			Status: models.UserStatusActive, CreatedAt: mustDate("2024-01-01")},
		{ID: "2", Name: "María García", Email: "maria@receptionist", Role: models.RoleReceptionist,
			Status: models.UserStatusActive, CreatedAt: mustDate("2024-01-05")},
		{ID: "3", Name: "Carlos Admin", Email: "carlos@administrator", Role: models.RoleAdministrator,
			Status: models.UserStatusActive, CreatedAt: mustDate("2024-01-01")},
	}
}

// DemoService loads and resets the demo data set.
type DemoService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewDemoService(db *gorm.DB, log *zap.Logger) *DemoService {
	return &DemoService{DB: db, Log: log}
}

// Seed fills empty tables with the demo data. Tables that already hold rows
// are left alone.
func (s *DemoService) Seed(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return seed(tx, s.Log)
	})
}

// Reset wipes rooms, reservations, users and settings, then seeds again.
func (s *DemoService) Reset(ctx context.Context) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []interface{}{&models.Reservation{}, &models.Room{}, &models.SystemUser{}, &models.HotelSetting{}} {
			if err := wipe.Delete(m).Error; err != nil {
				return fmt.Errorf("failed to wipe %T: %w", m, err)
			}
		}
		return seed(tx, s.Log)
	})
	if err != nil {
		return err
	}
	s.Log.Info("demo data reset")
	return nil
}

func seed(tx *gorm.DB, log *zap.Logger) error {
	var count int64

	if err := tx.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		rooms := demoRooms()
		if err := tx.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}
		log.Info("rooms seeded", zap.Int("count", len(rooms)))
	}

	if err := tx.Model(&models.Reservation{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		reservations := demoReservations()
		if err := tx.Create(&reservations).Error; err != nil {
			return fmt.Errorf("failed to seed reservations: %w", err)
		}
		log.Info("reservations seeded", zap.Int("count", len(reservations)))
	}

	if err := tx.Model(&models.SystemUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		users := demoUsers()
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		log.Info("users seeded", zap.Int("count", len(users)))
	}
	return nil
}
