package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-reservation/models"
	"hotel-reservation/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{DB: db, Log: log}
}

// RoomInput carries the editable fields of a room.
type RoomInput struct {
	Number      string
	Type        string
	Price       float64
	Capacity    int
	Amenities   []string
	Description string
}

// ParseAmenities splits a comma separated list, trimming entries and
// dropping empty ones.
func ParseAmenities(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if a := strings.TrimSpace(part); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func cleanAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// Catalog is the guest view: every room, flagged with its availability.
func (s *RoomService) Catalog(ctx context.Context) ([]models.CatalogRoom, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.CatalogRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, models.CatalogRoom{Room: r, Available: r.Status == models.RoomStatusAvailable})
	}
	return out, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to find room %s: %w", id, err)
	}
	return room, nil
}

// Create adds a room. New rooms always start available.
func (s *RoomService) Create(ctx context.Context, in RoomInput) (models.Room, error) {
	room := models.Room{
		ID:          utils.NewID(),
		Number:      strings.TrimSpace(in.Number),
		Type:        strings.TrimSpace(in.Type),
		Price:       in.Price,
		Capacity:    in.Capacity,
		Amenities:   datatypes.NewJSONSlice(cleanAmenities(in.Amenities)),
		Status:      models.RoomStatusAvailable,
		Description: in.Description,
	}

	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.Room{}, fmt.Errorf("%w: %s", ErrDuplicateRoomNumber, room.Number)
		}
		return models.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	s.Log.Info("room created", zap.String("room_id", room.ID), zap.String("number", room.Number))
	return room, nil
}

// Update replaces the editable fields of the room with the given id. Status
// and current guest are left as they are.
func (s *RoomService) Update(ctx context.Context, id string, in RoomInput) (models.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return room, err
	}

	room.Number = strings.TrimSpace(in.Number)
	room.Type = strings.TrimSpace(in.Type)
	room.Price = in.Price
	room.Capacity = in.Capacity
	room.Amenities = datatypes.NewJSONSlice(cleanAmenities(in.Amenities))
	room.Description = in.Description

	if err := s.DB.WithContext(ctx).Save(&room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.Room{}, fmt.Errorf("%w: %s", ErrDuplicateRoomNumber, room.Number)
		}
		return models.Room{}, fmt.Errorf("failed to update room %s: %w", id, err)
	}
	return room, nil
}

// UpdateStatus reassigns the room status. Any status may follow any other.
func (s *RoomService) UpdateStatus(ctx context.Context, id, status string) (models.Room, error) {
	if !models.IsValidRoomStatus(status) {
		return models.Room{}, fmt.Errorf("%w: %q", ErrInvalidRoomStatus, status)
	}
	room, err := s.Get(ctx, id)
	if err != nil {
		return room, err
	}

	if err := s.DB.WithContext(ctx).Model(&room).Update("status", status).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to update room %s status: %w", id, err)
	}
	room.Status = status
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	result := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	s.Log.Info("room deleted", zap.String("room_id", id))
	return nil
}
