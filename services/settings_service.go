package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"hotel-reservation/models"

	"gorm.io/gorm"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// DefaultHotelSetting is what the settings page shows before anything is saved.
func DefaultHotelSetting() models.HotelSetting {
	return models.HotelSetting{
		Name:                  "Tierra Viva",
		Address:               "Av. Principal 123, Centro",
		Phone:                 "+1 234 567 8900",
		Email:                 "info@tierraviva.com",
		CheckInTime:           "15:00",
		CheckOutTime:          "11:00",
		FreeCancellationHours: 24,
		DepositPercent:        20,
	}
}

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get(ctx context.Context) (models.HotelSetting, error) {
	var hotel models.HotelSetting
	if err := s.DB.WithContext(ctx).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultHotelSetting(), nil
		}
		return hotel, fmt.Errorf("failed to load settings: %w", err)
	}
	return hotel, nil
}

// Update stores the settings, creating the single row on first save.
func (s *SettingsService) Update(ctx context.Context, in models.HotelSetting) (models.HotelSetting, error) {
	if in.CheckInTime != "" && !clockPattern.MatchString(in.CheckInTime) {
		return in, fmt.Errorf("%w: checkInTime must be HH:MM", ErrInvalidSetting)
	}
	if in.CheckOutTime != "" && !clockPattern.MatchString(in.CheckOutTime) {
		return in, fmt.Errorf("%w: checkOutTime must be HH:MM", ErrInvalidSetting)
	}
	if in.DepositPercent < 0 || in.DepositPercent > 100 {
		return in, fmt.Errorf("%w: depositPercent must be between 0 and 100", ErrInvalidSetting)
	}
	if in.FreeCancellationHours < 0 {
		return in, fmt.Errorf("%w: freeCancellationHours must not be negative", ErrInvalidSetting)
	}

	var hotel models.HotelSetting
	err := s.DB.WithContext(ctx).First(&hotel).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return hotel, fmt.Errorf("failed to load settings: %w", err)
	}

	hotel.Name = in.Name
	hotel.Address = in.Address
	hotel.Phone = in.Phone
	hotel.Email = in.Email
	hotel.CheckInTime = in.CheckInTime
	hotel.CheckOutTime = in.CheckOutTime
	hotel.FreeCancellationHours = in.FreeCancellationHours
	hotel.DepositPercent = in.DepositPercent

	if err := s.DB.WithContext(ctx).Save(&hotel).Error; err != nil {
		return hotel, fmt.Errorf("failed to save settings: %w", err)
	}
	return hotel, nil
}
