package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-reservation/models"
	"hotel-reservation/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{DB: db, Log: log}
}

type UserInput struct {
	Name  string
	Email string
	Role  string
}

func (in UserInput) normalized() (UserInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if in.Role == "" {
		in.Role = models.RoleGuest
	}
	if !models.IsValidRole(in.Role) {
		return in, fmt.Errorf("%w: %q", ErrInvalidRole, in.Role)
	}
	return in, nil
}

func (s *UserService) List(ctx context.Context) ([]models.SystemUser, error) {
	var users []models.SystemUser
	if err := s.DB.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.SystemUser, error) {
	var user models.SystemUser
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("failed to find user %s: %w", id, err)
	}
	return user, nil
}

// Create registers an active user. The role defaults to guest.
func (s *UserService) Create(ctx context.Context, in UserInput) (models.SystemUser, error) {
	in, err := in.normalized()
	if err != nil {
		return models.SystemUser{}, err
	}

	user := models.SystemUser{
		ID:        utils.NewID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return models.SystemUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.Log.Info("user created", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

// Update replaces name, email and role. Status and creation time are kept.
func (s *UserService) Update(ctx context.Context, id string, in UserInput) (models.SystemUser, error) {
	in, err := in.normalized()
	if err != nil {
		return models.SystemUser{}, err
	}
	user, err := s.Get(ctx, id)
	if err != nil {
		return user, err
	}

	if err := s.DB.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"name":  in.Name,
		"email": in.Email,
		"role":  in.Role,
	}).Error; err != nil {
		return models.SystemUser{}, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	user.Name, user.Email, user.Role = in.Name, in.Email, in.Role
	return user, nil
}

// ToggleStatus flips a user between active and inactive.
func (s *UserService) ToggleStatus(ctx context.Context, id string) (models.SystemUser, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return user, err
	}

	next := models.UserStatusInactive
	if user.Status != models.UserStatusActive {
		next = models.UserStatusActive
	}
	if err := s.DB.WithContext(ctx).Model(&user).Update("status", next).Error; err != nil {
		return models.SystemUser{}, fmt.Errorf("failed to toggle user %s: %w", id, err)
	}
	user.Status = next
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	result := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.SystemUser{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
