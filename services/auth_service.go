package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-reservation/models"
	"hotel-reservation/utils"

	"go.uber.org/zap"
)

// DemoProfiles are the fixed identities handed out by the login gate, one
// per role.
var DemoProfiles = map[string]models.AppUser{
	models.RoleGuest:         {ID: "1", Name: "Juan Pérez", Email: "juan@guest", Role: models.RoleGuest},
	models.RoleReceptionist:  {ID: "2", Name: "María García", Email: "maria@receptionist", Role: models.RoleReceptionist},
	models.RoleAdministrator: {ID: "3", Name: "Carlos Admin", Email: "carlos@administrator", Role: models.RoleAdministrator},
}

// RoleFromEmail picks the role named after the '@' in the email.
func RoleFromEmail(email string) (string, error) {
	switch {
	case strings.Contains(email, "@guest"):
		return models.RoleGuest, nil
	case strings.Contains(email, "@receptionist"):
		return models.RoleReceptionist, nil
	case strings.Contains(email, "@administrator"):
		return models.RoleAdministrator, nil
	}
	return "", ErrUnknownRoleEmail
}

// AuthService is a demo login gate: the password is only checked for
// presence.
type AuthService struct {
	Sessions SessionStore
	TTL      time.Duration
	Log      *zap.Logger
}

func NewAuthService(store SessionStore, ttl time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{Sessions: store, TTL: ttl, Log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Session{}, ErrMissingCredentials
	}

	role, err := RoleFromEmail(email)
	if err != nil {
		return models.Session{}, err
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	session := models.Session{
		Token: token,
		User:  DemoProfiles[role],
	}
	if s.TTL > 0 {
		session.ExpiresAt = time.Now().UTC().Add(s.TTL)
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return models.Session{}, err
	}

	s.Log.Info("login",
		zap.String("role", role),
		zap.String("user_id", session.User.ID),
		zap.String("email", utils.MaskEmail(email)),
	)
	return session, nil
}

// Authenticate resolves a token to the session user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.AppUser, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.AppUser{}, ErrSessionNotFound
	}
	session, err := s.Sessions.Get(ctx, token)
	if err != nil {
		return models.AppUser{}, err
	}
	return session.User, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}
