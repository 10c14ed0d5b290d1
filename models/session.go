package models

import "time"

// AppUser is the identity carried by a login session.
type AppUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Session struct {
	Token     string    `json:"token"`
	User      AppUser   `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}
