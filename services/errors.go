package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateRoomNumber = errors.New("room number already exists")

	ErrInvalidRoomStatus        = errors.New("invalid room status")
	ErrInvalidReservationStatus = errors.New("invalid reservation status")
	ErrInvalidRole              = errors.New("invalid role")
	ErrInvalidStay              = errors.New("check-out must be after check-in")
	ErrNotCancellable           = errors.New("only pending or confirmed reservations can be cancelled")
	ErrInvalidSetting           = errors.New("invalid hotel setting")

	ErrMissingCredentials = errors.New("email and password are required")
	ErrUnknownRoleEmail   = errors.New("email must contain @guest, @receptionist or @administrator")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrSessionExpired     = errors.New("session already expired")
)

// isDuplicateKeyError detects unique index violations for both drivers.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
