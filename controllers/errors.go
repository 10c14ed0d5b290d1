package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var serviceErrors = []errorMapping{
	{services.ErrRoomNotFound, http.StatusNotFound, "error.roomNotFound"},
	{services.ErrReservationNotFound, http.StatusNotFound, "error.reservationNotFound"},
	{services.ErrUserNotFound, http.StatusNotFound, "error.userNotFound"},
	{services.ErrDuplicateRoomNumber, http.StatusConflict, "error.duplicateRoomNumber"},
	{services.ErrInvalidRoomStatus, http.StatusBadRequest, "error.invalidRoomStatus"},
	{services.ErrInvalidReservationStatus, http.StatusBadRequest, "error.invalidReservationStatus"},
	{services.ErrInvalidRole, http.StatusBadRequest, "error.invalidRole"},
	{services.ErrInvalidStay, http.StatusBadRequest, "error.invalidStay"},
	{services.ErrNotCancellable, http.StatusConflict, "error.reservationNotCancellable"},
	{services.ErrSessionExpired, http.StatusUnauthorized, "error.sessionExpired"},
	{services.ErrInvalidSetting, http.StatusBadRequest, "error.invalidSetting"},
	{services.ErrMissingCredentials, http.StatusBadRequest, "error.missingCredentials"},
	{services.ErrUnknownRoleEmail, http.StatusBadRequest, "error.unknownRoleEmail"},
	{services.ErrSessionNotFound, http.StatusUnauthorized, "error.invalidSession"},
}

// respondError maps a service error onto the HTTP response.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			utils.JSONError(c, m.status, m.code, err.Error())
			return
		}
	}
	utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
}

func respondInvalidPayload(c *gin.Context, err error) {
	_ = c.Error(err)
	utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err.Error())
}

// stringList decodes either a JSON array of strings or a comma separated
// string, as the room form sends amenities.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = services.ParseAmenities(raw)
	return nil
}
