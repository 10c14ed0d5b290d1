package controllers

import (
	"net/http"
	"strings"

	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// ReceptionController serves the front desk.
type ReceptionController struct {
	Rooms        *services.RoomService
	Reservations *services.ReservationService
}

func NewReceptionController(rooms *services.RoomService, reservations *services.ReservationService) *ReceptionController {
	return &ReceptionController{Rooms: rooms, Reservations: reservations}
}

// Stats (GET /api/reception/stats)
func (ctrl *ReceptionController) Stats(c *gin.Context) {
	stats, err := ctrl.Reservations.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// ListReservations (GET /api/reception/reservations?q=)
func (ctrl *ReceptionController) ListReservations(c *gin.Context) {
	list, err := ctrl.Reservations.List(c.Request.Context(), strings.TrimSpace(c.Query("q")))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// Arrivals (GET /api/reception/arrivals)
func (ctrl *ReceptionController) Arrivals(c *gin.Context) {
	list, err := ctrl.Reservations.Arrivals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// CheckIn (POST /api/reception/reservations/:id/check-in)
func (ctrl *ReceptionController) CheckIn(c *gin.Context) {
	res, err := ctrl.Reservations.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// CheckOut (POST /api/reception/reservations/:id/check-out)
func (ctrl *ReceptionController) CheckOut(c *gin.Context) {
	res, err := ctrl.Reservations.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// UpdateReservationStatus (PATCH /api/reception/reservations/:id/status)
func (ctrl *ReceptionController) UpdateReservationStatus(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	res, err := ctrl.Reservations.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// ListRooms (GET /api/reception/rooms)
func (ctrl *ReceptionController) ListRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// UpdateRoomStatus (PATCH /api/reception/rooms/:id/status)
func (ctrl *ReceptionController) UpdateRoomStatus(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	room, err := ctrl.Rooms.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
