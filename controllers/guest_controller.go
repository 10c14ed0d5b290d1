package controllers

import (
	"net/http"

	"hotel-reservation/middleware"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type stayPayload struct {
	RoomID   string `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Guests   int    `json:"guests"`
}

type GuestController struct {
	Rooms        *services.RoomService
	Reservations *services.ReservationService
}

func NewGuestController(rooms *services.RoomService, reservations *services.ReservationService) *GuestController {
	return &GuestController{Rooms: rooms, Reservations: reservations}
}

// bindStay parses the booking form; it writes the error response itself.
func bindStay(c *gin.Context) (services.NewReservation, bool) {
	var payload stayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return services.NewReservation{}, false
	}
	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		respondInvalidPayload(c, err)
		return services.NewReservation{}, false
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		respondInvalidPayload(c, err)
		return services.NewReservation{}, false
	}
	return services.NewReservation{
		RoomID:   payload.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   payload.Guests,
	}, true
}

// Catalog (GET /api/guest/rooms)
func (ctrl *GuestController) Catalog(c *gin.Context) {
	rooms, err := ctrl.Rooms.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// Quote (POST /api/guest/quote)
func (ctrl *GuestController) Quote(c *gin.Context) {
	stay, ok := bindStay(c)
	if !ok {
		return
	}
	quote, err := ctrl.Reservations.Quote(c.Request.Context(), stay.RoomID, stay.CheckIn, stay.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

// MyReservations (GET /api/guest/reservations)
func (ctrl *GuestController) MyReservations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	list, err := ctrl.Reservations.ListByGuestEmail(c.Request.Context(), user.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// CreateReservation (POST /api/guest/reservations)
func (ctrl *GuestController) CreateReservation(c *gin.Context) {
	stay, ok := bindStay(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)
	stay.GuestName = user.Name
	stay.GuestEmail = user.Email

	res, err := ctrl.Reservations.Create(c.Request.Context(), stay)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// CancelReservation (POST /api/guest/reservations/:id/cancel)
func (ctrl *GuestController) CancelReservation(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	res, err := ctrl.Reservations.Cancel(c.Request.Context(), c.Param("id"), user.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}
