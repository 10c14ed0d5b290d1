package controllers

import (
	"net/http"

	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type roomPayload struct {
	Number      string     `json:"number" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	Price       float64    `json:"price" binding:"gte=0"`
	Capacity    int        `json:"capacity" binding:"gte=0"`
	Amenities   stringList `json:"amenities"`
	Description string     `json:"description"`
}

func (p roomPayload) input() services.RoomInput {
	return services.RoomInput{
		Number:      p.Number,
		Type:        p.Type,
		Price:       p.Price,
		Capacity:    p.Capacity,
		Amenities:   p.Amenities,
		Description: p.Description,
	}
}

// RoomController is the administrator's room management.
type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

func (ctrl *RoomController) List(c *gin.Context) {
	rooms, err := ctrl.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) Create(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	room, err := ctrl.Service.Create(c.Request.Context(), payload.input())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) Update(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	room, err := ctrl.Service.Update(c.Request.Context(), c.Param("id"), payload.input())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) Delete(c *gin.Context) {
	if err := ctrl.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
