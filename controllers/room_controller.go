package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

type roomPayload struct {
	RoomNumber  string            `json:"room_number" binding:"required,max=10"`
	RoomType    models.RoomType   `json:"room_type" binding:"omitempty,oneof=lux junior_lux family single"`
	RoomStatus  models.RoomStatus `json:"room_status" binding:"omitempty,oneof=available booked occupied"`
	Description string            `json:"room_description" binding:"required"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	MaxGuests   int               `json:"max_guests" binding:"required,gt=0"`
}

func (p roomPayload) toModel() models.Room {
	roomType := p.RoomType
	if roomType == "" {
		roomType = models.RoomTypeSingle
	}
	status := p.RoomStatus
	if status == "" {
		status = models.RoomStatusAvailable
	}
	return models.Room{
		RoomNumber:  p.RoomNumber,
		RoomType:    roomType,
		RoomStatus:  status,
		Description: p.Description,
		Price:       p.Price,
		MaxGuests:   p.MaxGuests,
	}
}

func (ctl *RoomController) Create(c *gin.Context) {
	var payload roomPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	room := payload.toModel()
	if err := ctl.Svc.Create(&room); err != nil {
		writeStorageError(c, "Room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Room", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload roomPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	room, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Room", err)
		return
	}
	updated := payload.toModel()
	updated.ID = room.ID
	if err := ctl.Svc.Save(&updated); err != nil {
		writeStorageError(c, "Room", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		writeStorageError(c, "Room", err)
		return
	}
	utils.JSONDeleted(c, "Room", id)
}
