package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type RoomImageController struct {
	Svc *services.RoomImageService
}

func NewRoomImageController(svc *services.RoomImageService) *RoomImageController {
	return &RoomImageController{Svc: svc}
}

type roomImagePayload struct {
	Image  string `json:"room_image" binding:"required"`
	RoomID uint   `json:"room_id" binding:"required"`
}

func (ctl *RoomImageController) Create(c *gin.Context) {
	var payload roomImagePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	img := models.RoomImage{Image: payload.Image, RoomID: payload.RoomID}
	if err := ctl.Svc.Create(&img); err != nil {
		writeStorageError(c, "Room Image", err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctl *RoomImageController) List(c *gin.Context) {
	images, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Room Image", err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (ctl *RoomImageController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	img, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Room Image", err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctl *RoomImageController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload roomImagePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	img, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Room Image", err)
		return
	}
	img.Image = payload.Image
	img.RoomID = payload.RoomID
	if err := ctl.Svc.Save(img); err != nil {
		writeStorageError(c, "Room Image", err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctl *RoomImageController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteByID(id); err != nil {
		writeStorageError(c, "Room Image", err)
		return
	}
	utils.JSONDeleted(c, "Room Image", id)
}
