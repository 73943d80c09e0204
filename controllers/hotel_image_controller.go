package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type HotelImageController struct {
	Svc *services.HotelImageService
}

func NewHotelImageController(svc *services.HotelImageService) *HotelImageController {
	return &HotelImageController{Svc: svc}
}

type hotelImagePayload struct {
	Image   string `json:"hotel_image" binding:"required"`
	HotelID uint   `json:"hotel_id" binding:"required"`
}

func (ctl *HotelImageController) Create(c *gin.Context) {
	var payload hotelImagePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	img := models.HotelImage{Image: payload.Image, HotelID: payload.HotelID}
	if err := ctl.Svc.Create(&img); err != nil {
		writeStorageError(c, "Hotel Image", err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctl *HotelImageController) List(c *gin.Context) {
	images, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Hotel Image", err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (ctl *HotelImageController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	img, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Hotel Image", err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctl *HotelImageController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload hotelImagePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	img, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Hotel Image", err)
		return
	}
	img.Image = payload.Image
	img.HotelID = payload.HotelID
	if err := ctl.Svc.Save(img); err != nil {
		writeStorageError(c, "Hotel Image", err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctl *HotelImageController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteByID(id); err != nil {
		writeStorageError(c, "Hotel Image", err)
		return
	}
	utils.JSONDeleted(c, "Hotel Image", id)
}
