package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Svc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{Svc: svc}
}

type hotelCreatePayload struct {
	HotelName   string `json:"hotel_name" binding:"required,max=64"`
	Stars       *int   `json:"stars" binding:"omitempty,gte=1,lte=5"`
	Street      string `json:"street" binding:"omitempty,max=100"`
	PostalIndex string `json:"postal_index" binding:"omitempty,max=32"`
	Description string `json:"description" binding:"required"`
	CountryID   uint   `json:"country_id" binding:"required"`
	CityID      uint   `json:"city_id" binding:"required"`
	OwnerID     uint   `json:"owner_id" binding:"required"`
}

// All fields optional: only the ones present overwrite the stored values.
type hotelUpdatePayload struct {
	HotelName   *string `json:"hotel_name" binding:"omitempty,max=64"`
	Stars       *int    `json:"stars" binding:"omitempty,gte=1,lte=5"`
	Street      *string `json:"street" binding:"omitempty,max=100"`
	PostalIndex *string `json:"postal_index" binding:"omitempty,max=32"`
	Description *string `json:"description"`
	CountryID   *uint   `json:"country_id"`
	CityID      *uint   `json:"city_id"`
	OwnerID     *uint   `json:"owner_id"`
}

func (p hotelUpdatePayload) merge(hotel *models.Hotel) {
	if p.HotelName != nil {
		hotel.HotelName = *p.HotelName
	}
	if p.Stars != nil {
		hotel.Stars = p.Stars
	}
	if p.Street != nil {
		hotel.Street = *p.Street
	}
	if p.PostalIndex != nil {
		hotel.PostalIndex = *p.PostalIndex
	}
	if p.Description != nil {
		hotel.Description = *p.Description
	}
	if p.CountryID != nil {
		hotel.CountryID = *p.CountryID
	}
	if p.CityID != nil {
		hotel.CityID = *p.CityID
	}
	if p.OwnerID != nil {
		hotel.OwnerID = *p.OwnerID
	}
}

func (ctl *HotelController) Create(c *gin.Context) {
	var payload hotelCreatePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	hotel := models.Hotel{
		HotelName:   payload.HotelName,
		Stars:       payload.Stars,
		Street:      payload.Street,
		PostalIndex: payload.PostalIndex,
		Description: payload.Description,
		CountryID:   payload.CountryID,
		CityID:      payload.CityID,
		OwnerID:     payload.OwnerID,
	}
	if err := ctl.Svc.Create(&hotel); err != nil {
		writeStorageError(c, "Hotel", err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (ctl *HotelController) List(c *gin.Context) {
	hotels, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Hotel", err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (ctl *HotelController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	hotel, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Hotel", err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (ctl *HotelController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload hotelUpdatePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	hotel, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Hotel", err)
		return
	}
	payload.merge(hotel)
	if err := ctl.Svc.Save(hotel); err != nil {
		writeStorageError(c, "Hotel", err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (ctl *HotelController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		writeStorageError(c, "Hotel", err)
		return
	}
	utils.JSONDeleted(c, "Hotel", id)
}
