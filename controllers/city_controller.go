package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type CityController struct {
	Svc *services.CityService
}

func NewCityController(svc *services.CityService) *CityController {
	return &CityController{Svc: svc}
}

type cityPayload struct {
	CityName  string `json:"city_name" binding:"required,max=16"`
	CityImage string `json:"city_image"`
}

func (ctl *CityController) Create(c *gin.Context) {
	var payload cityPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	city := models.City{CityName: payload.CityName, CityImage: payload.CityImage}
	if err := ctl.Svc.Create(&city); err != nil {
		writeStorageError(c, "City", err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (ctl *CityController) List(c *gin.Context) {
	cities, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "City", err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (ctl *CityController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	city, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "City", err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// Update is a full replace, matching the create payload.
func (ctl *CityController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload cityPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	city, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "City", err)
		return
	}
	city.CityName = payload.CityName
	city.CityImage = payload.CityImage
	if err := ctl.Svc.Save(city); err != nil {
		writeStorageError(c, "City", err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (ctl *CityController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteByID(id); err != nil {
		writeStorageError(c, "City", err)
		return
	}
	utils.JSONDeleted(c, "City", id)
}
