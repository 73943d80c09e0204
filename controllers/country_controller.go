package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type CountryController struct {
	Svc *services.CountryService
}

func NewCountryController(svc *services.CountryService) *CountryController {
	return &CountryController{Svc: svc}
}

type countryCreatePayload struct {
	CountryName  string `json:"country_name" binding:"required,max=16"`
	CountryImage string `json:"country_image" binding:"required"`
}

// All fields optional: only the ones present overwrite the stored values.
type countryUpdatePayload struct {
	CountryName  *string `json:"country_name" binding:"omitempty,max=16"`
	CountryImage *string `json:"country_image"`
}

func (p countryUpdatePayload) merge(country *models.Country) {
	if p.CountryName != nil {
		country.CountryName = *p.CountryName
	}
	if p.CountryImage != nil {
		country.CountryImage = *p.CountryImage
	}
}

func (ctl *CountryController) Create(c *gin.Context) {
	var payload countryCreatePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	country := models.Country{
		CountryName:  payload.CountryName,
		CountryImage: payload.CountryImage,
	}
	if err := ctl.Svc.Create(&country); err != nil {
		writeStorageError(c, "Country", err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (ctl *CountryController) List(c *gin.Context) {
	countries, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Country", err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (ctl *CountryController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	country, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Country", err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (ctl *CountryController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload countryUpdatePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	country, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Country", err)
		return
	}
	payload.merge(country)
	if err := ctl.Svc.Save(country); err != nil {
		writeStorageError(c, "Country", err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (ctl *CountryController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteByID(id); err != nil {
		writeStorageError(c, "Country", err)
		return
	}
	utils.JSONDeleted(c, "Country", id)
}
