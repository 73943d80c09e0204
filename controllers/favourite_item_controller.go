package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type FavouriteItemController struct {
	Svc *services.FavouriteItemService
}

func NewFavouriteItemController(svc *services.FavouriteItemService) *FavouriteItemController {
	return &FavouriteItemController{Svc: svc}
}

type favouriteItemPayload struct {
	FavouriteID uint `json:"favourite_id" binding:"required"`
	HotelID     uint `json:"hotel_id" binding:"required"`
}

func (ctl *FavouriteItemController) Create(c *gin.Context) {
	var payload favouriteItemPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	item := models.FavouriteItem{
		FavouriteID: payload.FavouriteID,
		HotelID:     payload.HotelID,
	}
	if err := ctl.Svc.Create(&item); err != nil {
		writeStorageError(c, "Favourite item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctl *FavouriteItemController) List(c *gin.Context) {
	items, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Favourite item", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctl *FavouriteItemController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Favourite item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctl *FavouriteItemController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload favouriteItemPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	item, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Favourite item", err)
		return
	}
	item.FavouriteID = payload.FavouriteID
	item.HotelID = payload.HotelID
	if err := ctl.Svc.Save(item); err != nil {
		writeStorageError(c, "Favourite item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctl *FavouriteItemController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteByID(id); err != nil {
		writeStorageError(c, "Favourite item", err)
		return
	}
	utils.JSONDeleted(c, "Favourite item", id)
}
