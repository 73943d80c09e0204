package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type FavouriteController struct {
	Svc *services.FavouriteService
}

func NewFavouriteController(svc *services.FavouriteService) *FavouriteController {
	return &FavouriteController{Svc: svc}
}

type favouritePayload struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (ctl *FavouriteController) Create(c *gin.Context) {
	var payload favouritePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	fav := models.Favourite{UserID: payload.UserID}
	if err := ctl.Svc.Create(&fav); err != nil {
		writeStorageError(c, "Favourite", err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

func (ctl *FavouriteController) List(c *gin.Context) {
	favourites, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Favourite", err)
		return
	}
	c.JSON(http.StatusOK, favourites)
}

func (ctl *FavouriteController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	fav, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Favourite", err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

func (ctl *FavouriteController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload favouritePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	fav, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Favourite", err)
		return
	}
	fav.UserID = payload.UserID
	if err := ctl.Svc.Save(fav); err != nil {
		writeStorageError(c, "Favourite", err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

func (ctl *FavouriteController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		writeStorageError(c, "Favourite", err)
		return
	}
	utils.JSONDeleted(c, "Favourite", id)
}
