package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

type reviewPayload struct {
	Stars   *int   `json:"stars" binding:"omitempty,gte=1,lte=5"`
	Comment string `json:"comment" binding:"omitempty,max=1000"`
	HotelID uint   `json:"hotel_id" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
}

func (ctl *ReviewController) Create(c *gin.Context) {
	var payload reviewPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	review := models.Review{
		Stars:   payload.Stars,
		Comment: payload.Comment,
		HotelID: payload.HotelID,
		UserID:  payload.UserID,
	}
	if err := ctl.Svc.Create(&review); err != nil {
		writeStorageError(c, "Review", err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (ctl *ReviewController) List(c *gin.Context) {
	reviews, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Review", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctl *ReviewController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	review, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Review", err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (ctl *ReviewController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload reviewPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	review, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Review", err)
		return
	}
	review.Stars = payload.Stars
	review.Comment = payload.Comment
	review.HotelID = payload.HotelID
	review.UserID = payload.UserID
	if err := ctl.Svc.Save(review); err != nil {
		writeStorageError(c, "Review", err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (ctl *ReviewController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteByID(id); err != nil {
		writeStorageError(c, "Review", err)
		return
	}
	utils.JSONDeleted(c, "Review", id)
}
