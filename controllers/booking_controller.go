package controllers

import (
	"net/http"
	"time"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

const bookingDateLayout = "2006-01-02"

type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

type bookingPayload struct {
	CheckIn       string               `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut      string               `json:"check_out" binding:"required,datetime=2006-01-02"`
	BookingStatus models.BookingStatus `json:"booking_status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	HotelID       uint                 `json:"hotel_id" binding:"required"`
	RoomID        uint                 `json:"room_id" binding:"required"`
	UserID        uint                 `json:"user_id" binding:"required"`
}

// toModel parses the date fields and checks that the stay does not end before
// it starts. A nil model means a response has been written.
func (p bookingPayload) toModel(c *gin.Context) *models.Booking {
	checkIn, _ := time.Parse(bookingDateLayout, p.CheckIn)
	checkOut, _ := time.Parse(bookingDateLayout, p.CheckOut)
	if checkOut.Before(checkIn) {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, map[string]string{
			"check_out": "must not be before check_in",
		})
		return nil
	}

	status := p.BookingStatus
	if status == "" {
		status = models.BookingStatusPending
	}
	return &models.Booking{
		CheckIn:       datatypes.Date(checkIn),
		CheckOut:      datatypes.Date(checkOut),
		BookingStatus: status,
		HotelID:       p.HotelID,
		RoomID:        p.RoomID,
		UserID:        p.UserID,
	}
}

func (ctl *BookingController) Create(c *gin.Context) {
	var payload bookingPayload
	if !utils.BindJSON(c, &payload) {
		return
	}
	booking := payload.toModel(c)
	if booking == nil {
		return
	}
	if err := ctl.Svc.Create(booking); err != nil {
		writeStorageError(c, "Booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctl *BookingController) List(c *gin.Context) {
	bookings, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Booking", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctl *BookingController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctl *BookingController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload bookingPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	if _, err := ctl.Svc.GetByID(id); err != nil {
		writeStorageError(c, "Booking", err)
		return
	}
	booking := payload.toModel(c)
	if booking == nil {
		return
	}
	booking.ID = id
	if err := ctl.Svc.Save(booking); err != nil {
		writeStorageError(c, "Booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctl *BookingController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteByID(id); err != nil {
		writeStorageError(c, "Booking", err)
		return
	}
	utils.JSONDeleted(c, "Booking", id)
}
