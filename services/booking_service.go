package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type BookingService struct {
	Crud[models.Booking]
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{Crud[models.Booking]{DB: db}}
}

func (s *BookingService) checkRefs(booking *models.Booking) error {
	if err := checkRef[models.Hotel](s.DB, "hotel_id", "Hotel", booking.HotelID); err != nil {
		return err
	}
	if err := checkRef[models.Room](s.DB, "room_id", "Room", booking.RoomID); err != nil {
		return err
	}
	return checkRef[models.UserProfile](s.DB, "user_id", "UserProfile", booking.UserID)
}

func (s *BookingService) Create(booking *models.Booking) error {
	if err := s.checkRefs(booking); err != nil {
		return err
	}
	return s.Crud.Create(booking)
}

func (s *BookingService) Save(booking *models.Booking) error {
	if err := s.checkRefs(booking); err != nil {
		return err
	}
	return s.Crud.Save(booking)
}
