package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type RoomService struct {
	Crud[models.Room]
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{Crud[models.Room]{DB: db}}
}

// Delete removes the room together with its images and bookings in one
// transaction.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteRoomCascade(tx, id)
	})
}
