package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type RoomImageService struct {
	Crud[models.RoomImage]
}

func NewRoomImageService(db *gorm.DB) *RoomImageService {
	return &RoomImageService{Crud[models.RoomImage]{DB: db}}
}

func (s *RoomImageService) Create(img *models.RoomImage) error {
	if err := checkRef[models.Room](s.DB, "room_id", "Room", img.RoomID); err != nil {
		return err
	}
	return s.Crud.Create(img)
}

func (s *RoomImageService) Save(img *models.RoomImage) error {
	if err := checkRef[models.Room](s.DB, "room_id", "Room", img.RoomID); err != nil {
		return err
	}
	return s.Crud.Save(img)
}
