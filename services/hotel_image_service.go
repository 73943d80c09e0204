package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type HotelImageService struct {
	Crud[models.HotelImage]
}

func NewHotelImageService(db *gorm.DB) *HotelImageService {
	return &HotelImageService{Crud[models.HotelImage]{DB: db}}
}

func (s *HotelImageService) Create(img *models.HotelImage) error {
	if err := checkRef[models.Hotel](s.DB, "hotel_id", "Hotel", img.HotelID); err != nil {
		return err
	}
	return s.Crud.Create(img)
}

func (s *HotelImageService) Save(img *models.HotelImage) error {
	if err := checkRef[models.Hotel](s.DB, "hotel_id", "Hotel", img.HotelID); err != nil {
		return err
	}
	return s.Crud.Save(img)
}
