package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type CityService struct {
	Crud[models.City]
}

func NewCityService(db *gorm.DB) *CityService {
	return &CityService{Crud[models.City]{DB: db}}
}
