package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type CountryService struct {
	Crud[models.Country]
}

func NewCountryService(db *gorm.DB) *CountryService {
	return &CountryService{Crud[models.Country]{DB: db}}
}
