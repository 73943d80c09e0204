package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type HotelService struct {
	Crud[models.Hotel]
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{Crud[models.Hotel]{DB: db}}
}

func (s *HotelService) checkRefs(hotel *models.Hotel) error {
	if err := checkRef[models.Country](s.DB, "country_id", "Country", hotel.CountryID); err != nil {
		return err
	}
	if err := checkRef[models.City](s.DB, "city_id", "City", hotel.CityID); err != nil {
		return err
	}
	return checkRef[models.UserProfile](s.DB, "owner_id", "UserProfile", hotel.OwnerID)
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	if err := s.checkRefs(hotel); err != nil {
		return err
	}
	return s.Crud.Create(hotel)
}

func (s *HotelService) Save(hotel *models.Hotel) error {
	if err := s.checkRefs(hotel); err != nil {
		return err
	}
	return s.Crud.Save(hotel)
}

// Delete removes the hotel together with its images, bookings, reviews,
// favourite items and amenity links in one transaction.
func (s *HotelService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteHotelCascade(tx, id)
	})
}
