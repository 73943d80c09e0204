package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type FavouriteItemService struct {
	Crud[models.FavouriteItem]
}

func NewFavouriteItemService(db *gorm.DB) *FavouriteItemService {
	return &FavouriteItemService{Crud[models.FavouriteItem]{DB: db}}
}

func (s *FavouriteItemService) checkRefs(item *models.FavouriteItem) error {
	if err := checkRef[models.Favourite](s.DB, "favourite_id", "Favourite", item.FavouriteID); err != nil {
		return err
	}
	return checkRef[models.Hotel](s.DB, "hotel_id", "Hotel", item.HotelID)
}

func (s *FavouriteItemService) Create(item *models.FavouriteItem) error {
	if err := s.checkRefs(item); err != nil {
		return err
	}
	return s.Crud.Create(item)
}

func (s *FavouriteItemService) Save(item *models.FavouriteItem) error {
	if err := s.checkRefs(item); err != nil {
		return err
	}
	return s.Crud.Save(item)
}
