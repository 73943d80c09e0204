package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type FavouriteService struct {
	Crud[models.Favourite]
}

func NewFavouriteService(db *gorm.DB) *FavouriteService {
	return &FavouriteService{Crud[models.Favourite]{DB: db}}
}

func (s *FavouriteService) Create(fav *models.Favourite) error {
	if err := checkRef[models.UserProfile](s.DB, "user_id", "UserProfile", fav.UserID); err != nil {
		return err
	}
	return s.Crud.Create(fav)
}

func (s *FavouriteService) Save(fav *models.Favourite) error {
	if err := checkRef[models.UserProfile](s.DB, "user_id", "UserProfile", fav.UserID); err != nil {
		return err
	}
	return s.Crud.Save(fav)
}

// Delete removes the favourite together with its items in one transaction.
func (s *FavouriteService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteFavouriteCascade(tx, id)
	})
}
