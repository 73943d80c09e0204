package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

// The delete cascades below are the application-level rendition of the
// owning relationships: child rows first, parent row last, all inside the
// caller's transaction. Non-owning references (a booking's hotel, a
// favourite item's hotel) are never followed upwards.

func deleteHotelCascade(tx *gorm.DB, id uint) error {
	if err := tx.Exec("DELETE FROM hotel_service WHERE hotel_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Where("hotel_id = ?", id).Delete(&models.HotelImage{}).Error; err != nil {
		return err
	}
	if err := tx.Where("hotel_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
		return err
	}
	if err := tx.Where("hotel_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("hotel_id = ?", id).Delete(&models.FavouriteItem{}).Error; err != nil {
		return err
	}
	res := tx.Delete(&models.Hotel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteRoomCascade(tx *gorm.DB, id uint) error {
	if err := tx.Where("room_id = ?", id).Delete(&models.RoomImage{}).Error; err != nil {
		return err
	}
	if err := tx.Where("room_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
		return err
	}
	res := tx.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteFavouriteCascade(tx *gorm.DB, id uint) error {
	if err := tx.Where("favourite_id = ?", id).Delete(&models.FavouriteItem{}).Error; err != nil {
		return err
	}
	res := tx.Delete(&models.Favourite{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteUserCascade(tx *gorm.DB, id uint) error {
	var hotelIDs []uint
	if err := tx.Model(&models.Hotel{}).Where("owner_id = ?", id).Pluck("id", &hotelIDs).Error; err != nil {
		return err
	}
	for _, hotelID := range hotelIDs {
		if err := deleteHotelCascade(tx, hotelID); err != nil {
			return err
		}
	}

	var favouriteIDs []uint
	if err := tx.Model(&models.Favourite{}).Where("user_id = ?", id).Pluck("id", &favouriteIDs).Error; err != nil {
		return err
	}
	for _, favouriteID := range favouriteIDs {
		if err := deleteFavouriteCascade(tx, favouriteID); err != nil {
			return err
		}
	}

	if err := tx.Where("user_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return err
	}

	res := tx.Delete(&models.UserProfile{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
