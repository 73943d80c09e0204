package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

// ServiceService manages the hotel amenity catalogue (the Service entity).
type ServiceService struct {
	Crud[models.Service]
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{Crud[models.Service]{DB: db}}
}

// Delete also clears the hotel_service join rows so no hotel keeps a link to
// a removed amenity.
func (s *ServiceService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM hotel_service WHERE service_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
