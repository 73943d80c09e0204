package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type UserService struct {
	Crud[models.UserProfile]
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{Crud[models.UserProfile]{DB: db}}
}

// GetByUserName looks a user up by the unique user_name column.
func (s *UserService) GetByUserName(userName string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := s.DB.Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user together with every owned hotel (and that hotel's
// children), booking, review and favourite in one transaction.
func (s *UserService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteUserCascade(tx, id)
	})
}
