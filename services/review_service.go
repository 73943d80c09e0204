package services

import (
	"hotel-booking/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	Crud[models.Review]
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{Crud[models.Review]{DB: db}}
}

func (s *ReviewService) checkRefs(review *models.Review) error {
	if err := checkRef[models.Hotel](s.DB, "hotel_id", "Hotel", review.HotelID); err != nil {
		return err
	}
	return checkRef[models.UserProfile](s.DB, "user_id", "UserProfile", review.UserID)
}

func (s *ReviewService) Create(review *models.Review) error {
	if err := s.checkRefs(review); err != nil {
		return err
	}
	return s.Crud.Create(review)
}

func (s *ReviewService) Save(review *models.Review) error {
	if err := s.checkRefs(review); err != nil {
		return err
	}
	return s.Crud.Save(review)
}
