package services

import "gorm.io/gorm"

// Crud is the create/list/get/save/delete core shared by every entity
// service. Entity services embed it and override the methods that need
// reference checks or cascade deletes.
type Crud[M any] struct {
	DB *gorm.DB
}

func (s *Crud[M]) Create(m *M) error {
	return s.DB.Create(m).Error
}

// GetAll returns every row, an empty slice when there are none.
func (s *Crud[M]) GetAll() ([]M, error) {
	var out []M
	if err := s.DB.Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []M{}
	}
	return out, nil
}

func (s *Crud[M]) GetByID(id uint) (*M, error) {
	var m M
	if err := s.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Crud[M]) Save(m *M) error {
	return s.DB.Save(m).Error
}

// DeleteByID removes a single row and reports gorm.ErrRecordNotFound when the
// id does not exist, so a repeated delete fails instead of succeeding again.
func (s *Crud[M]) DeleteByID(id uint) error {
	var m M
	res := s.DB.Delete(&m, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
