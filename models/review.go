package models

type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Stars   *int   `gorm:"column:stars" json:"stars,omitempty"`
	Comment string `gorm:"column:comment;type:text" json:"comment"`

	HotelID uint `gorm:"column:hotel_id;index" json:"hotel_id"`
	UserID  uint `gorm:"column:user_id;index" json:"user_id"`

	Hotel Hotel       `gorm:"foreignKey:HotelID" json:"-"`
	User  UserProfile `gorm:"foreignKey:UserID" json:"-"`
}

func (Review) TableName() string { return "review" }
