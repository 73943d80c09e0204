package models

type HotelImage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Image   string `gorm:"column:hotel_image" json:"hotel_image"`
	HotelID uint   `gorm:"column:hotel_id;index" json:"hotel_id"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}

func (HotelImage) TableName() string { return "hotel_image" }
