package models

type FavouriteItem struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	FavouriteID uint `gorm:"column:favourite_id;index" json:"favourite_id"`
	HotelID     uint `gorm:"column:hotel_id;index" json:"hotel_id"`

	Favourite Favourite `gorm:"foreignKey:FavouriteID" json:"-"`
	Hotel     Hotel     `gorm:"foreignKey:HotelID" json:"-"`
}

func (FavouriteItem) TableName() string { return "favourite_item" }
