package models

// Favourite is a per-user wishlist head; its items are owned and go away with
// it.
type Favourite struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"column:user_id;index" json:"user_id"`

	User  UserProfile     `gorm:"foreignKey:UserID" json:"-"`
	Items []FavouriteItem `gorm:"foreignKey:FavouriteID" json:"-"`
}

func (Favourite) TableName() string { return "favourite" }
