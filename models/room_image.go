package models

type RoomImage struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Image  string `gorm:"column:room_image" json:"room_image"`
	RoomID uint   `gorm:"column:room_id;index" json:"room_id"`

	Room Room `gorm:"foreignKey:RoomID" json:"-"`
}

func (RoomImage) TableName() string { return "room_image" }
