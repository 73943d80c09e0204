package models

type RoomType string

const (
	RoomTypeLux       RoomType = "lux"
	RoomTypeJuniorLux RoomType = "junior_lux"
	RoomTypeFamily    RoomType = "family"
	RoomTypeSingle    RoomType = "single"
)

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusBooked    RoomStatus = "booked"
	RoomStatusOccupied  RoomStatus = "occupied"
)

type Room struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RoomNumber  string     `gorm:"column:room_number;size:10" json:"room_number"`
	RoomType    RoomType   `gorm:"column:room_type;size:16;default:single" json:"room_type"`
	RoomStatus  RoomStatus `gorm:"column:room_status;size:16;default:available" json:"room_status"`
	Description string     `gorm:"column:room_description;type:text" json:"room_description"`
	Price       float64    `gorm:"column:price;type:decimal(10,2)" json:"price"`
	MaxGuests   int        `gorm:"column:max_guests" json:"max_guests"`

	RoomImages []RoomImage `gorm:"foreignKey:RoomID" json:"-"`
	Bookings   []Booking   `gorm:"foreignKey:RoomID" json:"-"`
}

func (Room) TableName() string { return "room" }
