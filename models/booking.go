package models

import "gorm.io/datatypes"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking references a hotel, a room and a user; none of them is owned by the
// booking, so deleting a booking never touches them.
type Booking struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CheckIn       datatypes.Date `gorm:"column:check_in" json:"check_in"`
	CheckOut      datatypes.Date `gorm:"column:check_out" json:"check_out"`
	BookingStatus BookingStatus  `gorm:"column:booking_status;size:16;default:pending" json:"booking_status"`

	HotelID uint `gorm:"column:hotel_id;index" json:"hotel_id"`
	RoomID  uint `gorm:"column:room_id;index" json:"room_id"`
	UserID  uint `gorm:"column:user_id;index" json:"user_id"`

	Hotel Hotel       `gorm:"foreignKey:HotelID" json:"-"`
	Room  Room        `gorm:"foreignKey:RoomID" json:"-"`
	User  UserProfile `gorm:"foreignKey:UserID" json:"-"`
}

func (Booking) TableName() string { return "booking" }
